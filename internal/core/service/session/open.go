package session

import (
	"context"

	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
)

// Open starts a fresh collection session for the user. Any prior session is
// replaced and its records dropped.
func (s *sessionService) Open(ctx context.Context, userID int64, username string) {
	opened := s.store.Open(ctx, userID)

	s.logger.Info("session opened", "user_id", userID, "session_id", opened.ID.String())
	s.audit.Record(ctx, domain.NewAuditEvent(userID, username, "Started sequence collection", ""))
}
