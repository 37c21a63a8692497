package session

import (
	"context"
	"fmt"

	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/port"
)

// SetDumpChannel binds the user's secondary delivery destination. The binding
// is independent of any open session and persists until overwritten.
func (s *sessionService) SetDumpChannel(ctx context.Context, userID int64, username string, dest port.Destination) {
	s.store.SetDumpChannel(ctx, userID, dest)

	s.logger.Info("dump channel set", "user_id", userID, "channel", string(dest))
	s.audit.Record(ctx, domain.NewAuditEvent(userID, username, "Set dump channel", fmt.Sprintf("Channel: %s", dest)))
}
