package session

import (
	"context"
	"fmt"

	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
)

// Append stores an uploaded file in the user's open session.
// Returns domain.ErrNotInSession when no session is open.
func (s *sessionService) Append(ctx context.Context, userID int64, username string, record domain.FileRecord) error {
	if err := s.store.Append(ctx, userID, record); err != nil {
		return err
	}

	s.audit.Record(ctx, domain.NewAuditEvent(
		userID,
		username,
		fmt.Sprintf("Uploaded %s", record.Kind),
		fmt.Sprintf("File: %s", record.Filename),
	))
	return nil
}
