package sequence

import (
	"context"
	"log/slog"
	"time"

	"github.com/thaimozhi-2005/sequence-bot/internal/core/port"
)

type sequenceService struct {
	store     port.SessionStore
	transport port.Transport
	audit     port.AuditLog
	logger    *slog.Logger
	pacing    time.Duration
}

// NewSequenceService creates a new sequence service. pacing separates a
// dump-channel send from the next record's transmission.
func NewSequenceService(
	store port.SessionStore,
	transport port.Transport,
	audit port.AuditLog,
	logger *slog.Logger,
	pacing time.Duration,
) port.SequenceService {
	return &sequenceService{
		store:     store,
		transport: transport,
		audit:     audit,
		logger:    logger,
		pacing:    pacing,
	}
}

func (s *sequenceService) notify(ctx context.Context, userID int64, text string, markdown bool) {
	if err := s.transport.Notify(ctx, userID, text, markdown); err != nil {
		s.logger.Warn("failed to notify user", "user_id", userID, "error", err)
	}
}
