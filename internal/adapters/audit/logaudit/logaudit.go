package logaudit

import (
	"context"
	"log/slog"

	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
)

// Sink records audit events through slog. Used when no NATS URL is
// configured, so the bot's audit trail still lands somewhere inspectable.
type Sink struct {
	logger *slog.Logger
}

func NewSink(logger *slog.Logger) *Sink {
	return &Sink{logger: logger}
}

func (s *Sink) Record(_ context.Context, event domain.AuditEvent) {
	s.logger.Info("audit",
		"event_id", event.ID.String(),
		"user_id", event.UserID,
		"username", event.Username,
		"action", event.Action,
		"details", event.Details,
		"at", event.At,
	)
}
