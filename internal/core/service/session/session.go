package session

import (
	"log/slog"

	"github.com/thaimozhi-2005/sequence-bot/internal/core/port"
)

type sessionService struct {
	store  port.SessionStore
	audit  port.AuditLog
	logger *slog.Logger
}

// NewSessionService creates a new session service
func NewSessionService(store port.SessionStore, audit port.AuditLog, logger *slog.Logger) port.SessionService {
	return &sessionService{store: store, audit: audit, logger: logger}
}
