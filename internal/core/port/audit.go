package port

import (
	"context"

	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
)

// AuditLog is an interface to define the audit sink (NATS, slog, ...).
// Record is fire-and-forget: implementations log failures and never
// propagate them to the caller.
type AuditLog interface {
	Record(ctx context.Context, event domain.AuditEvent)
}
