package port

import (
	"context"

	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
)

// SessionStore is an interface to interact with per-user session state.
// At most one session exists per user; Open replaces any prior session,
// silently discarding its records. All methods are atomic per user ID.
type SessionStore interface {
	Open(ctx context.Context, userID int64) domain.Session
	// Append returns domain.ErrNotInSession when no session is open for the user
	Append(ctx context.Context, userID int64, record domain.FileRecord) error
	// Close returns the session's records in insertion order and removes the
	// session. Returns domain.ErrNotInSession when none exists, and
	// domain.ErrEmptySession when one exists but holds no records (the
	// session is removed in that case too).
	Close(ctx context.Context, userID int64) ([]domain.FileRecord, error)

	// Dump-channel bindings persist independently of session lifecycle
	SetDumpChannel(ctx context.Context, userID int64, dest Destination)
	DumpChannel(ctx context.Context, userID int64) (Destination, bool)

	// ActiveSessions reports the number of currently open sessions
	ActiveSessions(ctx context.Context) int
}
