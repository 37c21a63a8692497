package port

import (
	"context"

	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
)

// SessionService is an interface to define session lifecycle operations
type SessionService interface {
	Open(ctx context.Context, userID int64, username string)
	Append(ctx context.Context, userID int64, username string, record domain.FileRecord) error
	SetDumpChannel(ctx context.Context, userID int64, username string, dest Destination)
}

// SequenceService is an interface to define the close-session pipeline:
// classify, dispatch in quality order, and report
type SequenceService interface {
	Finish(ctx context.Context, userID int64, username string) error
}
