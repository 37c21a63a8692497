package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one user's in-progress file collection.
// It exists only between an explicit open and an explicit close;
// records are kept in insertion order.
type Session struct {
	ID       uuid.UUID
	UserID   int64
	Files    []FileRecord
	OpenedAt time.Time
}

// NewSession creates an empty session for a user
func NewSession(userID int64) *Session {
	return &Session{
		ID:       uuid.New(),
		UserID:   userID,
		OpenedAt: time.Now(),
	}
}
