package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEvent represents one user action recorded to the audit sink
type AuditEvent struct {
	ID       uuid.UUID `json:"id"`
	UserID   int64     `json:"user_id"`
	Username string    `json:"username"`
	Action   string    `json:"action"`
	Details  string    `json:"details,omitempty"`
	At       time.Time `json:"at"`
}

// NewAuditEvent creates a timestamped audit event
func NewAuditEvent(userID int64, username, action, details string) AuditEvent {
	if username == "" {
		username = "Unknown"
	}
	return AuditEvent{
		ID:       uuid.New(),
		UserID:   userID,
		Username: username,
		Action:   action,
		Details:  details,
		At:       time.Now().UTC(),
	}
}
