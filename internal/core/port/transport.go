package port

import "context"

// Destination identifies an outbound chat: a numeric chat ID rendered as a
// string, or a public @username
type Destination string

// Transport is an interface to define outbound messaging interactions
type Transport interface {
	SendVideo(ctx context.Context, dest Destination, fileID, caption string) error
	SendDocument(ctx context.Context, dest Destination, fileID, caption string) error
	// Notify sends a text message to a user. Best-effort: callers treat a
	// returned error as loggable, never as a reason to stop.
	Notify(ctx context.Context, userID int64, text string, markdown bool) error
}
