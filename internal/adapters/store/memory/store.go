package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/port"
)

// Store is an in-memory SessionStore. Sessions are ephemeral and scoped to
// the process lifetime; dump-channel bindings outlive sessions but not the
// process. A single mutex guards both maps, which keeps open/append/close
// atomic per user under concurrent update delivery.
type Store struct {
	mu           sync.Mutex
	sessions     map[int64]*domain.Session
	dumpChannels map[int64]port.Destination
	logger       *slog.Logger
}

// NewStore creates an empty session store
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		sessions:     make(map[int64]*domain.Session),
		dumpChannels: make(map[int64]port.Destination),
		logger:       logger,
	}
}

// Open creates a fresh session for the user, silently replacing any prior one
func (s *Store) Open(_ context.Context, userID int64) domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prior, ok := s.sessions[userID]; ok {
		s.logger.Info("replacing open session",
			"user_id", userID,
			"session_id", prior.ID.String(),
			"discarded_files", len(prior.Files),
		)
	}

	session := domain.NewSession(userID)
	s.sessions[userID] = session
	return *session
}

// Append adds a record to the user's open session, preserving arrival order
func (s *Store) Append(_ context.Context, userID int64, record domain.FileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return domain.ErrNotInSession
	}
	session.Files = append(session.Files, record)
	return nil
}

// Close removes the user's session and returns its records. The session is
// removed even when ErrEmptySession is returned.
func (s *Store) Close(_ context.Context, userID int64) ([]domain.FileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, domain.ErrNotInSession
	}
	delete(s.sessions, userID)

	if len(session.Files) == 0 {
		return nil, domain.ErrEmptySession
	}
	return session.Files, nil
}

// SetDumpChannel binds the user's secondary destination until overwritten
func (s *Store) SetDumpChannel(_ context.Context, userID int64, dest port.Destination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dumpChannels[userID] = dest
}

// DumpChannel returns the user's secondary destination, if bound
func (s *Store) DumpChannel(_ context.Context, userID int64) (port.Destination, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dest, ok := s.dumpChannels[userID]
	return dest, ok
}

// ActiveSessions reports the number of open sessions
func (s *Store) ActiveSessions(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
