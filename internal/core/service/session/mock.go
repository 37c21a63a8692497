package session

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/port"
)

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	mock.Mock
}

// NewMockSessionService creates a new MockSessionService
func NewMockSessionService() *MockSessionService {
	return &MockSessionService{}
}

func (m *MockSessionService) Open(ctx context.Context, userID int64, username string) {
	m.Called(ctx, userID, username)
}

func (m *MockSessionService) Append(ctx context.Context, userID int64, username string, record domain.FileRecord) error {
	args := m.Called(ctx, userID, username, record)
	return args.Error(0)
}

func (m *MockSessionService) SetDumpChannel(ctx context.Context, userID int64, username string, dest port.Destination) {
	m.Called(ctx, userID, username, dest)
}
