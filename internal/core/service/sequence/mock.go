package sequence

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSequenceService is a mock implementation of SequenceService
type MockSequenceService struct {
	mock.Mock
}

// NewMockSequenceService creates a new MockSequenceService
func NewMockSequenceService() *MockSequenceService {
	return &MockSequenceService{}
}

func (m *MockSequenceService) Finish(ctx context.Context, userID int64, username string) error {
	args := m.Called(ctx, userID, username)
	return args.Error(0)
}
