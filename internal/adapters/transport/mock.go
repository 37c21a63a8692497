package transport

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/port"
)

type MockTransport struct {
	mock.Mock
}

func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

func (m *MockTransport) SendVideo(ctx context.Context, dest port.Destination, fileID, caption string) error {
	args := m.Called(ctx, dest, fileID, caption)
	return args.Error(0)
}

func (m *MockTransport) SendDocument(ctx context.Context, dest port.Destination, fileID, caption string) error {
	args := m.Called(ctx, dest, fileID, caption)
	return args.Error(0)
}

func (m *MockTransport) Notify(ctx context.Context, userID int64, text string, markdown bool) error {
	args := m.Called(ctx, userID, text, markdown)
	return args.Error(0)
}
