package store

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/port"
)

type MockSessionStore struct {
	mock.Mock
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{}
}

func (m *MockSessionStore) Open(ctx context.Context, userID int64) domain.Session {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Session)
}

func (m *MockSessionStore) Append(ctx context.Context, userID int64, record domain.FileRecord) error {
	args := m.Called(ctx, userID, record)
	return args.Error(0)
}

func (m *MockSessionStore) Close(ctx context.Context, userID int64) ([]domain.FileRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FileRecord), args.Error(1)
}

func (m *MockSessionStore) SetDumpChannel(ctx context.Context, userID int64, dest port.Destination) {
	m.Called(ctx, userID, dest)
}

func (m *MockSessionStore) DumpChannel(ctx context.Context, userID int64) (port.Destination, bool) {
	args := m.Called(ctx, userID)
	return args.Get(0).(port.Destination), args.Bool(1)
}

func (m *MockSessionStore) ActiveSessions(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}
