package audit

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
)

type MockAuditLog struct {
	mock.Mock
}

func NewMockAuditLog() *MockAuditLog {
	return &MockAuditLog{}
}

func (m *MockAuditLog) Record(ctx context.Context, event domain.AuditEvent) {
	m.Called(ctx, event)
}
