package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/thaimozhi-2005/sequence-bot/internal/adapters/audit"
	"github.com/thaimozhi-2005/sequence-bot/internal/adapters/store"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/port"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/service/session"
)

func TestSessionService_SetDumpChannel(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := store.NewMockSessionStore()
	mockAudit := audit.NewMockAuditLog()
	service := session.NewSessionService(mockStore, mockAudit, testLogger())

	userID := int64(42)
	dest := port.Destination("@DumpChannel")

	mockStore.
		On("SetDumpChannel", ctx, userID, dest).
		Return()

	mockAudit.
		On("Record", ctx, mock.MatchedBy(func(e domain.AuditEvent) bool {
			return e.Action == "Set dump channel" && e.Details == "Channel: @DumpChannel"
		})).
		Return()

	// Act
	service.SetDumpChannel(ctx, userID, "tester", dest)

	// Assert
	mockStore.AssertExpectations(t)
	mockAudit.AssertExpectations(t)
}
