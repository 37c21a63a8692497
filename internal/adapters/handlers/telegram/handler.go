package telegram

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/port"
)

// Handler routes incoming Telegram updates to the core services
type Handler struct {
	sessions  port.SessionService
	sequences port.SequenceService
	transport port.Transport
	audit     port.AuditLog
	logger    *slog.Logger
}

// NewHandler creates a new update handler
func NewHandler(
	sessions port.SessionService,
	sequences port.SequenceService,
	transport port.Transport,
	audit port.AuditLog,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		sessions:  sessions,
		sequences: sequences,
		transport: transport,
		audit:     audit,
		logger:    logger,
	}
}

// HandleUpdate dispatches one update. Updates are handled sequentially by the
// caller's poll loop, which keeps session mutations and delivery ordered.
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	switch {
	case msg.IsCommand():
		switch msg.Command() {
		case "start":
			h.handleStart(ctx, msg)
		case "sequence":
			h.handleSequence(ctx, msg)
		case "dump":
			h.handleDump(ctx, msg)
		case "endsequence":
			h.handleEndSequence(ctx, msg)
		}
	case msg.Video != nil:
		h.handleVideo(ctx, msg)
	case msg.Document != nil:
		h.handleDocument(ctx, msg)
	}
}

func (h *Handler) reply(ctx context.Context, userID int64, text string, markdown bool) {
	if err := h.transport.Notify(ctx, userID, text, markdown); err != nil {
		h.logger.Warn("failed to reply", "user_id", userID, "error", err)
	}
}
