package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
)

func (h *Handler) handleEndSequence(ctx context.Context, msg *tgbotapi.Message) {
	err := h.sequences.Finish(ctx, msg.From.ID, msg.From.UserName)
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotInSession):
		h.reply(ctx, msg.From.ID,
			"❌ No sequence in progress! Use `/sequence` first to start collecting files.", false)
	case errors.Is(err, domain.ErrEmptySession):
		h.reply(ctx, msg.From.ID,
			"❌ No files received yet! Send some video files before `/endsequence`.", false)
	case errors.Is(err, domain.ErrNoValidFiles):
		h.reply(ctx, msg.From.ID,
			"❌ No valid files could be processed. Please check the file naming convention.", false)
	default:
		h.logger.Error("failed to finish sequence", "user_id", msg.From.ID, "error", err)
		h.reply(ctx, msg.From.ID, "❌ Error processing the sequence. Please try again.", false)
	}
}
