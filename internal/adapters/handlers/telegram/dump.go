package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/port"
)

func (h *Handler) handleDump(ctx context.Context, msg *tgbotapi.Message) {
	channel := msg.CommandArguments()
	if channel == "" {
		h.reply(ctx, msg.From.ID,
			"❌ Please provide a channel ID or username (e.g., `/dump @PrivateDumpChannel`).", false)
		return
	}

	h.sessions.SetDumpChannel(ctx, msg.From.ID, msg.From.UserName, port.Destination(channel))
	h.reply(ctx, msg.From.ID, fmt.Sprintf(
		"✅ Dump channel set to `%s`. Sorted files will be sent here too! "+
			"Ensure the bot is added to the channel with send permissions.", channel), true)
}
