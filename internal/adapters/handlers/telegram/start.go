package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
)

const welcomeMessage = "🎬 **Video Sorter Bot** 🎬\n\n" +
	"I help you organize and sequence video files (like TV show episodes) " +
	"based on their episode number and quality.\n\n" +
	"**How it works:**\n" +
	"1. Use `/sequence` to start sending me your video files\n" +
	"2. Send me your video files one by one\n" +
	"3. Use `/endsequence` when you're done\n" +
	"4. I'll sort them by quality (480p, 720p, 1080p) and episode number, " +
	"sending each quality block separately!\n" +
	"5. Use `/dump <channel>` to set a private or public dump channel for sorted files " +
	"(add the bot to the channel first).\n\n" +
	"**File format expected:** `[S01-E07] Show Name [1080P] [Single].mkv`\n\n" +
	"Ready to get started? Use `/sequence` to begin!"

func (h *Handler) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	h.reply(ctx, msg.From.ID, welcomeMessage, true)
	h.audit.Record(ctx, domain.NewAuditEvent(msg.From.ID, msg.From.UserName, "Started the bot", ""))
}
