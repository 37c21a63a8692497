package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const sequenceStartedMessage = "📁 **Ready to receive files!** 📁\n\n" +
	"Please start sending me your video files. I'll collect them and sort them " +
	"when you use `/endsequence`.\n\n" +
	"**Tip:** Make sure your files follow the naming convention:\n" +
	"`[S01-E07] Show Name [1080P] [Single].extension`"

func (h *Handler) handleSequence(ctx context.Context, msg *tgbotapi.Message) {
	h.sessions.Open(ctx, msg.From.ID, msg.From.UserName)
	h.reply(ctx, msg.From.ID, sequenceStartedMessage, true)
}
