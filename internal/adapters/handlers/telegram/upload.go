package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
)

const notCollectingMessage = "❌ Please use `/sequence` first to start collecting files!"

func (h *Handler) handleVideo(ctx context.Context, msg *tgbotapi.Message) {
	video := msg.Video
	filename := video.FileName
	if filename == "" {
		filename = fmt.Sprintf("video_%.8s.mp4", video.FileID)
	}

	record := domain.NewFileRecord(video.FileID, filename, msg.Caption, domain.MediaKindVideo)
	h.appendRecord(ctx, msg, record, "🎥 Video received")
}

func (h *Handler) handleDocument(ctx context.Context, msg *tgbotapi.Message) {
	document := msg.Document
	filename := document.FileName
	if filename == "" {
		filename = "unknown_file"
	}

	record := domain.NewFileRecord(document.FileID, filename, msg.Caption, domain.MediaKindDocument)
	h.appendRecord(ctx, msg, record, "📁 File received")
}

func (h *Handler) appendRecord(ctx context.Context, msg *tgbotapi.Message, record domain.FileRecord, receivedLabel string) {
	err := h.sessions.Append(ctx, msg.From.ID, msg.From.UserName, record)
	if err != nil {
		if errors.Is(err, domain.ErrNotInSession) {
			h.reply(ctx, msg.From.ID, notCollectingMessage, false)
			return
		}
		h.logger.Error("failed to append file", "user_id", msg.From.ID, "file", record.Filename, "error", err)
		h.reply(ctx, msg.From.ID, "❌ Error receiving the file. Please try again.", false)
		return
	}

	status := "⚠️ Could not parse episode/quality info"
	if record.Parsed() {
		status = fmt.Sprintf("✅ Episode %d, Quality %dp", *record.Episode, *record.Quality)
	}
	h.reply(ctx, msg.From.ID, fmt.Sprintf("%s: `%s`\n%s", receivedLabel, record.Filename, status), true)
}
