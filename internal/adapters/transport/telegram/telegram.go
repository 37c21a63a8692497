package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/thaimozhi-2005/sequence-bot/internal/config"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/port"
)

// Adapter is a struct to interact with the Telegram Bot API
type Adapter struct {
	bot    *tgbotapi.BotAPI
	cfg    config.TelegramConfig
	logger *slog.Logger
}

// NewAdapter authenticates against the Bot API and registers the bot commands
func NewAdapter(cfg config.TelegramConfig, logger *slog.Logger) (*Adapter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}
	bot.Debug = cfg.Debug

	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Start the bot and get help"},
		tgbotapi.BotCommand{Command: "sequence", Description: "Start collecting video files"},
		tgbotapi.BotCommand{Command: "endsequence", Description: "Finish and sort the collected files"},
		tgbotapi.BotCommand{Command: "dump", Description: "Set a dump channel (e.g., /dump @Channel)"},
	)
	if _, err := bot.Request(commands); err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	logger.Info("telegram bot authorized", "username", bot.Self.UserName)

	return &Adapter{bot: bot, cfg: cfg, logger: logger}, nil
}

// Updates opens the long-poll update channel
func (a *Adapter) Updates() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = a.cfg.PollTimeout
	return a.bot.GetUpdatesChan(u)
}

// Close stops the long-poll loop
func (a *Adapter) Close() {
	a.bot.StopReceivingUpdates()
}

// SendVideo re-sends an already-uploaded video by file ID
func (a *Adapter) SendVideo(_ context.Context, dest port.Destination, fileID, caption string) error {
	video := tgbotapi.NewVideo(0, tgbotapi.FileID(fileID))
	video.Caption = caption
	addressChat(&video.BaseChat, dest)
	if _, err := a.bot.Send(video); err != nil {
		return fmt.Errorf("send video to %s: %w", dest, err)
	}
	return nil
}

// SendDocument re-sends an already-uploaded document by file ID
func (a *Adapter) SendDocument(_ context.Context, dest port.Destination, fileID, caption string) error {
	document := tgbotapi.NewDocument(0, tgbotapi.FileID(fileID))
	document.Caption = caption
	addressChat(&document.BaseChat, dest)
	if _, err := a.bot.Send(document); err != nil {
		return fmt.Errorf("send document to %s: %w", dest, err)
	}
	return nil
}

// Notify sends a plain or Markdown-formatted text message to a user
func (a *Adapter) Notify(_ context.Context, userID int64, text string, markdown bool) error {
	msg := tgbotapi.NewMessage(userID, text)
	if markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}
	if _, err := a.bot.Send(msg); err != nil {
		return fmt.Errorf("notify user %d: %w", userID, err)
	}
	return nil
}

// addressChat points a message at a numeric chat ID or a public @username
func addressChat(chat *tgbotapi.BaseChat, dest port.Destination) {
	raw := string(dest)
	if strings.HasPrefix(raw, "@") {
		chat.ChannelUsername = raw
		return
	}
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		chat.ChatID = id
	} else {
		// let the API reject it; the dispatcher reports per-item failures
		chat.ChannelUsername = raw
	}
}
