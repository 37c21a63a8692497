package telegram_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/thaimozhi-2005/sequence-bot/internal/adapters/audit"
	handlers "github.com/thaimozhi-2005/sequence-bot/internal/adapters/handlers/telegram"
	"github.com/thaimozhi-2005/sequence-bot/internal/adapters/transport"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/port"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/service/sequence"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/service/session"
)

type fixture struct {
	sessions  *session.MockSessionService
	sequences *sequence.MockSequenceService
	transport *transport.MockTransport
	audit     *audit.MockAuditLog
	handler   *handlers.Handler
}

func newFixture() *fixture {
	f := &fixture{
		sessions:  session.NewMockSessionService(),
		sequences: sequence.NewMockSequenceService(),
		transport: transport.NewMockTransport(),
		audit:     audit.NewMockAuditLog(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.handler = handlers.NewHandler(f.sessions, f.sequences, f.transport, f.audit, logger)
	return f
}

func commandUpdate(command, args string) tgbotapi.Update {
	text := "/" + command
	if args != "" {
		text += " " + args
	}
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: 42, UserName: "tester"},
			Chat: &tgbotapi.Chat{ID: 42},
			Text: text,
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(command) + 1},
			},
		},
	}
}

func videoUpdate(filename, caption string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			From:    &tgbotapi.User{ID: 42, UserName: "tester"},
			Chat:    &tgbotapi.Chat{ID: 42},
			Caption: caption,
			Video:   &tgbotapi.Video{FileID: "video-file-id", FileName: filename},
		},
	}
}

func TestHandler_Sequence_OpensSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.sessions.On("Open", ctx, int64(42), "tester").Return()
	f.transport.
		On("Notify", ctx, int64(42), mock.MatchedBy(func(text string) bool {
			return len(text) > 0
		}), true).
		Return(nil)

	f.handler.HandleUpdate(ctx, commandUpdate("sequence", ""))

	f.sessions.AssertExpectations(t)
	f.transport.AssertExpectations(t)
}

func TestHandler_Video_AppendedWithParsedAck(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.sessions.
		On("Append", ctx, int64(42), "tester", mock.MatchedBy(func(r domain.FileRecord) bool {
			return r.Kind == domain.MediaKindVideo && r.Parsed() && *r.Episode == 7 && *r.Quality == 1080
		})).
		Return(nil)

	var ack string
	f.transport.
		On("Notify", ctx, int64(42), mock.Anything, true).
		Run(func(args mock.Arguments) { ack = args.String(2) }).
		Return(nil)

	f.handler.HandleUpdate(ctx, videoUpdate("[S01-E07] Show [1080P].mkv", ""))

	f.sessions.AssertExpectations(t)
	assert.Contains(t, ack, "Episode 7, Quality 1080p")
}

func TestHandler_Video_ParseFailureWarning(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.sessions.On("Append", ctx, int64(42), "tester", mock.Anything).Return(nil)

	var ack string
	f.transport.
		On("Notify", ctx, int64(42), mock.Anything, true).
		Run(func(args mock.Arguments) { ack = args.String(2) }).
		Return(nil)

	f.handler.HandleUpdate(ctx, videoUpdate("unparseable.mkv", ""))

	assert.Contains(t, ack, "Could not parse episode/quality info")
}

func TestHandler_Video_WithoutSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.sessions.On("Append", ctx, int64(42), "tester", mock.Anything).Return(domain.ErrNotInSession)

	var reply string
	f.transport.
		On("Notify", ctx, int64(42), mock.Anything, false).
		Run(func(args mock.Arguments) { reply = args.String(2) }).
		Return(nil)

	f.handler.HandleUpdate(ctx, videoUpdate("[S01-E07] Show [1080P].mkv", ""))

	assert.Contains(t, reply, "Please use `/sequence` first")
}

func TestHandler_EndSequence_EmptySession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.sequences.On("Finish", ctx, int64(42), "tester").Return(domain.ErrEmptySession)

	var reply string
	f.transport.
		On("Notify", ctx, int64(42), mock.Anything, false).
		Run(func(args mock.Arguments) { reply = args.String(2) }).
		Return(nil)

	f.handler.HandleUpdate(ctx, commandUpdate("endsequence", ""))

	assert.Contains(t, reply, "No files received yet")
}

func TestHandler_EndSequence_NeverStarted(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.sequences.On("Finish", ctx, int64(42), "tester").Return(domain.ErrNotInSession)

	var reply string
	f.transport.
		On("Notify", ctx, int64(42), mock.Anything, false).
		Run(func(args mock.Arguments) { reply = args.String(2) }).
		Return(nil)

	f.handler.HandleUpdate(ctx, commandUpdate("endsequence", ""))

	assert.Contains(t, reply, "No sequence in progress")
}

func TestHandler_EndSequence_NoValidFiles(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.sequences.On("Finish", ctx, int64(42), "tester").Return(domain.ErrNoValidFiles)

	var reply string
	f.transport.
		On("Notify", ctx, int64(42), mock.Anything, false).
		Run(func(args mock.Arguments) { reply = args.String(2) }).
		Return(nil)

	f.handler.HandleUpdate(ctx, commandUpdate("endsequence", ""))

	assert.Contains(t, reply, "No valid files could be processed")
}

func TestHandler_EndSequence_Success_NoExtraReply(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.sequences.On("Finish", ctx, int64(42), "tester").Return(nil)

	f.handler.HandleUpdate(ctx, commandUpdate("endsequence", ""))

	// progress and summary come from the sequence service, not the handler
	f.transport.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Dump_SetsChannel(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.sessions.On("SetDumpChannel", ctx, int64(42), "tester", port.Destination("@DumpChannel")).Return()
	f.transport.On("Notify", ctx, int64(42), mock.Anything, true).Return(nil)

	f.handler.HandleUpdate(ctx, commandUpdate("dump", "@DumpChannel"))

	f.sessions.AssertExpectations(t)
}

func TestHandler_Dump_MissingArgument(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	var reply string
	f.transport.
		On("Notify", ctx, int64(42), mock.Anything, false).
		Run(func(args mock.Arguments) { reply = args.String(2) }).
		Return(nil)

	f.handler.HandleUpdate(ctx, commandUpdate("dump", ""))

	f.sessions.AssertNotCalled(t, "SetDumpChannel", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Contains(t, reply, "provide a channel ID or username")
}

func TestHandler_IgnoresNonMessageUpdates(t *testing.T) {
	f := newFixture()

	f.handler.HandleUpdate(context.Background(), tgbotapi.Update{})

	f.sessions.AssertNotCalled(t, "Open", mock.Anything, mock.Anything, mock.Anything)
	f.transport.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
