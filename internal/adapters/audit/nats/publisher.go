package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/thaimozhi-2005/sequence-bot/internal/config"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
)

// Publisher is a struct to publish audit events to a JetStream subject
type Publisher struct {
	logger  *slog.Logger
	conn    *nats.Conn
	js      jetstream.JetStream
	subject string
}

// NewPublisher connects to NATS and ensures the audit stream exists
func NewPublisher(ctx context.Context, cfg config.AuditConfig, logger *slog.Logger) (*Publisher, error) {

	opts := []nats.Option{
		nats.Name("sequence-bot-audit"),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.NATSURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.Stream,
		Subjects: []string{cfg.Subject},
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ensure audit stream: %w", err)
	}

	return &Publisher{
		logger:  logger,
		conn:    conn,
		js:      js,
		subject: cfg.Subject,
	}, nil
}

// Record publishes the event fire-and-forget; failures are logged, never returned
func (p *Publisher) Record(ctx context.Context, event domain.AuditEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal audit event", "error", err, "event_id", event.ID.String())
		return
	}

	if _, err := p.js.Publish(ctx, p.subject, data); err != nil {
		p.logger.Error("failed to publish audit event",
			"error", err,
			"event_id", event.ID.String(),
			"action", event.Action,
		)
	}
}

// Close graceful shutdown
func (p *Publisher) Close() error {
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
