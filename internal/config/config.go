package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Telegram TelegramConfig
	Audit    AuditConfig
	Dispatch DispatchConfig
	Server   ServerConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type TelegramConfig struct {
	BotToken    string `envconfig:"BOT_TOKEN" required:"true"`
	PollTimeout int    `envconfig:"TELEGRAM_POLL_TIMEOUT" default:"30"` // seconds, long-poll
	Debug       bool   `envconfig:"TELEGRAM_DEBUG" default:"false"`
}

// AuditConfig configures the audit sink. With an empty URL the bot falls
// back to logging audit events through slog instead of publishing to NATS.
type AuditConfig struct {
	NATSURL string `envconfig:"AUDIT_NATS_URL" default:""`
	Stream  string `envconfig:"AUDIT_STREAM_NAME" default:"AUDIT"`
	Subject string `envconfig:"AUDIT_SUBJECT" default:"audit.actions"`
}

type DispatchConfig struct {
	// PacingDelay separates a dump-channel send from the next record,
	// to respect downstream rate limits
	PacingDelay time.Duration `envconfig:"DISPATCH_PACING_DELAY" default:"1s"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
