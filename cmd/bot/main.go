package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	natsaudit "github.com/thaimozhi-2005/sequence-bot/internal/adapters/audit/nats"

	"github.com/thaimozhi-2005/sequence-bot/internal/adapters/audit/logaudit"
	chirouter "github.com/thaimozhi-2005/sequence-bot/internal/adapters/handlers/http/chi"
	tghandler "github.com/thaimozhi-2005/sequence-bot/internal/adapters/handlers/telegram"
	"github.com/thaimozhi-2005/sequence-bot/internal/adapters/store/memory"
	"github.com/thaimozhi-2005/sequence-bot/internal/adapters/transport/telegram"
	"github.com/thaimozhi-2005/sequence-bot/internal/config"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/port"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/service/sequence"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/service/session"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var auditLog port.AuditLog
	if cfg.Audit.NATSURL != "" {
		publisher, err := natsaudit.NewPublisher(ctx, cfg.Audit, logger)
		if err != nil {
			logger.Error("failed to init audit publisher", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("failed to close audit publisher", "error", err)
			}
		}()
		auditLog = publisher
		logger.Info("audit sink established", "subject", cfg.Audit.Subject)
	} else {
		auditLog = logaudit.NewSink(logger)
		logger.Info("no audit NATS url configured, logging audit events")
	}

	//transport
	tg, err := telegram.NewAdapter(cfg.Telegram, logger)
	if err != nil {
		logger.Error("failed to init telegram adapter", "error", err)
		os.Exit(1)
	}

	sessionStore := memory.NewStore(logger)

	sessionService := session.NewSessionService(sessionStore, auditLog, logger)
	sequenceService := sequence.NewSequenceService(sessionStore, tg, auditLog, logger, cfg.Dispatch.PacingDelay)

	handler := tghandler.NewHandler(sessionService, sequenceService, tg, auditLog, logger)

	server := &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler: chirouter.NewRouter(logger, sessionStore),
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	updates := tg.Updates()
	wg.Add(1)
	go func() {
		defer wg.Done()
		// one update at a time: session mutations and dispatch stay ordered
		for {
			select {
			case <-ctx.Done():
				return
			case update, ok := <-updates:
				if !ok {
					return
				}
				handler.HandleUpdate(ctx, update)
			}
		}
	}()

	logger.Info("bot is running", "env", cfg.Env.Env)

	<-ctx.Done()
	logger.Info("shutting down")

	tg.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown http server", "error", err)
	}

	wg.Wait()
	logger.Info("shutdown complete")
}
