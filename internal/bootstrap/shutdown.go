package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/IdleHero_Go/internal/event"
	"github.com/osse101/IdleHero_Go/internal/server"
	"github.com/osse101/IdleHero_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	DailyResetWorker   *worker.DailyResetWorker
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Daily reset worker (cancel pending timers, finish in-flight resets)
// 3. Event publisher (flush pending events to ensure consistency)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// Shutdown server first (stop accepting new requests)
	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	// Shutdown worker to cancel pending timers
	if components.DailyResetWorker != nil {
		if err := components.DailyResetWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgDailyResetWorkerFailed, "error", err)
		}
	}

	// Shutdown resilient publisher last to flush pending events
	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
