package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/MinesocBot_Go/internal/discord"
	"github.com/osse101/MinesocBot_Go/internal/event"
	"github.com/osse101/MinesocBot_Go/internal/scheduler"
	"github.com/osse101/MinesocBot_Go/internal/server"
	"github.com/osse101/MinesocBot_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Bot                *discord.Bot
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops the application in reverse start order:
// 1. Discord gateway (no new messages or interactions)
// 2. HTTP server (stop accepting new requests)
// 3. Scheduler and worker pool (finish the running job)
// 4. Event publisher (flush pending events)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
// Nil components are skipped.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if components.Bot != nil {
		if err := components.Bot.Stop(ctx); err != nil {
			slog.Error(LogMsgBotStopFailed, "error", err)
		}
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgStopped)
}
