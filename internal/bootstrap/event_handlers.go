package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/MinesocBot_Go/internal/discord"
	"github.com/osse101/MinesocBot_Go/internal/event"
	"github.com/osse101/MinesocBot_Go/internal/eventlog"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	Announcer       *discord.Announcer
	EventLogService eventlog.Service
}

// RegisterEventHandlers sets up all event subscribers:
// - level-up announcer (posts in the channel that triggered the level)
// - event logger (persists events to the audit table)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	deps.Announcer.Subscribe(deps.EventBus)
	slog.Info(LogMsgAnnouncerInitialized)

	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLog, err)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	return nil
}
