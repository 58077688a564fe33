package discord

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
)

// StatusRotator cycles the bot's presence through guild count, member count
// and a help hint. It is scheduled as a worker job.
type StatusRotator struct {
	session *discordgo.Session
	next    atomic.Uint64
}

// NewStatusRotator creates a rotator for the session's presence
func NewStatusRotator(session *discordgo.Session) *StatusRotator {
	return &StatusRotator{session: session}
}

// Process implements worker.Job. Before the session is ready it does nothing.
func (r *StatusRotator) Process(ctx context.Context) error {
	if r.session.State == nil || r.session.State.User == nil {
		return nil
	}

	guilds, members := stateCounts(r.session.State)
	metrics.Guilds.Set(float64(guilds))

	statuses := presenceLines(guilds, members)
	status := statuses[(r.next.Add(1)-1)%uint64(len(statuses))]

	if err := r.session.UpdateWatchStatus(0, status); err != nil {
		logger.FromContext(ctx).Warn(LogMsgStatusUpdateFailed, "status", status, "error", err)
		return fmt.Errorf(ErrMsgUpdateStatus, err)
	}
	return nil
}

// presenceLines returns the rotation in order
func presenceLines(guilds, members int) []string {
	return []string{
		fmt.Sprintf(StatusGuildsFormat, formatNumber(int64(guilds))),
		fmt.Sprintf(StatusMembersFormat, formatNumber(int64(members))),
		StatusHelp,
	}
}

// stateCounts reads the guild and member totals from the gateway state
func stateCounts(state *discordgo.State) (guilds, members int) {
	state.RLock()
	defer state.RUnlock()
	for _, g := range state.Guilds {
		members += g.MemberCount
	}
	return len(state.Guilds), members
}
