package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceLines(t *testing.T) {
	assert.Equal(t, []string{"1,204 guilds", "56,001 members", "/help"}, presenceLines(1204, 56001))
}

func TestStateCounts(t *testing.T) {
	state := discordgo.NewState()
	state.Guilds = []*discordgo.Guild{{ID: "1", MemberCount: 10}, {ID: "2", MemberCount: 32}}

	guilds, members := stateCounts(state)

	assert.Equal(t, 2, guilds)
	assert.Equal(t, 42, members)
}

func TestStatusRotator_SkipsBeforeReady(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Session.State.User = nil

	rotator := NewStatusRotator(tc.Session)
	require.NoError(t, rotator.Process(context.Background()))
	assert.Zero(t, rotator.next.Load())
	assert.Empty(t, tc.Requests())
}
