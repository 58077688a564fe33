package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

func asManager(i *discordgo.InteractionCreate) *discordgo.InteractionCreate {
	i.Member.Permissions = discordgo.PermissionManageGuild
	return i
}

func TestPersistence_RequiresManageGuild(t *testing.T) {
	tc := SetupTestContext(t)
	_, handler := PersistenceCommand()

	handler(context.Background(), tc.Session, commandInteraction("persistence", subOption("xp", boolOption("enabled", false))), tc.Services)

	assert.Equal(t, MsgManageGuildRequired, tc.LastResponse(t).Data.Content)
	tc.Guilds.AssertNotCalled(t, "SetXPEnabled", mock.Anything, mock.Anything, mock.Anything)
}

func TestPersistence_ToggleXP(t *testing.T) {
	tc := SetupTestContext(t)
	_, handler := PersistenceCommand()
	tc.Guilds.On("SetXPEnabled", mock.Anything, parseSnowflake(testGuildID), false).Return(nil)

	handler(context.Background(), tc.Session, asManager(commandInteraction("persistence", subOption("xp", boolOption("enabled", false)))), tc.Services)

	tc.Guilds.AssertExpectations(t)
	assert.Equal(t, "**Tester**, you disabled the level system.", tc.LastEditEmbed(t).Description)
}

func TestPersistence_OwnerBypassesPermission(t *testing.T) {
	tc := SetupTestContext(t)
	_, handler := PersistenceCommand()
	tc.Guilds.On("SetLevelupMessages", mock.Anything, parseSnowflake(testGuildID), true).Return(nil)

	i := commandInteraction("persistence", subOption("levelup", boolOption("enabled", true)))
	i.Member.User.ID = testOwnerID

	handler(context.Background(), tc.Session, i, tc.Services)

	assert.Equal(t, "**Tester**, you enabled level-up messages.", tc.LastEditEmbed(t).Description)
}

func TestPrefix_Show(t *testing.T) {
	tc := SetupTestContext(t)
	_, handler := PrefixCommand()
	tc.Guilds.On("Get", mock.Anything, parseSnowflake(testGuildID)).Return(&domain.GuildConfig{MentionPrefix: true}, nil)
	tc.Guilds.On("EffectivePrefix", mock.Anything, parseSnowflake(testGuildID)).Return("m!", nil)

	handler(context.Background(), tc.Session, commandInteraction("prefix", subOption("show")), tc.Services)

	embed := tc.LastEditEmbed(t)
	assert.Equal(t, "`m!`", embed.Fields[0].Value)
	assert.Equal(t, "Enabled", embed.Fields[1].Value)
}

func TestPrefix_SetInvalid(t *testing.T) {
	tc := SetupTestContext(t)
	_, handler := PrefixCommand()
	tc.Guilds.On("SetPrefix", mock.Anything, parseSnowflake(testGuildID), "has space").Return(domain.ErrInvalidPrefix)

	handler(context.Background(), tc.Session, asManager(commandInteraction("prefix", subOption("set", stringOption("prefix", "has space")))), tc.Services)

	assert.Equal(t, MsgInvalidPrefix, tc.LastEditContent(t))
}

func TestPrefix_ResetWhenDefault(t *testing.T) {
	tc := SetupTestContext(t)
	_, handler := PrefixCommand()
	tc.Guilds.On("Get", mock.Anything, parseSnowflake(testGuildID)).Return(&domain.GuildConfig{}, nil)
	tc.Guilds.On("EffectivePrefix", mock.Anything, parseSnowflake(testGuildID)).Return("m!", nil)

	handler(context.Background(), tc.Session, asManager(commandInteraction("prefix", subOption("reset"))), tc.Services)

	assert.Equal(t, "The bot's prefix is already the default one. (`m!`)", tc.LastEditEmbed(t).Description)
	tc.Guilds.AssertNotCalled(t, "ResetPrefix", mock.Anything, mock.Anything)
}

func TestCommandToggle(t *testing.T) {
	t.Run("disable", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, handler := CommandToggleCommand()
		tc.Guilds.On("DisableCommand", mock.Anything, parseSnowflake(testGuildID), "daily").Return(true, nil)

		handler(context.Background(), tc.Session, asManager(commandInteraction("command", subOption("disable", stringOption("name", "/Daily")))), tc.Services)

		assert.Equal(t, "Disabled `/daily` in this server.", tc.LastEditEmbed(t).Description)
	})

	t.Run("guard command refused", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, handler := CommandToggleCommand()
		tc.Guilds.On("DisableCommand", mock.Anything, mock.Anything, "help").Return(false, domain.ErrCommandNotToggleable)

		handler(context.Background(), tc.Session, asManager(commandInteraction("command", subOption("disable", stringOption("name", "help")))), tc.Services)

		assert.Equal(t, MsgCommandToggleGuard, tc.LastEditContent(t))
	})

	t.Run("list", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, handler := CommandToggleCommand()
		tc.Guilds.On("DisabledCommands", mock.Anything, parseSnowflake(testGuildID)).Return([]string{"daily", "shop"}, nil)

		handler(context.Background(), tc.Session, asManager(commandInteraction("command", subOption("list"))), tc.Services)

		assert.Equal(t, "`/daily`\n`/shop`", tc.LastEditEmbed(t).Description)
	})
}
