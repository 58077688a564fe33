package discord

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/profile"
)

type stubAvatars struct {
	data []byte
	err  error
}

func (s stubAvatars) Fetch(ctx context.Context, url string) ([]byte, error) {
	return s.data, s.err
}

func TestProfileView_NoXP(t *testing.T) {
	tc := SetupTestContext(t)
	_, handler := ProfileCommand()
	tc.Leveling.On("GetProgress", mock.Anything, parseSnowflake(testGuildID), parseSnowflake(testUserID)).
		Return(nil, domain.ErrNotFound)

	handler(context.Background(), tc.Session, commandInteraction("profile", subOption("view")), tc.Services)

	assert.Equal(t, "**Tester**, you have not received XP yet.", tc.LastEditContent(t))
	tc.Renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestProfileView_RendersCard(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Services.Avatars = stubAvatars{err: errors.New("cdn down")}
	_, handler := ProfileCommand()

	tc.Leveling.On("GetProgress", mock.Anything, parseSnowflake(testGuildID), parseSnowflake(testUserID)).
		Return(&domain.MemberProgress{Level: 4, XP: 95, AccentColor: 0xFF0000, BackgroundKey: "ocean"}, nil)
	tc.Renderer.On("Render", mock.Anything, profile.Card{
		DisplayName: "Tester",
		Level:       4,
		XP:          95,
		Accent:      0xFF0000,
		Background:  "ocean",
	}).Return([]byte("\x89PNG-card"), nil)

	handler(context.Background(), tc.Session, commandInteraction("profile", subOption("view")), tc.Services)

	tc.Renderer.AssertExpectations(t)
	var upload *capturedRequest
	reqs := tc.Requests()
	for idx := range reqs {
		if reqs[idx].Method == http.MethodPatch {
			upload = &reqs[idx]
		}
	}
	require.NotNil(t, upload)
	assert.True(t, strings.HasPrefix(upload.ContentType, "multipart/form-data"))
	assert.True(t, bytes.Contains(upload.Body, []byte(profileCardFile)))
	assert.True(t, bytes.Contains(upload.Body, []byte("\x89PNG-card")))
}

func TestProfileView_BotTarget(t *testing.T) {
	tc := SetupTestContext(t)
	_, handler := ProfileCommand()

	i := commandInteraction("profile", subOption("view", &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "member",
		Type:  discordgo.ApplicationCommandOptionUser,
		Value: testBotID,
	}))
	data := i.Data.(discordgo.ApplicationCommandInteractionData)
	data.Resolved = &discordgo.ApplicationCommandInteractionDataResolved{
		Users: map[string]*discordgo.User{testBotID: {ID: testBotID, Username: "Minesoc", Bot: true}},
	}
	i.Data = data

	handler(context.Background(), tc.Session, i, tc.Services)

	assert.Equal(t, MsgProfileBot, tc.LastEditContent(t))
	tc.Leveling.AssertNotCalled(t, "GetProgress", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileColor(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, handler := ProfileCommand()
		tc.Leveling.On("SetAccentColor", mock.Anything, parseSnowflake(testGuildID), parseSnowflake(testUserID), "blurple").
			Return(uint32(0x5865F2), nil)

		handler(context.Background(), tc.Session, commandInteraction("profile", subOption("color", stringOption("color", "blurple"))), tc.Services)

		embed := tc.LastEditEmbed(t)
		assert.Equal(t, "Changed your color to `#5865F2`", embed.Title)
		assert.Equal(t, 0x5865F2, embed.Color)
	})

	t.Run("invalid", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, handler := ProfileCommand()
		tc.Leveling.On("SetAccentColor", mock.Anything, mock.Anything, mock.Anything, "notacolor").
			Return(uint32(0), domain.ErrInvalidCosmetic)

		handler(context.Background(), tc.Session, commandInteraction("profile", subOption("color", stringOption("color", "notacolor"))), tc.Services)

		assert.Equal(t, MsgInvalidColor, tc.LastEditContent(t))
	})
}

func TestProfileBackground(t *testing.T) {
	t.Run("change", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, handler := ProfileCommand()
		tc.Leveling.On("SetBackground", mock.Anything, parseSnowflake(testGuildID), parseSnowflake(testUserID), "night_sky").Return(nil)

		handler(context.Background(), tc.Session, commandInteraction("profile", subOption("background", stringOption("background", "Night_Sky"))), tc.Services)

		assert.Equal(t, "Changed your background to `Night Sky`", tc.LastEditEmbed(t).Title)
	})

	t.Run("reset", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, handler := ProfileCommand()
		tc.Leveling.On("SetBackground", mock.Anything, mock.Anything, mock.Anything, domain.DefaultBackground).Return(nil)

		handler(context.Background(), tc.Session, commandInteraction("profile", subOption("background", stringOption("background", "default"))), tc.Services)

		assert.Equal(t, MsgBackgroundReset, tc.LastEditEmbed(t).Title)
	})

	t.Run("not owned lists owned backgrounds", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, handler := ProfileCommand()
		tc.Leveling.On("SetBackground", mock.Anything, mock.Anything, mock.Anything, "sunset").Return(domain.ErrInvalidCosmetic)
		tc.Economy.On("OwnedBackgrounds", mock.Anything, parseSnowflake(testUserID)).
			Return([]domain.Item{{Key: "ocean", Name: "Ocean"}}, nil)

		handler(context.Background(), tc.Session, commandInteraction("profile", subOption("background", stringOption("background", "sunset"))), tc.Services)

		embed := tc.LastEditEmbed(t)
		assert.Equal(t, MsgBackgroundsTitle, embed.Title)
		assert.Contains(t, embed.Description, "`ocean` Ocean")
	})
}

func TestLeaderboardEmbed(t *testing.T) {
	member := func(rank int, userID int64, level int, xp int64) domain.RankedMember {
		return domain.RankedMember{Rank: rank, MemberProgress: domain.MemberProgress{UserID: userID, Level: level, XP: xp}}
	}
	requester := &discordgo.User{ID: testUserID, Username: "Tester"}

	t.Run("medals then numbers", func(t *testing.T) {
		board := &domain.Leaderboard{Entries: []domain.RankedMember{
			member(1, 1, 5, 100),
			member(2, 2, 4, 60),
			member(3, 3, 3, 22),
			member(4, 4, 2, 7),
		}}
		board.Self = &board.Entries[1]

		embed := leaderboardEmbed("Guild", board, requester)

		assert.Equal(t, "Top 4 in Guild", embed.Title)
		assert.Equal(t, "Top Member: 🏆 <@1>", embed.Description)
		require.Len(t, embed.Fields, 3)
		assert.Equal(t, "🥇\n🥈\n🥉\n#4\n", embed.Fields[0].Value)
		assert.Contains(t, embed.Fields[2].Value, "Level 5 (100/173)")
		assert.Contains(t, embed.Fields[2].Value, "Level 2 (7/22)")
	})

	t.Run("requester outside the page", func(t *testing.T) {
		board := &domain.Leaderboard{
			Entries: []domain.RankedMember{member(1, 1, 5, 100)},
			Self:    &domain.RankedMember{Rank: 12, MemberProgress: domain.MemberProgress{UserID: 9, Level: 1, XP: 1}},
		}

		embed := leaderboardEmbed("Guild", board, requester)

		assert.Contains(t, embed.Fields[0].Value, "#12")
		assert.Contains(t, embed.Fields[1].Value, "**Tester**")
	})

	t.Run("requester without xp", func(t *testing.T) {
		board := &domain.Leaderboard{Entries: []domain.RankedMember{member(1, 1, 5, 100)}}

		embed := leaderboardEmbed("Guild", board, requester)

		assert.Contains(t, embed.Fields[2].Value, MsgLeaderboardSelf)
	})

	t.Run("empty guild", func(t *testing.T) {
		embed := leaderboardEmbed("Guild", &domain.Leaderboard{}, requester)
		assert.Equal(t, MsgLeaderboardEmpty, embed.Description)
	})
}

func TestGiveXP(t *testing.T) {
	target := &discordgo.ApplicationCommandInteractionDataOption{Name: "member", Type: discordgo.ApplicationCommandOptionUser, Value: testUserID}

	t.Run("owner only", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, handler := GiveXPCommand()

		handler(context.Background(), tc.Session, commandInteraction("givexp", target, intOption("amount", 50)), tc.Services)

		assert.Equal(t, MsgOwnerOnly, tc.LastResponse(t).Data.Content)
		tc.Leveling.AssertNotCalled(t, "GrantXP", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("grants", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, handler := GiveXPCommand()
		tc.Leveling.On("GrantXP", mock.Anything, parseSnowflake(testGuildID), parseSnowflake(testUserID), int64(500)).
			Return(&domain.AwardResult{XPGained: 500, NewXP: 500, OldLevel: 1, NewLevel: 8, LeveledUp: true}, nil)

		i := commandInteraction("givexp", target, intOption("amount", 500))
		i.Member.User.ID = testOwnerID

		handler(context.Background(), tc.Session, i, tc.Services)

		assert.Contains(t, tc.LastEditContent(t), "level **8**")
	})
}
