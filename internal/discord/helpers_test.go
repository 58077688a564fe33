package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinesocBot_Go/internal/blacklist"
	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/economy"
	"github.com/osse101/MinesocBot_Go/internal/guildconfig"
	"github.com/osse101/MinesocBot_Go/internal/leveling"
	"github.com/osse101/MinesocBot_Go/internal/profile"
	"github.com/osse101/MinesocBot_Go/internal/reminder"
	"github.com/osse101/MinesocBot_Go/internal/tags"
)

const (
	testGuildID = "111111111111111111"
	testUserID  = "222222222222222222"
	testOwnerID = "333333333333333333"
	testBotID   = "444444444444444444"
	testChannel = "555555555555555555"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

type capturedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        []byte
}

// TestContext wires a discordgo session to an in-memory transport and mock services
type TestContext struct {
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper
	Services     *Services

	Leveling  *leveling.MockService
	Guilds    *guildconfig.MockService
	Blacklist *blacklist.MockService
	Economy   *economy.MockService
	Reminders *mockReminders
	Tags      *tags.MockService
	Renderer  *mockRenderer

	mu       sync.Mutex
	requests []capturedRequest
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	session.State.User = &discordgo.User{ID: testBotID, Username: "Minesoc"}

	tc := &TestContext{
		Session:   session,
		Leveling:  new(leveling.MockService),
		Guilds:    new(guildconfig.MockService),
		Blacklist: new(blacklist.MockService),
		Economy:   new(economy.MockService),
		Reminders: new(mockReminders),
		Tags:      new(tags.MockService),
		Renderer:  new(mockRenderer),
	}

	tc.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			tc.mu.Lock()
			tc.requests = append(tc.requests, capturedRequest{
				Method:      req.Method,
				Path:        req.URL.Path,
				ContentType: req.Header.Get("Content-Type"),
				Body:        body,
			})
			tc.mu.Unlock()

			switch {
			case strings.HasSuffix(req.URL.Path, "/commands"):
				return jsonResponse("[]"), nil
			case req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/users/@me/channels"):
				return jsonResponse(`{"id":"666666666666666666","type":1}`), nil
			default:
				return jsonResponse("{}"), nil
			}
		},
	}
	session.Client = &http.Client{Transport: tc.DiscordMocks}

	registry := NewDefaultRegistry()
	tc.Services = &Services{
		Leveling:  tc.Leveling,
		Guilds:    tc.Guilds,
		Guard:     guildconfig.NewGuard(tc.Guilds, tc.Blacklist),
		Blacklist: tc.Blacklist,
		Economy:   tc.Economy,
		Reminders: tc.Reminders,
		Tags:      tc.Tags,
		Renderer:  tc.Renderer,
		Registry:  registry,
		OwnerID:   parseSnowflake(testOwnerID),
	}
	return tc
}

// Requests returns every captured Discord API call
func (tc *TestContext) Requests() []capturedRequest {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return append([]capturedRequest(nil), tc.requests...)
}

// LastEdit decodes the last JSON edit of the deferred response
func (tc *TestContext) LastEdit(t *testing.T) *discordgo.WebhookEdit {
	t.Helper()
	reqs := tc.Requests()
	for i := len(reqs) - 1; i >= 0; i-- {
		r := reqs[i]
		if r.Method == http.MethodPatch && strings.HasPrefix(r.ContentType, "application/json") {
			var edit discordgo.WebhookEdit
			require.NoError(t, json.Unmarshal(r.Body, &edit))
			return &edit
		}
	}
	t.Fatalf("no interaction edit captured")
	return nil
}

// LastEditContent returns the content of the last edit, or "" if it had none
func (tc *TestContext) LastEditContent(t *testing.T) string {
	edit := tc.LastEdit(t)
	if edit.Content == nil {
		return ""
	}
	return *edit.Content
}

// LastEditEmbed returns the first embed of the last edit
func (tc *TestContext) LastEditEmbed(t *testing.T) *discordgo.MessageEmbed {
	edit := tc.LastEdit(t)
	require.NotNil(t, edit.Embeds)
	require.NotEmpty(t, *edit.Embeds)
	return (*edit.Embeds)[0]
}

// LastResponse decodes the last immediate interaction response
func (tc *TestContext) LastResponse(t *testing.T) *discordgo.InteractionResponse {
	t.Helper()
	reqs := tc.Requests()
	for i := len(reqs) - 1; i >= 0; i-- {
		r := reqs[i]
		if r.Method == http.MethodPost && strings.HasSuffix(r.Path, "/callback") {
			var resp discordgo.InteractionResponse
			require.NoError(t, json.Unmarshal(r.Body, &resp))
			return &resp
		}
	}
	t.Fatalf("no interaction response captured")
	return nil
}

// commandInteraction builds a guild slash-command interaction from testUserID
func commandInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "777777777777777777",
			AppID:     "888888888888888888",
			Token:     "interaction-token",
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   testGuildID,
			ChannelID: testChannel,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: testUserID, Username: "Tester"},
			},
		},
	}
}

func subOption(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: options,
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

// intOption carries a float64 like a decoded gateway payload does
func intOption(name string, value int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func boolOption(name string, value bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionBoolean,
		Value: value,
	}
}

func allowAll(tc *TestContext) {
	tc.Blacklist.On("IsUserBlacklisted", mock.Anything, mock.Anything).Return(false, nil).Maybe()
	tc.Guilds.On("Get", mock.Anything, mock.Anything).Return(&domain.GuildConfig{XPEnabled: true}, nil).Maybe()
}

type mockReminders struct {
	mock.Mock
}

func (m *mockReminders) Create(ctx context.Context, req reminder.CreateRequest) (*domain.Reminder, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *mockReminders) List(ctx context.Context, userID int64) ([]domain.Reminder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

func (m *mockReminders) Delete(ctx context.Context, userID, reminderID int64) error {
	return m.Called(ctx, userID, reminderID).Error(0)
}

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(ctx context.Context, card profile.Card) ([]byte, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
