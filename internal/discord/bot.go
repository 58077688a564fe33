package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/blacklist"
	"github.com/osse101/MinesocBot_Go/internal/logger"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	Registry *CommandRegistry
	Services *Services

	gate         *blacklist.GuildJoinGate
	devGuildID   string
	forceUpdate  bool
	storeTimeout time.Duration
}

// Config holds the bot configuration
type Config struct {
	Token              string
	AppID              string
	DevGuildID         string
	ForceCommandUpdate bool
	StoreTimeout       time.Duration
}

// Intents the bot subscribes to. Message content is needed to recognise prefixed commands.
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent |
	discordgo.IntentsDirectMessages

// New creates a new Discord bot. svc.Registry defaults to the full command set.
func New(cfg Config, svc *Services, gate *blacklist.GuildJoinGate) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSession, err)
	}
	s.Identify.Intents = Intents

	if svc.Registry == nil {
		svc.Registry = NewDefaultRegistry()
	}

	return &Bot{
		Session:      s,
		AppID:        cfg.AppID,
		Registry:     svc.Registry,
		Services:     svc,
		gate:         gate,
		devGuildID:   cfg.DevGuildID,
		forceUpdate:  cfg.ForceCommandUpdate,
		storeTimeout: cfg.StoreTimeout,
	}, nil
}

// Start installs the gateway handlers, opens the connection and syncs the slash commands
func (b *Bot) Start(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgBotStarting, "appID", b.AppID)

	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)
	b.Session.AddHandler(b.guildCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf(ErrMsgOpenSession, err)
	}
	return b.RegisterCommands(ctx, b.forceUpdate)
}

// Stop closes the gateway connection
func (b *Bot) Stop(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgBotStopping)
	return b.Session.Close()
}

// eventContext scopes one gateway event: a fresh request id and the store deadline
func (b *Bot) eventContext() (context.Context, context.CancelFunc) {
	ctx := logger.NewRequestContext(context.Background())
	if b.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, b.storeTimeout+commandTimeoutSlack)
}

// recoverHandler keeps a panicking handler from taking down the gateway loop
func recoverHandler(ctx context.Context, handler string) {
	if r := recover(); r != nil {
		logger.FromContext(ctx).Error(LogMsgHandlerPanic, "handler", handler, "panic", r)
	}
}
