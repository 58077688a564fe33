package discord

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/guildconfig"
	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
)

// CommandHandler handles a slash command invocation that passed the dispatch guard
type CommandHandler func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services)

// CommandFactory builds a command definition and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, CommandHandler)

// DefaultCommands lists every command the bot serves
func DefaultCommands() []CommandFactory {
	return []CommandFactory{
		PingCommand,
		HelpCommand,
		ProfileCommand,
		LeaderboardCommand,
		PersistenceCommand,
		PrefixCommand,
		CommandToggleCommand,
		DailyCommand,
		BalanceCommand,
		ShopCommand,
		BuyCommand,
		RemindCommand,
		TagCommand,
		PollCommand,
		GiveXPCommand,
		BlacklistCommand,
	}
}

// CommandRegistry holds the registered commands. It is built once at startup.
type CommandRegistry struct {
	Commands     map[string]*discordgo.ApplicationCommand
	Handlers     map[string]CommandHandler
	TextHandlers map[string]TextHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands:     make(map[string]*discordgo.ApplicationCommand),
		Handlers:     make(map[string]CommandHandler),
		TextHandlers: make(map[string]TextHandler),
	}
}

// NewDefaultRegistry creates a registry holding DefaultCommands and their prefixed forms
func NewDefaultRegistry() *CommandRegistry {
	r := NewCommandRegistry()
	for _, factory := range DefaultCommands() {
		r.Register(factory())
	}
	for name, handler := range DefaultTextCommands() {
		r.RegisterText(name, handler)
	}
	return r
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Has reports whether name is a registered command
func (r *CommandRegistry) Has(name string) bool {
	_, ok := r.Handlers[name]
	return ok
}

// Names returns the registered command names in sorted order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.Commands))
	for name := range r.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns the command definitions sorted by name
func (r *CommandRegistry) Definitions() []*discordgo.ApplicationCommand {
	defs := make([]*discordgo.ApplicationCommand, 0, len(r.Commands))
	for _, name := range r.Names() {
		defs = append(defs, r.Commands[name])
	}
	return defs
}

// isGuildOnly reports whether the definition forbids use in direct messages
func isGuildOnly(cmd *discordgo.ApplicationCommand) bool {
	return cmd.DMPermission != nil && !*cmd.DMPermission
}

// Handle runs the dispatch guard and then the command's handler
func (r *CommandRegistry) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	name := i.ApplicationCommandData().Name
	h, ok := r.Handlers[name]
	if !ok {
		return
	}
	log := logger.FromContext(ctx)

	user := getInteractionUser(i)
	inv := guildconfig.Invocation{
		GuildID:   parseSnowflake(i.GuildID),
		UserID:    parseSnowflake(user.ID),
		Command:   name,
		GuildOnly: isGuildOnly(r.Commands[name]),
	}
	if decision := svc.Guard.Evaluate(ctx, inv); !decision.Allowed {
		log.Info(LogMsgCommandDenied, "command", name, "reason", decision.Reason, "userID", inv.UserID)
		metrics.CommandsTotal.WithLabelValues(name, metrics.ResultDenied).Inc()
		respondEphemeral(ctx, s, i, denialMessage(decision.Reason))
		return
	}

	start := time.Now()
	h(ctx, s, i, svc)
	metrics.CommandDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	metrics.CommandsTotal.WithLabelValues(name, metrics.ResultSuccess).Inc()
}

func denialMessage(reason guildconfig.Reason) string {
	switch reason {
	case guildconfig.DenyUserBlacklisted:
		return MsgDeniedBlacklisted
	case guildconfig.DenyCommandDisabled:
		return MsgDeniedDisabled
	case guildconfig.DenyGuildOnly:
		return MsgDeniedGuildOnly
	default:
		return MsgGenericError
	}
}

// RegisterCommands registers the definitions with Discord, skipping the bulk
// overwrite when nothing changed unless forceUpdate is set. A non-empty guildID
// scopes the commands to one guild, which updates instantly during development.
func (b *Bot) RegisterCommands(ctx context.Context, forceUpdate bool) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCommandsChecking, "guild", b.devGuildID)

	desired := b.Registry.Definitions()

	if !forceUpdate {
		existing, err := b.Session.ApplicationCommands(b.AppID, b.devGuildID)
		if err != nil {
			return fmt.Errorf(ErrMsgFetchCommands, err)
		}
		if commandsEqual(existing, desired) {
			log.Info(LogMsgCommandsUnchanged, "count", len(existing))
			return nil
		}
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.devGuildID, desired); err != nil {
		return fmt.Errorf(ErrMsgOverwrite, err)
	}
	log.Info(LogMsgCommandsUpdated, "count", len(desired), "forced", forceUpdate)
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, d := range desired {
		e, ok := existingMap[d.Name]
		if !ok || !commandEqual(e, d) {
			return false
		}
	}
	return true
}

// commandEqual checks if two commands are equivalent
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	if !int64PtrEqual(a.DefaultMemberPermissions, b.DefaultMemberPermissions) {
		return false
	}
	if isGuildOnly(a) != isGuildOnly(b) {
		return false
	}
	return optionsEqual(a.Options, b.Options)
}

func optionsEqual(a, b []*discordgo.ApplicationCommandOption) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !optionEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// optionEqual compares options recursively so subcommand changes are detected
func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description ||
		a.Required != b.Required || a.Autocomplete != b.Autocomplete {
		return false
	}
	if !float64PtrEqual(a.MinValue, b.MinValue) || a.MaxValue != b.MaxValue {
		return false
	}
	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || fmt.Sprint(a.Choices[i].Value) != fmt.Sprint(b.Choices[i].Value) {
			return false
		}
	}
	return optionsEqual(a.Options, b.Options)
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func float64PtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// parseSnowflake converts a Discord id, yielding 0 for empty or malformed ids
func parseSnowflake(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
