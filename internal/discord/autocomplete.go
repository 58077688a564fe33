package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/logger"
)

// handleAutocomplete routes autocomplete interactions to the appropriate handler
func handleAutocomplete(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	data := i.ApplicationCommandData()

	var choices []*discordgo.ApplicationCommandOptionChoice
	switch data.Name {
	case "buy":
		choices = shopChoices(ctx, svc, getFocusedOptionValue(data.Options))
	case "profile":
		choices = ownedBackgroundChoices(ctx, svc, getInteractionUser(i), getFocusedOptionValue(data.Options))
	case "command":
		choices = commandChoices(svc, getFocusedOptionValue(data.Options))
	case "tag":
		choices = tagChoices(ctx, svc, parseSnowflake(i.GuildID), getFocusedOptionValue(data.Options))
	default:
		logger.FromContext(ctx).Warn(LogMsgUnhandledAutocomplete, "command", data.Name)
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}); err != nil {
		logger.FromContext(ctx).Error(LogMsgRespondFailed, "error", err)
	}
}

// matchChoices keeps the items whose key or name contains focused, up to Discord's limit
func matchChoices(items []domain.Item, focused string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(items))
	for _, item := range items {
		if focused != "" && !strings.Contains(item.Key, focused) && !strings.Contains(strings.ToLower(item.Name), focused) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  item.Name,
			Value: item.Key,
		})
		if len(choices) >= maxAutocompleteChoices {
			break
		}
	}
	return choices
}

func shopChoices(ctx context.Context, svc *Services, focused string) []*discordgo.ApplicationCommandOptionChoice {
	items, err := svc.Economy.Shop(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgAutocompleteFailed, "command", "buy", "error", err)
		return nil
	}
	return matchChoices(items, focused)
}

// ownedBackgroundChoices offers the default background plus every owned one
func ownedBackgroundChoices(ctx context.Context, svc *Services, user *discordgo.User, focused string) []*discordgo.ApplicationCommandOptionChoice {
	items := []domain.Item{{Key: domain.DefaultBackground, Name: displayName(domain.DefaultBackground)}}
	if user != nil {
		owned, err := usableBackgrounds(ctx, svc, parseSnowflake(user.ID))
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgAutocompleteFailed, "command", "profile", "error", err)
		}
		items = append(items, owned...)
	}
	return matchChoices(items, focused)
}

func commandChoices(svc *Services, focused string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxAutocompleteChoices)
	for _, name := range svc.Registry.Names() {
		if !strings.HasPrefix(name, focused) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: "/" + name, Value: name})
		if len(choices) >= maxAutocompleteChoices {
			break
		}
	}
	return choices
}

func tagChoices(ctx context.Context, svc *Services, guildID int64, focused string) []*discordgo.ApplicationCommandOptionChoice {
	names, err := svc.Tags.Names(ctx, guildID, focused, maxAutocompleteChoices)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgAutocompleteFailed, "command", "tag", "error", err)
		return nil
	}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(names))
	for _, name := range names {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
	}
	return choices
}
