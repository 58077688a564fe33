package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MinesocBot_Go/internal/domain"
)

// DailyCommand pays out the daily reward
func DailyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "daily",
		Description: "Collect your daily " + domain.CurrencyName,
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(ctx, s, i, false) {
			return
		}
		user := getInteractionUser(i)

		result, err := svc.Economy.Daily(ctx, parseSnowflake(user.ID))
		if err != nil {
			respondFriendlyError(ctx, s, i, "daily", err)
			return
		}

		sendEmbed(ctx, s, i, dailyEmbed(result))
	}

	return cmd, handler
}

func dailyEmbed(result *domain.DailyResult) *discordgo.MessageEmbed {
	var sb strings.Builder
	fmt.Fprintf(&sb, MsgDailyPaid, formatCredits(result.Amount))
	fmt.Fprintf(&sb, MsgDailyStreak, result.Streak)
	if result.StreakLost {
		sb.WriteString(MsgDailyStreakLost)
	}
	embed := createEmbed("", sb.String(), ColorSuccess, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Balance", Value: formatCredits(result.NewBalance), Inline: true},
	}
	return embed
}

// BalanceCommand shows the invoker's wallet
func BalanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "balance",
		Description: "Show how many " + domain.CurrencyName + " you have",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(ctx, s, i, true) {
			return
		}
		user := getInteractionUser(i)

		balance, err := svc.Economy.Balance(ctx, parseSnowflake(user.ID))
		if err != nil {
			respondFriendlyError(ctx, s, i, "balance", err)
			return
		}
		editContent(ctx, s, i, balanceMessage(balance))
	}

	return cmd, handler
}

func balanceMessage(balance int64) string {
	if balance == 0 {
		return MsgBalanceEmpty
	}
	return fmt.Sprintf(MsgBalance, formatCredits(balance))
}

// ShopCommand lists purchasable backgrounds
func ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "shop",
		Description: "Browse the rank card backgrounds for sale",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(ctx, s, i, false) {
			return
		}

		items, err := svc.Economy.Shop(ctx)
		if err != nil {
			respondFriendlyError(ctx, s, i, "shop", err)
			return
		}

		sendEmbed(ctx, s, i, shopEmbed(items))
	}

	return cmd, handler
}

func shopEmbed(items []domain.Item) *discordgo.MessageEmbed {
	embed := createEmbed(MsgShopTitle, MsgShopEmpty, ColorGold, "")
	if len(items) > 0 {
		embed.Description = MsgShopHint
		for _, item := range items {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   item.Name,
				Value:  fmt.Sprintf("`%s` %s", item.Key, formatCredits(item.Price)),
				Inline: true,
			})
		}
	}
	return embed
}

// BuyCommand purchases a background from the shop
func BuyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "buy",
		Description: "Buy a rank card background",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "background",
				Description:  "Background to buy",
				Required:     true,
				Autocomplete: true,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(ctx, s, i, false) {
			return
		}
		user := getInteractionUser(i)

		key := ""
		if opt, ok := optionMap(getOptions(i))["background"]; ok {
			key = strings.ToLower(strings.TrimSpace(opt.StringValue()))
		}

		result, err := svc.Economy.Buy(ctx, parseSnowflake(user.ID), key)
		if err != nil {
			respondFriendlyError(ctx, s, i, "buy", err)
			return
		}

		embed := createEmbed("", fmt.Sprintf(MsgPurchased, result.Item.Name, formatCredits(result.Item.Price)), ColorSuccess, "")
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: formatCredits(result.NewBalance), Inline: true},
			{Name: "Equip", Value: fmt.Sprintf(MsgPurchaseEquipHint, result.Item.Key), Inline: true},
		}
		sendEmbed(ctx, s, i, embed)
	}

	return cmd, handler
}
