package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HonorBot_Go/internal/tracker"
)

// RegisterCommand returns the register command definition and handler
func RegisterCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "register",
		Description: "Link your Discord account to a Codewars username",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionUsername,
				Description: "Your Codewars username",
				Required:    true,
				MaxLength:   64,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc tracker.Service) {
		if !deferResponse(s, i) {
			return
		}

		id, ok := platformID(ctx, s, i)
		if !ok {
			return
		}

		username := getStringOption(i, OptionUsername)
		if username == "" {
			respondError(s, i, MsgRegisterUsage)
			return
		}

		rec, err := svc.Register(ctx, id, username)
		if err != nil {
			respondFriendlyError(ctx, s, i, err)
			return
		}

		embed := createEmbed(TitleRegistered,
			fmt.Sprintf("You are now registered as `%s`!", rec.ExternalUsername),
			ColorSuccess, "")
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "🏅 Starting Honor", Value: formatNumber(rec.RegistrationHonor), Inline: true},
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
