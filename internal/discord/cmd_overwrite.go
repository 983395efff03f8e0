package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HonorBot_Go/internal/tracker"
)

// OverwriteCommand returns the overwrite command definition and handler
func OverwriteCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "overwrite",
		Description: "Change the Codewars username linked to your account",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionUsername,
				Description: "Your new Codewars username",
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
			respondError(s, i, MsgOverwriteUsage)
			return
		}

		rec, err := svc.Overwrite(ctx, id, username)
		if err != nil {
			respondFriendlyError(ctx, s, i, err)
			return
		}

		sendEmbed(s, i, createEmbed(TitleOverwritten,
			fmt.Sprintf("Your Codewars username has been updated to `%s`!", rec.ExternalUsername),
			ColorSuccess, ""))
	}

	return cmd, handler
}
