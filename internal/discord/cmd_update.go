package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HonorBot_Go/internal/tracker"
)

// UpdateCommand returns the update command definition and handler
func UpdateCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "update",
		Description: "Save your current Codewars honor as the new baseline",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc tracker.Service) {
		if !deferResponse(s, i) {
			return
		}

		id, ok := platformID(ctx, s, i)
		if !ok {
			return
		}

		report, err := svc.Update(ctx, id)
		if err != nil {
			respondFriendlyError(ctx, s, i, err)
			return
		}

		embed := createEmbed(TitleUpdated, "", ColorSuccess, "")
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "👤 Codewars Username", Value: fmt.Sprintf("`%s`", report.Record.ExternalUsername), Inline: false},
			{Name: "🏅 Previous Honor", Value: formatNumber(report.Previous), Inline: true},
			{Name: "🏅 Current Honor", Value: formatNumber(report.Current), Inline: true},
			{Name: "🔄 Honor Change", Value: formatDelta(report.Change), Inline: true},
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
