package discord

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HonorBot_Go/internal/honor"
	"github.com/osse101/HonorBot_Go/internal/tracker"
)

// ProfileCommand returns the profile command definition and handler
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "profile",
		Description: "Show your Codewars honor and recent changes",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc tracker.Service) {
		if !deferResponse(s, i) {
			return
		}

		id, ok := platformID(ctx, s, i)
		if !ok {
			return
		}

		report, err := svc.Profile(ctx, id)
		if err != nil {
			respondFriendlyError(ctx, s, i, err)
			return
		}

		sendEmbed(s, i, profileEmbed(report))
	}

	return cmd, handler
}

func profileEmbed(report *tracker.ProfileReport) *discordgo.MessageEmbed {
	rec := report.Record
	embed := createEmbed(TitleProfile, "", ColorInfo, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "🆔 ID", Value: fmt.Sprintf("`%d`", rec.ID), Inline: true},
		{Name: "📝 Codewars Username", Value: fmt.Sprintf("`%s`", rec.ExternalUsername), Inline: true},
		{Name: "🎖️ Rank", Value: formatRank(report.Profile.Rank), Inline: true},
		{Name: "📅 Registration Date", Value: formatTime(rec.RegistrationDate), Inline: true},
		{Name: "⏱️ Last Updated", Value: formatTime(rec.LastUpdated), Inline: true},
		{Name: "🏅 Registration Honor", Value: formatNumber(rec.RegistrationHonor), Inline: true},
		{Name: "🏅 Current Honor", Value: formatNumber(report.Profile.Honor), Inline: true},
	}
	if pos := report.Profile.LeaderboardPosition; pos != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "🌍 Leaderboard Position", Value: "#" + strconv.Itoa(*pos), Inline: true,
		})
	}
	for _, w := range honor.Windows {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("🔄 Honor Earned (%s)", w.Label()),
			Value:  formatDelta(report.Changes.Display(w)),
			Inline: true,
		})
	}
	return embed
}
