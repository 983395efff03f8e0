package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HonorBot_Go/internal/tracker"
)

// UsersCommand returns the leaderboard command definition and handler
func UsersCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "users",
		Description: "Show the honor leaderboard for the last day, week and month",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc tracker.Service) {
		if !deferResponse(s, i) {
			return
		}

		board, err := svc.Leaderboard(ctx)
		if err != nil {
			respondFriendlyError(ctx, s, i, err)
			return
		}
		if board.Total() == 0 {
			respondError(s, i, MsgNoUsers)
			return
		}

		sendEmbed(s, i, createEmbed(TitleLeaderboard, formatLeaderboard(board), ColorGold, ""))
	}

	return cmd, handler
}
