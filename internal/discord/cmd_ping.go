package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HonorBot_Go/internal/logger"
	"github.com/osse101/HonorBot_Go/internal/tracker"
)

// PingCommand answers immediately with the gateway heartbeat latency.
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the bot is alive",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc tracker.Service) {
		content := MsgPong
		if latency := s.HeartbeatLatency(); latency > 0 {
			content = fmt.Sprintf("%s (gateway %dms)", MsgPong, latency.Milliseconds())
		}

		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: content,
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		}); err != nil {
			logger.FromContext(ctx).Error("Failed to respond to ping", "error", err)
		}
	}

	return cmd, handler
}
