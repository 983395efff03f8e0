package bootstrap

import (
	"log/slog"

	"github.com/osse101/HonorBot_Go/internal/config"
	"github.com/osse101/HonorBot_Go/internal/logger"
)

// SetupLogger initializes the process-wide logger from config and logs the
// startup banner.
func SetupLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.AddSource(),
	))

	slog.Info(LogMsgStartingHonorBot,
		"store", cfg.StoreDriver,
		"guild_id", cfg.DiscordGuildID,
		"leaderboard_size", cfg.LeaderboardSize)
}
