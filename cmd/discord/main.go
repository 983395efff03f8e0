package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/HonorBot_Go/internal/bootstrap"
	"github.com/osse101/HonorBot_Go/internal/codewars"
	"github.com/osse101/HonorBot_Go/internal/config"
	"github.com/osse101/HonorBot_Go/internal/discord"
	"github.com/osse101/HonorBot_Go/internal/leaderboard"
	"github.com/osse101/HonorBot_Go/internal/server"
	"github.com/osse101/HonorBot_Go/internal/tracker"
	"github.com/osse101/HonorBot_Go/internal/worker"
)

func main() {
	// Load .env file
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupLogger(cfg)

	if err := run(cfg); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	if err := store.Initialize(ctx); err != nil {
		closeStore()
		return err
	}

	client := codewars.NewClient(cfg.CodewarsBaseURL, cfg.CodewarsTimeout)
	board := leaderboard.NewBuilder(client, worker.NewPool(cfg.LeaderboardConcurrency), cfg.LeaderboardSize)
	svc := tracker.NewService(store, client, board, tracker.CacheConfig{
		Size: cfg.UserCacheSize,
		TTL:  cfg.UserCacheTTL,
	}, nil)

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, svc)
	if err != nil {
		closeStore()
		return err
	}
	bot.Registry.RegisterAll(discord.DefaultCommands())

	ops := server.NewServer(cfg.OpsPort, cfg.Version, bot, svc)
	go func() {
		if err := ops.Start(); err != nil {
			slog.Error("Ops server failed", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:     ops,
			CloseStore: closeStore,
		})
	}()

	if cfg.ForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.ForceCommandUpdate); err != nil {
		// Don't exit - bot can still run if commands are already registered
		slog.Error("Failed to register commands", "error", err)
	}

	// Blocks until SIGINT/SIGTERM.
	return bot.Run()
}
