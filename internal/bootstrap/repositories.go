package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/HonorBot_Go/internal/config"
	"github.com/osse101/HonorBot_Go/internal/database"
	"github.com/osse101/HonorBot_Go/internal/database/memory"
	"github.com/osse101/HonorBot_Go/internal/database/postgres"
	"github.com/osse101/HonorBot_Go/internal/repository"
)

// OpenStore picks the user store backend from config. The returned func
// releases the store's resources.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.UserStore, func(), error) {
	slog.Info(LogMsgStoreSelected, "driver", cfg.StoreDriver)

	if !cfg.UsesPostgres() {
		slog.Warn(LogMsgMemoryStoreWarn)
		return memory.NewUserStore(nil), func() {}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{MaxConns: cfg.DBMaxConns})
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewUserStore(pool, nil), pool.Close, nil
}
