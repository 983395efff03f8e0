package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/osse101/HonorBot_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply or inspect the embedded schema migrations (up, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPool(ctx, dbConnString(), database.PoolOptions{MaxConns: 2})
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Schema is up to date")
		return nil
	case "status":
		PrintHeader("Migration status")
		statuses, err := database.MigrationStatus(ctx, pool)
		if err != nil {
			return err
		}
		for _, st := range statuses {
			if st.State == goose.StateApplied {
				PrintSuccess("%d %s (applied %s)", st.Source.Version, st.Source.Path, st.AppliedAt.Format(time.RFC3339))
			} else {
				PrintWarning("%d %s (pending)", st.Source.Version, st.Source.Path)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q: want up or status", args[0])
	}
}
