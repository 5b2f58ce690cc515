package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tractorcare/order-service/internal/config"
	"github.com/tractorcare/order-service/internal/postgres"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply or roll back postgres migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.New()
			if err := conf.Postgres.Validate(); err != nil {
				return fmt.Errorf("invalid postgres config: %w", err)
			}

			db, err := postgres.New(conf.Postgres)
			if err != nil {
				return fmt.Errorf("failed to connect to db: %w", err)
			}
			defer db.Close()

			ctx := cmd.Context()
			switch args[0] {
			case "up":
				return postgres.MigrateUp(ctx, db)
			case "down":
				return postgres.MigrateDown(ctx, db)
			default:
				return postgres.MigrationStatus(ctx, db)
			}
		},
	}
}
