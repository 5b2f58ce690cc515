package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tractorcare/order-service/internal/config"
	"github.com/tractorcare/order-service/internal/postgres"
	"github.com/tractorcare/order-service/internal/repo"
	"github.com/tractorcare/order-service/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load customers and catalog items from a YAML file into postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.New()
			logger := newLogger(conf.Env)
			if err := conf.Postgres.Validate(); err != nil {
				return fmt.Errorf("invalid postgres config: %w", err)
			}

			f, err := seed.Load(file)
			if err != nil {
				return err
			}

			db, err := postgres.New(conf.Postgres)
			if err != nil {
				return fmt.Errorf("failed to connect to db: %w", err)
			}
			defer db.Close()

			return seed.Apply(cmd.Context(), logger, repo.NewPostgresRepo(db), f)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "path to the seed file")
	return cmd
}
