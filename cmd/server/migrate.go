package main

import (
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure/db/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer env.close()

			if err := postgres.Migrate(env.db.WithContext(cmd.Context())); err != nil {
				return err
			}
			env.log.Info("database migrated")
			return nil
		},
	}
}
