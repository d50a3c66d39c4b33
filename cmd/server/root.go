package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/santiago-morfe/TaskGeniusApi/internal/config"
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure"
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure/db/postgres"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type rootOptions struct {
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "server",
		Short: "TaskGenius task management API",
		Long: `TaskGenius serves a task management API with user accounts and
an AI assistant that gives advice about the caller's tasks.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newUsersCommand(opts))
	return cmd
}

// environment is what every subcommand needs before it does its work.
type environment struct {
	cfg config.Config
	log *slog.Logger
	db  *gorm.DB
}

func setup(ctx context.Context, opts *rootOptions) (*environment, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	log := infrastructure.NewLogger(cfg.Log, os.Stderr)

	db, err := postgres.Open(cfg.Database.Driver, cfg.Database.URL, log)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		_ = postgres.Close(db)
		return nil, err
	}

	return &environment{cfg: cfg, log: log, db: db}, nil
}

func (e *environment) close() {
	if err := postgres.Close(e.db); err != nil {
		e.log.Warn("failed to close database", "error", err)
	}
}
