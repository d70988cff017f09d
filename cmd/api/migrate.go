package main

import (
	"github.com/spf13/cobra"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/config"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/infrastructure/persistence/postgres"
	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

func newMigrateCmd() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply (or with --down, revert) database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.NewZapLogger(cfg.App.Env, cfg.App.LogLevel)
			if err != nil {
				return err
			}
			defer log.Sync()

			if down {
				if err := postgres.MigrateDown(cfg.DB.MigrateURL()); err != nil {
					return err
				}
				log.Info("migrations reverted")
				return nil
			}
			if err := postgres.MigrateUp(cfg.DB.MigrateURL()); err != nil {
				return err
			}
			log.Info("migrations applied")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "revert every migration")
	return cmd
}
