package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/recall/internal/app"
)

func newMigrateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			if err := app.Migrate(cmd.Context(), cfg.Database, logger); err != nil {
				return err
			}
			cmd.Println("database schema is up to date")
			return nil
		},
	}
}
