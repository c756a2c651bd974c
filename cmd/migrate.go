package main

import (
	"github.com/spf13/cobra"

	"github.com/flarewebs/flarewebs-server/database"
	"github.com/flarewebs/flarewebs-server/internal/config"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|redo|version]",
		Short:     "Run database migrations",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"up", "down", "status", "redo", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}

			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			return database.Migrate(cmd.Context(), cfg.Database.DSN, command)
		},
	}
}
