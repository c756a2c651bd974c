package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flarewebs/flarewebs-server/internal/config"
	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/repository/postgres"
	"github.com/flarewebs/flarewebs-server/internal/worker"
)

func newCreateSuperuserCmd() *cobra.Command {
	var email, pass string

	cmd := &cobra.Command{
		Use:   "createsuperuser",
		Short: "Create an active superuser unless the e-mail is taken",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" || pass == "" {
				return errors.New("--email and --password are required")
			}
			ctx := cmd.Context()

			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			l := logger.New(cfg.LogLevel, cfg.LogDevelopment)

			conn, err := postgres.NewConection(ctx, cfg.Database.DSN, l)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer conn.Close()

			queue := worker.NewQueue(0, 1, l, nil)
			queue.Start()
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				_ = queue.Shutdown(ctx)
			}()

			svc, err := newServices(cfg, conn, nil, queue, l)
			if err != nil {
				return err
			}

			user, created, err := svc.users.EnsureSuperuser(ctx, email, pass)
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "user %s already exists (id %d)\n", user.Email, user.ID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "superuser %s created (id %d)\n", user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "superuser e-mail")
	cmd.Flags().StringVar(&pass, "password", "", "superuser password")

	return cmd
}
