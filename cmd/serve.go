package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpctx "github.com/flarewebs/flarewebs-server/internal/api/http/context"
	"github.com/flarewebs/flarewebs-server/internal/api/http/router"
	httpServer "github.com/flarewebs/flarewebs-server/internal/api/http/server"
	"github.com/flarewebs/flarewebs-server/internal/config"
	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/metrics"
	"github.com/flarewebs/flarewebs-server/internal/repository/postgres"
	"github.com/flarewebs/flarewebs-server/internal/server"
	"github.com/flarewebs/flarewebs-server/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	l := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	defer func() { _ = l.Sync() }()

	logAppVersion()

	conn, err := postgres.NewConection(ctx, cfg.Database.DSN, l)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer conn.Close()

	objects, err := newObjectStorage(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}
	if err := objects.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("failed to prepare bucket: %w", err)
	}

	m := metrics.New()
	m.Registry().MustRegister(collectors.NewDBStatsCollector(conn.SQL(), cfg.ProjectName))

	queue := worker.NewQueue(cfg.Worker.QueueSize, cfg.Worker.Count, l, m)
	queue.Start()

	svc, err := newServices(cfg, conn, objects, queue, l)
	if err != nil {
		return err
	}

	root, created, err := svc.users.EnsureSuperuser(ctx, cfg.RootUser.Email, cfg.RootUser.Password)
	if err != nil {
		return fmt.Errorf("failed to bootstrap superuser: %w", err)
	}
	if !created {
		l.Debug("superuser already present", "email", root.Email)
	}

	r := router.New(
		router.Services{
			Auth:          svc.auth,
			Users:         svc.users,
			Store:         svc.store,
			Authenticator: svc.auth,
			DB:            conn.SQL(),
		},
		router.Options{
			AllowedHosts:  cfg.HTTP.AllowedHosts,
			AuthRateLimit: cfg.HTTP.AuthRateLimit,
		},
		queue,
		m,
		httpctx.NewManager(),
		l,
	)
	srv := httpServer.NewHTTPServer(r.Register(), cfg.HTTP.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l.Info("Starting server on", "address", srv.Address(), "https", cfg.HTTP.EnableHTTPS)
		return srv.Start(server.NewSecurityLayer(cfg.HTTP))
	})
	g.Go(func() error {
		<-gctx.Done()
		l.Info("received interruption signal, shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			l.Error("error during server shutdown", "error", err, "address", srv.Address())
		}
		if err := queue.Shutdown(shutdownCtx); err != nil {
			l.Error("error draining background tasks", "error", err)
		}
		return nil
	})

	err = g.Wait()
	l.Info("shutdown complete")
	return err
}
