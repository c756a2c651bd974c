package main

import (
	"context"
	"fmt"

	"github.com/flarewebs/flarewebs-server/internal/cache"
	"github.com/flarewebs/flarewebs-server/internal/config"
	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/mailer"
	"github.com/flarewebs/flarewebs-server/internal/model"
	"github.com/flarewebs/flarewebs-server/internal/password"
	"github.com/flarewebs/flarewebs-server/internal/repository/postgres"
	"github.com/flarewebs/flarewebs-server/internal/service"
	"github.com/flarewebs/flarewebs-server/internal/storage"
	storageMinio "github.com/flarewebs/flarewebs-server/internal/storage/minio"
	storageS3 "github.com/flarewebs/flarewebs-server/internal/storage/s3"
	"github.com/flarewebs/flarewebs-server/internal/token"
)

type services struct {
	auth  *service.Auth
	users *service.Users
	store *service.Store
}

func newServices(
	cfg *config.Config,
	conn *postgres.Connection,
	objects model.ObjectStorage,
	scheduler model.Scheduler,
	l *logger.Logger,
) (*services, error) {
	userCache, err := cache.New(cfg.Cache.RedisURL, cfg.Cache.TTL, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user cache: %w", err)
	}

	composer, err := mailer.NewComposer(cfg.ProjectName, cfg.ServerHost)
	if err != nil {
		return nil, fmt.Errorf("failed to load mail templates: %w", err)
	}
	notifier := service.NewNotifier(scheduler, mailer.New(cfg.SMTP, l), composer, l)

	hasher := password.NewArgon2(cfg.KDF.Time, cfg.KDF.MemKiB, cfg.KDF.Par)
	tokens := service.NewTokenService(token.NewJWT(), service.TokenConfig{
		Secret:         cfg.JWT.Secret,
		AccessTTL:      cfg.JWT.AccessTokenTTL(),
		UserTokenHours: cfg.JWT.ResetTokenExpireHours,
	})

	userRepo := postgres.NewUserRepository(conn)
	storeRepo := postgres.NewStoreRepository(conn)

	return &services{
		auth:  service.NewAuth(userRepo, userCache, hasher, tokens, notifier, l),
		users: service.NewUsers(userRepo, userCache, hasher, tokens, notifier, l),
		store: service.NewStore(storeRepo, objects, scheduler, l),
	}, nil
}

// newObjectStorage builds the storage adapter on the configured driver.
func newObjectStorage(ctx context.Context, cfg config.Storage) (*storage.Adapter, error) {
	var (
		backend storage.Backend
		err     error
	)
	switch cfg.Driver {
	case "minio":
		backend, err = storageMinio.New(storageMinio.Options{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			UseSSL:    cfg.UseSSL,
		})
	case "s3":
		endpoint := ""
		if cfg.Endpoint != "" {
			endpoint = cfg.EndpointURL()
		}
		backend, err = storageS3.New(ctx, storageS3.Options{
			Endpoint:  endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	return storage.NewAdapter(backend, storage.Config{
		Endpoint:        cfg.EndpointURL(),
		Bucket:          cfg.Bucket,
		PublicLocations: cfg.PublicLocations,
		URLExpiry:       cfg.URLExpiry(),
	}, storage.NewThumbnailer()), nil
}
