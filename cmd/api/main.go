package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/propadmin/prop-admin-backend/config"
	"github.com/propadmin/prop-admin-backend/internal/assets"
	"github.com/propadmin/prop-admin-backend/internal/auth"
	"github.com/propadmin/prop-admin-backend/internal/bootstrap"
	cronjob "github.com/propadmin/prop-admin-backend/internal/registry/cron"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	store, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to store", zap.Error(err))
	}
	defer store.Close()

	authClient, err := auth.InitializeFirebase(cfg.Firebase)
	if err != nil {
		logger.Fatal("failed to initialize identity provider", zap.Error(err))
	}
	if authClient == nil {
		logger.Warn("no identity provider configured, API is running open")
	}

	uploader, err := assets.NewS3Uploader(ctx, cfg.Assets)
	if err != nil {
		logger.Fatal("failed to initialize asset storage", zap.Error(err))
	}

	router, registry := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "prop-admin-backend",
		Version:     cfg.App.Version,
		Store:       store,
		AuthClient:  authClient,
		Uploader:    uploaderOrNil(uploader),
		Logger:      logger,
	})

	scheduler := cronjob.NewScheduler(registry, logger)
	if err := scheduler.Start(); err != nil {
		logger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer scheduler.Stop()

	logger.Info("listening", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

// uploaderOrNil keeps the nil check in one place: a typed nil *S3Uploader
// must not end up inside a non-nil interface value.
func uploaderOrNil(u *assets.S3Uploader) assets.Uploader {
	if u == nil {
		return nil
	}
	return u
}
