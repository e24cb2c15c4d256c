package app

import (
	"context"

	"github.com/indocarisinternational/admin-caris/internal/config"
	"github.com/indocarisinternational/admin-caris/internal/middleware"
	"github.com/indocarisinternational/admin-caris/internal/shared/connection"
	"github.com/indocarisinternational/admin-caris/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and mounts the API and console routes on router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		cfg.ConnectRetries,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if cfg.RunMigrations {
		if err := migrate(gormDB); err != nil {
			return err
		}
		logger.Info("schema migrated")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.RedisPassword, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	store, err := storage.NewS3Storage(context.Background(), storage.S3Options{
		Region:       cfg.S3Region,
		Endpoint:     cfg.S3Endpoint,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		BucketPrefix: cfg.S3BucketPrefix,
		PublicURL:    cfg.S3PublicURL,
	}, zap.L())
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())

	return registerModules(router, cfg, sqlDB, gormDB, rdb, store, zap.L())
}
