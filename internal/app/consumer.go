package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/config"
	"github.com/indocarisinternational/admin-caris/internal/events"
	"github.com/indocarisinternational/admin-caris/internal/messaging/kafka/consumer"
	"github.com/indocarisinternational/admin-caris/internal/storage"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const orphanCleanupGroup = "admin-caris-storage-cleanup"

// RunConsumer removes orphaned uploads announced on the storage topic.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.NewS3Storage(ctx, storage.S3Options{
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

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.StorageOrphanedTopic,
		GroupID:        orphanCleanupGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	go consumer.ConsumeStorageOrphaned(ctx, reader, store, logger, 2*time.Second)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
