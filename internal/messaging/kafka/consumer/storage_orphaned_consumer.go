package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/events"
	"github.com/indocarisinternational/admin-caris/internal/storage"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

const maxRetryDelay = time.Minute

// ConsumeStorageOrphaned removes objects named by orphaned-file events until ctx is cancelled.
// A failed removal is retried, doubling retryDelay up to a minute, before the
// message is committed; commits are cumulative so nothing is skipped.
func ConsumeStorageOrphaned(
	ctx context.Context,
	reader MessageReader,
	store storage.Storage,
	logger *zap.Logger,
	retryDelay time.Duration,
) {
	if retryDelay <= 0 {
		retryDelay = time.Second
	}

	log := logger.Named("kafka.consumer.storage_orphaned")
	log.Info("storage orphaned consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("storage orphaned consumer stopped")
				return
			}
			log.Error("fetch storage orphaned message failed", zap.Error(err))
			continue
		}

		handleStorageOrphaned(ctx, reader, store, msg, retryDelay, log)
	}
}

func handleStorageOrphaned(
	ctx context.Context,
	reader MessageReader,
	store storage.Storage,
	msg kafkago.Message,
	retryDelay time.Duration,
	log *zap.Logger,
) {
	var event events.StorageOrphanedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.Bucket == "" {
		log.Error("decode storage orphaned event failed", zap.ByteString("value", msg.Value), zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if len(event.Paths) > 0 {
		if err := removeWithRetry(ctx, store, event, retryDelay, log); err != nil {
			log.Warn("orphaned objects left uncommitted",
				zap.String("request_id", event.RequestID),
				zap.String("bucket", event.Bucket),
				zap.Strings("paths", event.Paths),
				zap.Error(err),
			)
			return
		}
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit storage orphaned message failed", zap.Error(err))
		return
	}

	log.Info("orphaned objects removed",
		zap.String("request_id", event.RequestID),
		zap.String("bucket", event.Bucket),
		zap.Strings("paths", event.Paths),
		zap.String("reason", event.Reason),
	)
}

// removeWithRetry returns nil once the objects are gone, or ctx's error.
func removeWithRetry(
	ctx context.Context,
	store storage.Storage,
	event events.StorageOrphanedEvent,
	retryDelay time.Duration,
	log *zap.Logger,
) error {
	delay := retryDelay
	for attempt := 1; ; attempt++ {
		err := store.Remove(ctx, event.Bucket, event.Paths...)
		if err == nil {
			return nil
		}
		log.Error("remove orphaned objects failed",
			zap.String("request_id", event.RequestID),
			zap.String("bucket", event.Bucket),
			zap.Strings("paths", event.Paths),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
		if delay > maxRetryDelay {
			delay = maxRetryDelay
		}
	}
}
