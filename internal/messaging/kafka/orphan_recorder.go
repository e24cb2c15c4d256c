package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/indocarisinternational/admin-caris/internal/events"
	"github.com/indocarisinternational/admin-caris/internal/shared/contextutil"
)

// OrphanRecorder queues storage objects for asynchronous removal.
type OrphanRecorder struct {
	outbox OutboxRepository
}

func NewOrphanRecorder(outbox OutboxRepository) *OrphanRecorder {
	return &OrphanRecorder{outbox: outbox}
}

func (r *OrphanRecorder) RecordOrphan(ctx context.Context, bucket, path, reason string) error {
	rid := contextutil.GetRequestID(ctx)
	event := events.StorageOrphanedEvent{
		EventType:  events.StorageOrphanedEventType,
		RequestID:  rid,
		Bucket:     bucket,
		Paths:      []string{path},
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return r.outbox.Create(ctx, OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "storage_object",
		AggregateID:   bucket + "/" + path,
		EventType:     event.EventType,
		Topic:         events.StorageOrphanedTopic,
		Payload:       payload,
		Status:        OutboxStatusPending,
	})
}
