package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/events"
	"github.com/indocarisinternational/admin-caris/internal/messaging/kafka"
	kafkaMock "github.com/indocarisinternational/admin-caris/internal/messaging/kafka/mock"
	"github.com/indocarisinternational/admin-caris/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	ctx := context.Background()

	t.Run("inserts pending event", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
			WithArgs("evt-1", "", "storage_object", "projects/images/1.png",
				events.StorageOrphanedEventType, events.StorageOrphanedTopic, []byte(`{}`), kafka.OutboxStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, kafka.OutboxEvent{
			ID:            "evt-1",
			AggregateType: "storage_object",
			AggregateID:   "projects/images/1.png",
			EventType:     events.StorageOrphanedEventType,
			Topic:         events.StorageOrphanedTopic,
			Payload:       []byte(`{}`),
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects event without topic", func(t *testing.T) {
		err := repo.Create(ctx, kafka.OutboxEvent{ID: "evt-2", Payload: []byte(`{}`)})
		assert.EqualError(t, err, "outbox topic is required")
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("evt-1", "REQ-1", "storage_object", "blogs/banners/1.png", events.StorageOrphanedEventType,
		events.StorageOrphanedTopic, []byte(`{}`), kafka.OutboxStatusFailed, 2, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 20, 10).
		WillReturnRows(rows)

	got, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "REQ-1", got[0].RequestID)
	assert.Equal(t, 2, got[0].RetryCount)
}

func TestOrphanRecorder_RecordOrphan(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	ctx := contextutil.WithRequestID(context.Background(), "REQ-9")

	outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
		assert.Equal(t, "REQ-9", e.RequestID)
		assert.Equal(t, events.StorageOrphanedTopic, e.Topic)
		assert.Equal(t, "clients/logos/1_a.png", e.AggregateID)
		assert.Contains(t, string(e.Payload), `"paths":["logos/1_a.png"]`)
		return nil
	})

	err := kafka.NewOrphanRecorder(outbox).RecordOrphan(ctx, "clients", "logos/1_a.png", "insert failed")

	assert.NoError(t, err)
}
