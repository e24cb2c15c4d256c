package events

import "time"

const (
	StorageOrphanedTopic     = "backoffice.storage.orphaned.v1"
	StorageOrphanedEventType = "storage_orphaned"
)

// StorageOrphanedEvent names uploaded objects that no record references.
type StorageOrphanedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	Bucket     string    `json:"bucket"`
	Paths      []string  `json:"paths"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}
