package app

import (
	"github.com/indocarisinternational/admin-caris/internal/assignment"
	"github.com/indocarisinternational/admin-caris/internal/auth"
	"github.com/indocarisinternational/admin-caris/internal/blog"
	"github.com/indocarisinternational/admin-caris/internal/client"
	"github.com/indocarisinternational/admin-caris/internal/employee"
	"github.com/indocarisinternational/admin-caris/internal/project"

	"gorm.io/gorm"
)

const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id TEXT NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload JSONB NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	next_retry_at TIMESTAMPTZ,
	error_message TEXT,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

const outboxIndexDDL = `
CREATE INDEX IF NOT EXISTS idx_outbox_events_pending
	ON outbox_events (status, next_retry_at, created_at);
`

const countersDDL = `
CREATE TABLE IF NOT EXISTS counters (
	name TEXT PRIMARY KEY,
	last_value BIGINT NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// migrate creates the tables in dependency order: clients before projects,
// employees and projects before their assignments.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&client.Client{},
		&project.Project{},
		&employee.Employee{},
		&assignment.Assignment{},
		&auth.User{},
		&blog.Blog{},
	); err != nil {
		return err
	}
	for _, ddl := range []string{outboxDDL, outboxIndexDDL, countersDDL} {
		if err := db.Exec(ddl).Error; err != nil {
			return err
		}
	}
	return nil
}
