// Package txdb lets gorm repositories join a transaction opened on *sql.DB.
package txdb

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a session of db whose statements run on tx. A nil tx returns db unchanged.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	ctx := db.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	// A non-nil Context makes Session clone the statement, so db keeps its own pool.
	session := db.Session(&gorm.Session{Context: ctx, NewDB: true, SkipDefaultTransaction: true})
	session.Statement.ConnPool = tx
	return session
}
