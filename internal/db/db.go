package db

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

const (
	defaultDBDriver    = "sqlite"
	defaultPingTimeout = 5 * time.Second
)

// Open opens the SQLite database at path and enables foreign-key
// enforcement. The pool is capped at a single connection so every statement
// is serialized through one writer; check-then-act sequences in the store
// rely on this to keep their error paths deterministic.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(defaultDBDriver, path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
