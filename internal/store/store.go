// Package store is the data-access layer of the inventory backend. A Store
// owns the SQLite connection and exposes every read and write operation on
// the ingredient catalog, per-user inventory rows, and user records.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pantrykit/apiserver/internal/db"
)

// Store mediates between the relational schema and the request layer. One
// long-lived instance exists per process; construct it at startup, Connect
// once, and Close on shutdown.
type Store struct {
	path   string
	logger zerolog.Logger
	db     *sql.DB
}

// New constructs a Store for the SQLite database at path. The store is not
// usable until Connect succeeds.
func New(path string, logger zerolog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Connect opens the database, enables foreign-key enforcement, and applies
// every schema definition idempotently in dependency order. Failures are
// logged and returned so process startup fails loudly.
func (s *Store) Connect(ctx context.Context) error {
	dbConn, err := db.Open(ctx, s.path)
	if err != nil {
		s.logger.Error().Err(err).Str("db", s.path).Msg("failed to open database")
		return fmt.Errorf("open database %s: %w", s.path, err)
	}

	for _, schema := range schemas {
		if _, err := dbConn.ExecContext(ctx, schema); err != nil {
			_ = dbConn.Close()
			s.logger.Error().Err(err).Str("db", s.path).Msg("failed to apply schema")
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	s.db = dbConn
	s.logger.Info().Str("db", s.path).Msg("set up the tables")
	return nil
}

// Close releases the database connection. Calling Close on a store that
// never connected is a no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.logger.Info().Str("db", s.path).Msg("closed database connection")
	return err
}

// conn returns the live handle, or ErrNotConnected before Connect.
func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, ErrNotConnected
	}
	return s.db, nil
}

// timestamp returns the current UTC time as an RFC3339Nano string. All row
// timestamps are written by the application rather than CURRENT_TIMESTAMP so
// updated_at advances strictly even within the same second.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
