// Package db implements the storage gateway over the embedded SQLite store.
// It is the only package that touches database/sql: repositories hand it SQL
// text and parameters and get back booleans and scanned rows. Driver errors
// never leave this package; they are logged and normalized to false, absent,
// or empty results.
package db

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// RowScanner is the subset of *sql.Row / *sql.Rows the repositories scan
// against. Columns are always listed explicitly in the query, so destinations
// map by name order rather than whatever the table happens to return.
type RowScanner interface {
	Scan(dest ...any) error
}

// Store executes statements against a SQLite database file. It keeps no
// connection state: every call opens its own handle and closes it before
// returning, so each statement is atomic on its own and nothing is shared
// between calls.
type Store struct {
	path string
	log  zerolog.Logger
}

// New returns a Store for the database file at path. The file is not touched
// until the first operation.
func New(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log.With().Str("component", "db").Logger()}
}

// Path returns the database file location the store was configured with.
func (s *Store) Path() string { return s.path }

func (s *Store) open() (*sql.DB, error) {
	// busy_timeout covers the rare case of a second process holding the
	// file lock. Foreign keys stay at the SQLite default (off): referential
	// gaps are accepted behavior, not enforced.
	return sql.Open("sqlite3", s.path+"?_busy_timeout=5000")
}

// Exec runs an insert, update, or delete. It reports success; failures are
// logged and swallowed.
func (s *Store) Exec(ctx context.Context, query string, args ...any) bool {
	conn, err := s.open()
	if err != nil {
		s.log.Error().Err(err).Msg("open database")
		return false
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("exec failed")
		return false
	}
	return true
}

// Insert runs an insert and returns the id the store assigned to the new row.
func (s *Store) Insert(ctx context.Context, query string, args ...any) (int64, bool) {
	conn, err := s.open()
	if err != nil {
		s.log.Error().Err(err).Msg("open database")
		return 0, false
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("insert failed")
		return 0, false
	}
	id, err := res.LastInsertId()
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("last insert id")
		return 0, false
	}
	return id, true
}

// QueryRow runs a query and scans the first row through scan. It returns
// false when there is no row or the query fails; the two are deliberately
// indistinguishable to callers.
func (s *Store) QueryRow(ctx context.Context, query string, args []any, scan func(RowScanner) error) bool {
	conn, err := s.open()
	if err != nil {
		s.log.Error().Err(err).Msg("open database")
		return false
	}
	defer conn.Close()

	if err := scan(conn.QueryRowContext(ctx, query, args...)); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Error().Err(err).Str("query", query).Msg("query row failed")
		}
		return false
	}
	return true
}

// Query runs a query and invokes scan once per row. A failed query behaves
// like an empty result: scan is never called and Query returns false.
func (s *Store) Query(ctx context.Context, query string, args []any, scan func(RowScanner) error) bool {
	conn, err := s.open()
	if err != nil {
		s.log.Error().Err(err).Msg("open database")
		return false
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("query failed")
		return false
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			s.log.Error().Err(err).Str("query", query).Msg("scan row failed")
			return false
		}
	}
	if err := rows.Err(); err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("iterate rows failed")
		return false
	}
	return true
}

// Ping verifies the database file can be opened and reached.
func (s *Store) Ping(ctx context.Context) bool {
	conn, err := s.open()
	if err != nil {
		s.log.Error().Err(err).Msg("open database")
		return false
	}
	defer conn.Close()

	if err := conn.PingContext(ctx); err != nil {
		s.log.Error().Err(err).Msg("ping failed")
		return false
	}
	return true
}
