// Package sqlite implements the domain repositories on an embedded SQLite
// database file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// schemaVersion is bumped on any change to the table layout. Opening a file
// whose stored version differs drops every table and recreates them empty:
// schema upgrades deliberately wipe history.
const schemaVersion = 2

// DB wraps a *sql.DB and implements the domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open opens (creating if needed) the database file at path and brings the
// schema up to the current version.
func Open(path string) (*DB, error) {
	return openAt(path, schemaVersion)
}

func openAt(path string, version int) (*DB, error) {
	s, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One writer at a time; the driver serializes access to the file.
	s.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	if _, err := s.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx, version); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database handle.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context, version int) error {
	var stored int
	if err := d.sql.QueryRowContext(ctx, "PRAGMA user_version;").Scan(&stored); err != nil {
		return fmt.Errorf("migrate: read user_version: %w", err)
	}

	if stored != 0 && stored != version {
		// Destructive upgrade policy: any version mismatch drops both core
		// tables (and sessions) and starts over empty.
		drops := []string{
			"DROP TABLE IF EXISTS weight_entries;",
			"DROP TABLE IF EXISTS sessions;",
			"DROP TABLE IF EXISTS accounts;",
		}
		for _, stmt := range drops {
			if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			goal_weight REAL DEFAULT 154.3,
			created_at TIMESTAMP NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS weight_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			account_id INTEGER NOT NULL REFERENCES accounts(id),
			date TEXT NOT NULL,
			weight REAL NOT NULL CHECK(weight > 0)
		);`,
		"CREATE INDEX IF NOT EXISTS idx_weight_entries_account_date ON weight_entries(account_id, date);",
		`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			account_id INTEGER NOT NULL REFERENCES accounts(id),
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if _, err := d.sql.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d;", version)); err != nil {
		return fmt.Errorf("migrate: set user_version: %w", err)
	}
	return nil
}
