// Package postgres implements the domain repositories using PostgreSQL, for
// deployments that outgrow the embedded store.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// schemaVersion mirrors the sqlite adapter: a mismatch with the stored
// version drops every table and recreates them empty.
const schemaVersion = 2

// DB wraps a *sql.DB and implements the domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	if _, err := d.sql.ExecContext(ctx,
		"CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);"); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	var stored int
	err := d.sql.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1;").Scan(&stored)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("migrate: read version: %w", err)
	}

	if stored != 0 && stored != schemaVersion {
		// Destructive upgrade policy, same as the embedded store.
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
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			goal_weight DOUBLE PRECISION DEFAULT 154.3,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS weight_entries (
			id BIGSERIAL PRIMARY KEY,
			account_id BIGINT NOT NULL REFERENCES accounts(id),
			date TEXT NOT NULL,
			weight DOUBLE PRECISION NOT NULL CHECK(weight > 0)
		);`,
		"CREATE INDEX IF NOT EXISTS idx_weight_entries_account_date ON weight_entries(account_id, date);",
		`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			account_id BIGINT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);",
	}
	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if _, err := d.sql.ExecContext(ctx, "DELETE FROM schema_version;"); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if _, err := d.sql.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES ($1);", schemaVersion); err != nil {
		return fmt.Errorf("migrate: write version: %w", err)
	}
	return nil
}
