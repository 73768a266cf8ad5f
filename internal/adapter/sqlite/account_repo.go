package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"weightlog/internal/domain"
)

// Create inserts a new account. A username collision is reported as
// domain.ErrUsernameTaken via the table's unique constraint.
func (d *DB) Create(ctx context.Context, username, passwordHash string, goalWeight float64) (*domain.Account, error) {
	var a domain.Account
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO accounts (username, password_hash, goal_weight, created_at) VALUES (?, ?, ?, ?) RETURNING id, username, password_hash, goal_weight;",
		username, passwordHash, goalWeight, time.Now().UTC(),
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.GoalWeight)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}
	return &a, nil
}

// GetByUsername retrieves an account by its exact username.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return d.getAccount(ctx,
		"SELECT id, username, password_hash, goal_weight FROM accounts WHERE username = ?;", username)
}

// GetByCredentials retrieves the account matching both username and password
// hash, or nil when no account matches.
func (d *DB) GetByCredentials(ctx context.Context, username, passwordHash string) (*domain.Account, error) {
	return d.getAccount(ctx,
		"SELECT id, username, password_hash, goal_weight FROM accounts WHERE username = ? AND password_hash = ?;",
		username, passwordHash)
}

// GetByID retrieves an account by id.
func (d *DB) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return d.getAccount(ctx,
		"SELECT id, username, password_hash, goal_weight FROM accounts WHERE id = ?;", id)
}

func (d *DB) getAccount(ctx context.Context, query string, args ...any) (*domain.Account, error) {
	var a domain.Account
	err := d.sql.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.GoalWeight)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
