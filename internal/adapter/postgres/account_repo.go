package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"weightlog/internal/domain"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// Create inserts a new account. The check-then-insert in the credential
// service is not atomic over a network, so unique violations from the
// constraint are mapped to domain.ErrUsernameTaken here.
func (d *DB) Create(ctx context.Context, username, passwordHash string, goalWeight float64) (*domain.Account, error) {
	var a domain.Account
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO accounts (username, password_hash, goal_weight, created_at) VALUES ($1, $2, $3, $4) RETURNING id, username, password_hash, goal_weight",
		username, passwordHash, goalWeight, time.Now(),
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.GoalWeight)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}
	return &a, nil
}

// GetByUsername retrieves an account by its exact username.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return d.getAccount(ctx,
		"SELECT id, username, password_hash, goal_weight FROM accounts WHERE username = $1", username)
}

// GetByCredentials retrieves the account matching both username and password
// hash, or nil when no account matches.
func (d *DB) GetByCredentials(ctx context.Context, username, passwordHash string) (*domain.Account, error) {
	return d.getAccount(ctx,
		"SELECT id, username, password_hash, goal_weight FROM accounts WHERE username = $1 AND password_hash = $2",
		username, passwordHash)
}

// GetByID retrieves an account by id.
func (d *DB) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return d.getAccount(ctx,
		"SELECT id, username, password_hash, goal_weight FROM accounts WHERE id = $1", id)
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
