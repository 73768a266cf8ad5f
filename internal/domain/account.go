// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
)

// DefaultGoalWeight is assigned to every account at registration, in pounds.
const DefaultGoalWeight = 154.3

// ErrUsernameTaken is returned by AccountRepository.Create when the username
// is already registered. Adapters map store-level unique violations to it.
var ErrUsernameTaken = errors.New("username already taken")

// Account is a registered identity with a unique username, hashed credential,
// and personal goal weight.
type Account struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"`
	GoalWeight   float64 `json:"goalWeight"`
}

// AccountRepository is the port for account persistence.
type AccountRepository interface {
	Create(ctx context.Context, username, passwordHash string, goalWeight float64) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByCredentials(ctx context.Context, username, passwordHash string) (*Account, error)
	GetByID(ctx context.Context, id int64) (*Account, error)
}
