package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"weightlog/internal/domain"
)

// CredentialService handles account registration and authentication. It owns
// the hashing policy: the plaintext password never reaches a repository.
type CredentialService struct {
	accounts domain.AccountRepository
}

// NewCredentialService creates a credential service backed by the given
// account repository.
func NewCredentialService(accounts domain.AccountRepository) *CredentialService {
	return &CredentialService{accounts: accounts}
}

// HashPassword returns the lowercase hex SHA-256 digest of the raw password
// bytes. Registration and authentication must use the same digest; changing
// it invalidates every stored credential. The digest is unsalted, which is a
// known limitation of the scheme.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new account with the default goal weight and returns its
// id. Blank usernames or passwords are rejected before any write, and an
// already-registered username (exact, case-sensitive match) fails with
// ErrDuplicateUsername.
func (s *CredentialService) Register(ctx context.Context, username, password string) (int64, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return 0, ErrInvalidInput
	}

	existing, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrDuplicateUsername
	}

	acct, err := s.accounts.Create(ctx, username, HashPassword(password), domain.DefaultGoalWeight)
	if err != nil {
		// The check above and the insert are two steps; the store's unique
		// constraint closes the window.
		if errors.Is(err, domain.ErrUsernameTaken) {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}
	return acct.ID, nil
}

// Authenticate verifies a username/password pair and returns the account id
// and goal weight. The lookup matches username and password hash in a single
// query, so an unknown user and a wrong password are indistinguishable.
func (s *CredentialService) Authenticate(ctx context.Context, username, password string) (int64, float64, error) {
	acct, err := s.accounts.GetByCredentials(ctx, username, HashPassword(password))
	if err != nil {
		return 0, 0, err
	}
	if acct == nil {
		return 0, 0, ErrInvalidCredentials
	}
	return acct.ID, acct.GoalWeight, nil
}

// Exists reports whether a username is already registered.
func (s *CredentialService) Exists(ctx context.Context, username string) (bool, error) {
	acct, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return acct != nil, nil
}
