package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"weightlog/internal/domain"
)

const sessionTTL = 24 * time.Hour

// SessionService manages login sessions for the presentation layer.
type SessionService struct {
	credentials *CredentialService
	accounts    domain.AccountRepository
	sessions    domain.SessionRepository
}

// NewSessionService creates a new session service.
func NewSessionService(credentials *CredentialService, accounts domain.AccountRepository, sessions domain.SessionRepository) *SessionService {
	return &SessionService{
		credentials: credentials,
		accounts:    accounts,
		sessions:    sessions,
	}
}

// Login authenticates an account and creates a session.
func (s *SessionService) Login(ctx context.Context, username, password string) (string, *domain.Account, error) {
	id, _, err := s.credentials.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	acct, err := s.accounts.GetByID(ctx, id)
	if err != nil || acct == nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", nil, err
	}

	expiresAt := time.Now().Add(sessionTTL)
	if err := s.sessions.Create(ctx, acct.ID, token, expiresAt); err != nil {
		return "", nil, err
	}
	return token, acct, nil
}

// LoginExternal creates a session for an identity already verified elsewhere
// (e.g. via SSO), provisioning the account on first sign-in. Externally
// provisioned accounts carry an empty password hash, which can never match a
// SHA-256 digest, so password login stays closed for them.
func (s *SessionService) LoginExternal(ctx context.Context, username string) (string, *domain.Account, error) {
	acct, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if acct == nil {
		acct, err = s.accounts.Create(ctx, username, "", domain.DefaultGoalWeight)
		if err != nil {
			if !errors.Is(err, domain.ErrUsernameTaken) {
				return "", nil, err
			}
			// Lost a provisioning race; the account exists now.
			acct, err = s.accounts.GetByUsername(ctx, username)
			if err != nil || acct == nil {
				return "", nil, err
			}
		}
	}

	token, err := generateToken()
	if err != nil {
		return "", nil, err
	}

	expiresAt := time.Now().Add(sessionTTL)
	if err := s.sessions.Create(ctx, acct.ID, token, expiresAt); err != nil {
		return "", nil, err
	}
	return token, acct, nil
}

// Logout invalidates a session.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession checks if a session token is valid and returns its account.
func (s *SessionService) ValidateSession(ctx context.Context, token string) (*domain.Account, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	acct, err := s.accounts.GetByID(ctx, session.AccountID)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrSessionNotFound
	}
	return acct, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
