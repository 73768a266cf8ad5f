// Package memory implements an in-memory repository for development and
// testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"weightlog/internal/domain"
)

// DB implements in-memory storage for all domain repositories.
type DB struct {
	mu       sync.Mutex
	accounts []*domain.Account
	entries  []domain.WeightEntry
	sessions map[string]*domain.Session

	accountIDCounter int64
	entryIDCounter   int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.AccountRepository = (*DB)(nil)
var _ domain.EntryRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- AccountRepository ---

// Create creates a new account.
func (db *DB) Create(ctx context.Context, username, passwordHash string, goalWeight float64) (*domain.Account, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, a := range db.accounts {
		if a.Username == username {
			return nil, domain.ErrUsernameTaken
		}
	}

	db.accountIDCounter++
	a := &domain.Account{
		ID:           db.accountIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		GoalWeight:   goalWeight,
	}
	db.accounts = append(db.accounts, a)

	snapshot := *a
	return &snapshot, nil
}

// GetByUsername retrieves an account by its exact username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, a := range db.accounts {
		if a.Username == username {
			snapshot := *a
			return &snapshot, nil
		}
	}
	return nil, nil
}

// GetByCredentials retrieves the account matching username and password hash.
func (db *DB) GetByCredentials(ctx context.Context, username, passwordHash string) (*domain.Account, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, a := range db.accounts {
		if a.Username == username && a.PasswordHash == passwordHash {
			snapshot := *a
			return &snapshot, nil
		}
	}
	return nil, nil
}

// GetByID retrieves an account by id.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, a := range db.accounts {
		if a.ID == id {
			snapshot := *a
			return &snapshot, nil
		}
	}
	return nil, nil
}

// --- EntryRepository ---

// Insert stores a new weight entry.
func (db *DB) Insert(ctx context.Context, accountID int64, date string, weight float64) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.entryIDCounter++
	db.entries = append(db.entries, domain.WeightEntry{
		ID:        db.entryIDCounter,
		AccountID: accountID,
		Date:      date,
		Weight:    weight,
	})
	return db.entryIDCounter, nil
}

// ListByAccount returns the account's entries ascending by date, insertion
// order breaking ties.
func (db *DB) ListByAccount(ctx context.Context, accountID int64) ([]domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.WeightEntry, 0)
	for _, e := range db.entries {
		if e.AccountID == accountID {
			result = append(result, e)
		}
	}
	// Entries were appended in insertion order; a stable sort preserves that
	// order for equal dates.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result, nil
}

// Update overwrites date and weight of the entry with the given id.
func (db *DB) Update(ctx context.Context, entryID int64, date string, weight float64) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.entries {
		if db.entries[i].ID == entryID {
			db.entries[i].Date = date
			db.entries[i].Weight = weight
			return 1, nil
		}
	}
	return 0, nil
}

// Delete removes the entry with the given id; unknown ids are a no-op.
func (db *DB) Delete(ctx context.Context, entryID int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, e := range db.entries {
		if e.ID == entryID {
			db.entries = append(db.entries[:i], db.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, accountID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		AccountID: accountID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		snapshot := *s
		return &snapshot, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
