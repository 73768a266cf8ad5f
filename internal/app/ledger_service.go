package app

import (
	"context"

	"weightlog/internal/domain"
)

// LedgerService encapsulates per-account weight-entry use cases. It owns
// date canonicalization: repositories only ever see the sortable form.
type LedgerService struct {
	entries domain.EntryRepository
}

// NewLedgerService creates a LedgerService backed by the given repository.
func NewLedgerService(entries domain.EntryRepository) *LedgerService {
	return &LedgerService{entries: entries}
}

// AddEntry validates and stores a new weight measurement, returning the new
// entry's id. A non-positive weight or an unparseable date rejects the whole
// operation; nothing is written.
func (s *LedgerService) AddEntry(ctx context.Context, accountID int64, rawDate string, weight float64) (int64, error) {
	if weight <= 0 {
		return 0, ErrInvalidInput
	}
	date, err := domain.CanonicalDate(rawDate)
	if err != nil {
		return 0, ErrInvalidInput
	}
	return s.entries.Insert(ctx, accountID, date, weight)
}

// ListEntries returns all entries owned by accountID, ascending by canonical
// date with insertion order breaking ties. An unknown account yields an
// empty slice, not an error.
func (s *LedgerService) ListEntries(ctx context.Context, accountID int64) ([]domain.WeightEntry, error) {
	return s.entries.ListByAccount(ctx, accountID)
}

// UpdateEntry overwrites the date and weight of the entry identified by
// entryID and returns the number of rows affected (0 or 1). The date is
// canonicalized and the weight validated exactly as in AddEntry. Ownership
// is not re-verified here; callers resolve entry ids from their own lists.
func (s *LedgerService) UpdateEntry(ctx context.Context, entryID int64, rawDate string, weight float64) (int64, error) {
	if weight <= 0 {
		return 0, ErrInvalidInput
	}
	date, err := domain.CanonicalDate(rawDate)
	if err != nil {
		return 0, ErrInvalidInput
	}
	return s.entries.Update(ctx, entryID, date, weight)
}

// DeleteEntry removes the entry with the given id. Deleting an id that does
// not exist is a no-op, not an error.
func (s *LedgerService) DeleteEntry(ctx context.Context, entryID int64) error {
	return s.entries.Delete(ctx, entryID)
}
