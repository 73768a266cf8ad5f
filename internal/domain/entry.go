package domain

import "context"

// WeightEntry is one dated weight measurement owned by exactly one account.
// Date is always the canonical sortable YYYY-MM-DD form.
type WeightEntry struct {
	ID        int64   `json:"id"`
	AccountID int64   `json:"accountId"`
	Date      string  `json:"date"`
	Weight    float64 `json:"weight"`
}

// EntryRepository is the port for weight-entry persistence. Listing is
// ascending by date with insertion order (id) breaking ties. Update and
// Delete address entries by id only; Delete is a no-op for unknown ids.
type EntryRepository interface {
	Insert(ctx context.Context, accountID int64, date string, weight float64) (int64, error)
	ListByAccount(ctx context.Context, accountID int64) ([]WeightEntry, error)
	Update(ctx context.Context, entryID int64, date string, weight float64) (int64, error)
	Delete(ctx context.Context, entryID int64) error
}
