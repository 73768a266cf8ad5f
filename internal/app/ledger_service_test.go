package app

import (
	"context"
	"errors"
	"testing"

	"weightlog/internal/domain"
)

type mockEntryRepo struct {
	insertFn func(ctx context.Context, accountID int64, date string, weight float64) (int64, error)
	listFn   func(ctx context.Context, accountID int64) ([]domain.WeightEntry, error)
	updateFn func(ctx context.Context, entryID int64, date string, weight float64) (int64, error)
	deleteFn func(ctx context.Context, entryID int64) error
}

func (m *mockEntryRepo) Insert(ctx context.Context, accountID int64, date string, weight float64) (int64, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, accountID, date, weight)
	}
	return 1, nil
}

func (m *mockEntryRepo) ListByAccount(ctx context.Context, accountID int64) ([]domain.WeightEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, accountID)
	}
	return nil, nil
}

func (m *mockEntryRepo) Update(ctx context.Context, entryID int64, date string, weight float64) (int64, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, entryID, date, weight)
	}
	return 1, nil
}

func (m *mockEntryRepo) Delete(ctx context.Context, entryID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, entryID)
	}
	return nil
}

func TestAddEntry_Canonicalizes(t *testing.T) {
	var gotDate string
	repo := &mockEntryRepo{
		insertFn: func(_ context.Context, accountID int64, date string, weight float64) (int64, error) {
			if accountID != 5 || weight != 150 {
				t.Errorf("unexpected insert args: account %d weight %f", accountID, weight)
			}
			gotDate = date
			return 42, nil
		},
	}
	svc := NewLedgerService(repo)

	id, err := svc.AddEntry(context.Background(), 5, "3/1/2024", 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Errorf("expected id 42, got %d", id)
	}
	if gotDate != "2024-03-01" {
		t.Errorf("expected canonical date 2024-03-01, got %q", gotDate)
	}
}

func TestAddEntry_Validation(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		weight float64
	}{
		{"zero weight", "1/1/2024", 0},
		{"negative weight", "1/1/2024", -10},
		{"blank date", "", 150},
		{"unparseable date", "not-a-date", 150},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockEntryRepo{
				insertFn: func(context.Context, int64, string, float64) (int64, error) {
					t.Fatal("insert should not be called for invalid input")
					return 0, nil
				},
			}
			svc := NewLedgerService(repo)
			_, err := svc.AddEntry(context.Background(), 1, tc.date, tc.weight)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestUpdateEntry_Canonicalizes(t *testing.T) {
	var gotDate string
	repo := &mockEntryRepo{
		updateFn: func(_ context.Context, entryID int64, date string, weight float64) (int64, error) {
			if entryID != 9 || weight != 148.5 {
				t.Errorf("unexpected update args: entry %d weight %f", entryID, weight)
			}
			gotDate = date
			return 1, nil
		},
	}
	svc := NewLedgerService(repo)

	rows, err := svc.UpdateEntry(context.Background(), 9, "2/20/2024", 148.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected 1 row affected, got %d", rows)
	}
	if gotDate != "2024-02-20" {
		t.Errorf("expected canonical date 2024-02-20, got %q", gotDate)
	}
}

func TestUpdateEntry_Validation(t *testing.T) {
	repo := &mockEntryRepo{
		updateFn: func(context.Context, int64, string, float64) (int64, error) {
			t.Fatal("update should not be called for invalid input")
			return 0, nil
		},
	}
	svc := NewLedgerService(repo)

	if _, err := svc.UpdateEntry(context.Background(), 1, "1/1/2024", 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for zero weight, got %v", err)
	}
	if _, err := svc.UpdateEntry(context.Background(), 1, "garbage", 150); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for bad date, got %v", err)
	}
}

func TestUpdateEntry_UnknownID(t *testing.T) {
	repo := &mockEntryRepo{
		updateFn: func(context.Context, int64, string, float64) (int64, error) {
			return 0, nil
		},
	}
	svc := NewLedgerService(repo)

	rows, err := svc.UpdateEntry(context.Background(), 999, "1/1/2024", 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != 0 {
		t.Errorf("expected 0 rows affected, got %d", rows)
	}
}

func TestListEntries(t *testing.T) {
	want := []domain.WeightEntry{
		{ID: 1, AccountID: 4, Date: "2024-01-15", Weight: 150},
		{ID: 2, AccountID: 4, Date: "2024-02-20", Weight: 149},
	}
	repo := &mockEntryRepo{
		listFn: func(_ context.Context, accountID int64) ([]domain.WeightEntry, error) {
			if accountID != 4 {
				t.Errorf("expected account 4, got %d", accountID)
			}
			return want, nil
		},
	}
	svc := NewLedgerService(repo)

	got, err := svc.ListEntries(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("unexpected entries: %+v", got)
	}
}

func TestDeleteEntry(t *testing.T) {
	var gotID int64
	repo := &mockEntryRepo{
		deleteFn: func(_ context.Context, entryID int64) error {
			gotID = entryID
			return nil
		},
	}
	svc := NewLedgerService(repo)

	if err := svc.DeleteEntry(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != 7 {
		t.Errorf("expected delete of entry 7, got %d", gotID)
	}
}
