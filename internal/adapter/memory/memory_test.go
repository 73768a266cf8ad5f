package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"weightlog/internal/domain"
)

func TestAccounts(t *testing.T) {
	ctx := context.Background()
	db := New()

	alice, err := db.Create(ctx, "alice", "hash-a", domain.DefaultGoalWeight)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if alice.ID == 0 {
		t.Error("expected a non-zero id")
	}

	if _, err := db.Create(ctx, "alice", "hash-b", 140); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}

	got, err := db.GetByUsername(ctx, "alice")
	if err != nil || got == nil || got.ID != alice.ID {
		t.Fatalf("GetByUsername = %+v, %v", got, err)
	}
	if got, _ := db.GetByUsername(ctx, "bob"); got != nil {
		t.Errorf("expected nil for unknown username, got %+v", got)
	}

	if got, _ := db.GetByCredentials(ctx, "alice", "hash-a"); got == nil {
		t.Error("expected credential match")
	}
	if got, _ := db.GetByCredentials(ctx, "alice", "wrong"); got != nil {
		t.Errorf("expected nil for wrong hash, got %+v", got)
	}

	if got, _ := db.GetByID(ctx, alice.ID); got == nil || got.Username != "alice" {
		t.Errorf("GetByID = %+v", got)
	}
}

func TestEntries_Ordering(t *testing.T) {
	ctx := context.Background()
	db := New()
	acct, _ := db.Create(ctx, "alice", "h", domain.DefaultGoalWeight)

	// Inserted out of date order on purpose.
	if _, err := db.Insert(ctx, acct.ID, "2024-03-01", 150); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := db.Insert(ctx, acct.ID, "2024-01-15", 155); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := db.Insert(ctx, acct.ID, "2024-02-20", 152); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := db.ListByAccount(ctx, acct.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	wantDates := []string{"2024-01-15", "2024-02-20", "2024-03-01"}
	if len(got) != len(wantDates) {
		t.Fatalf("expected %d entries, got %d", len(wantDates), len(got))
	}
	for i, d := range wantDates {
		if got[i].Date != d {
			t.Errorf("entry %d: expected date %s, got %s", i, d, got[i].Date)
		}
	}
}

func TestEntries_DuplicateDatesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	db := New()
	acct, _ := db.Create(ctx, "alice", "h", domain.DefaultGoalWeight)

	first, _ := db.Insert(ctx, acct.ID, "2024-01-15", 155)
	db.Insert(ctx, acct.ID, "2024-01-10", 156)
	second, _ := db.Insert(ctx, acct.ID, "2024-01-15", 154)

	got, err := db.ListByAccount(ctx, acct.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[1].ID != first || got[2].ID != second {
		t.Errorf("expected same-date entries in insertion order, got ids %d, %d", got[1].ID, got[2].ID)
	}
}

func TestEntries_AccountIsolation(t *testing.T) {
	ctx := context.Background()
	db := New()
	alice, _ := db.Create(ctx, "alice", "h", domain.DefaultGoalWeight)
	bob, _ := db.Create(ctx, "bob", "h", domain.DefaultGoalWeight)

	db.Insert(ctx, alice.ID, "2024-01-15", 155)
	db.Insert(ctx, bob.ID, "2024-01-15", 200)
	db.Insert(ctx, bob.ID, "2024-01-16", 199)

	aliceEntries, _ := db.ListByAccount(ctx, alice.ID)
	bobEntries, _ := db.ListByAccount(ctx, bob.ID)
	if len(aliceEntries) != 1 || aliceEntries[0].Weight != 155 {
		t.Errorf("alice sees %+v", aliceEntries)
	}
	if len(bobEntries) != 2 {
		t.Errorf("bob sees %d entries, want 2", len(bobEntries))
	}

	empty, _ := db.ListByAccount(ctx, 999)
	if len(empty) != 0 {
		t.Errorf("unknown account should list empty, got %+v", empty)
	}
}

func TestEntries_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	db := New()
	acct, _ := db.Create(ctx, "alice", "h", domain.DefaultGoalWeight)

	id1, _ := db.Insert(ctx, acct.ID, "2024-01-15", 155)
	id2, _ := db.Insert(ctx, acct.ID, "2024-01-16", 154)

	rows, err := db.Update(ctx, id1, "2024-01-14", 156)
	if err != nil || rows != 1 {
		t.Fatalf("update: rows=%d err=%v", rows, err)
	}
	rows, err = db.Update(ctx, 999, "2024-01-01", 150)
	if err != nil || rows != 0 {
		t.Errorf("update of unknown id: rows=%d err=%v", rows, err)
	}

	got, _ := db.ListByAccount(ctx, acct.ID)
	if got[0].ID != id1 || got[0].Date != "2024-01-14" || got[0].Weight != 156 {
		t.Errorf("updated entry = %+v", got[0])
	}
	if got[1].ID != id2 || got[1].Weight != 154 {
		t.Errorf("untouched entry changed: %+v", got[1])
	}

	if err := db.Delete(ctx, id1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := db.Delete(ctx, id1); err != nil {
		t.Errorf("repeat delete should be a no-op, got %v", err)
	}
	got, _ = db.ListByAccount(ctx, acct.ID)
	if len(got) != 1 || got[0].ID != id2 {
		t.Errorf("after delete: %+v", got)
	}
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := db.NewSessionRepo()

	if err := repo.Create(ctx, 1, "tok", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("create: %v", err)
	}
	s, err := repo.GetByToken(ctx, "tok")
	if err != nil || s == nil || s.AccountID != 1 {
		t.Fatalf("GetByToken = %+v, %v", s, err)
	}
	if s, _ := repo.GetByToken(ctx, "missing"); s != nil {
		t.Errorf("expected nil for unknown token, got %+v", s)
	}

	if err := repo.Delete(ctx, "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s, _ := repo.GetByToken(ctx, "tok"); s != nil {
		t.Errorf("expected deleted session gone, got %+v", s)
	}

	repo.Create(ctx, 1, "stale", time.Now().Add(-time.Minute))
	repo.Create(ctx, 1, "fresh", time.Now().Add(time.Hour))
	if err := repo.DeleteExpired(ctx); err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if s, _ := repo.GetByToken(ctx, "stale"); s != nil {
		t.Error("expected expired session purged")
	}
	if s, _ := repo.GetByToken(ctx, "fresh"); s == nil {
		t.Error("expected live session kept")
	}
}
