package app

import (
	"context"
	"time"

	"weightlog/internal/domain"
)

// ProgressService builds per-day weight series against the account goal.
type ProgressService struct {
	entries  domain.EntryRepository
	accounts domain.AccountRepository
}

// NewProgressService creates a ProgressService backed by the given
// repositories.
func NewProgressService(entries domain.EntryRepository, accounts domain.AccountRepository) *ProgressService {
	return &ProgressService{entries: entries, accounts: accounts}
}

// DayPoint is a single data point returned by Daily.
type DayPoint struct {
	Date      string   `json:"date"`
	Weight    *float64 `json:"weight"`
	GoalDelta *float64 `json:"goalDelta"`
}

// Daily returns one point per calendar day for the trailing days window.
// Days with multiple entries use the most recently recorded one; days with
// no entry carry nil values.
func (s *ProgressService) Daily(ctx context.Context, accountID int64, days int) ([]DayPoint, error) {
	if days <= 0 {
		days = 30
	}
	if days > 366 {
		days = 366
	}

	goal := domain.DefaultGoalWeight
	acct, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acct != nil {
		goal = acct.GoalWeight
	}

	entries, err := s.entries.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// Entries arrive sorted by date then insertion order, so the last entry
	// seen for a date is the most recently recorded one.
	latest := make(map[string]float64, len(entries))
	for _, e := range entries {
		latest[e.Date] = e.Weight
	}

	today := time.Now().In(time.Local)
	points := make([]DayPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		p := DayPoint{Date: date}
		if w, ok := latest[date]; ok {
			delta := w - goal
			p.Weight = &w
			p.GoalDelta = &delta
		}
		points = append(points, p)
	}
	return points, nil
}
