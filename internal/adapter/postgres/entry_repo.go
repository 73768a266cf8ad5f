package postgres

import (
	"context"

	"weightlog/internal/domain"
)

// Insert stores a new weight entry and returns its id.
func (d *DB) Insert(ctx context.Context, accountID int64, date string, weight float64) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO weight_entries (account_id, date, weight) VALUES ($1, $2, $3) RETURNING id",
		accountID, date, weight,
	).Scan(&id)
	return id, err
}

// ListByAccount returns all entries owned by accountID, ascending by date
// with id breaking ties.
func (d *DB) ListByAccount(ctx context.Context, accountID int64) ([]domain.WeightEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, account_id, date, weight FROM weight_entries WHERE account_id = $1 ORDER BY date ASC, id ASC",
		accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.WeightEntry, 0)
	for rows.Next() {
		var e domain.WeightEntry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Date, &e.Weight); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update overwrites the date and weight of the entry with the given id and
// returns the number of rows affected.
func (d *DB) Update(ctx context.Context, entryID int64, date string, weight float64) (int64, error) {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE weight_entries SET date = $1, weight = $2 WHERE id = $3",
		date, weight, entryID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the entry with the given id; unknown ids are a no-op.
func (d *DB) Delete(ctx context.Context, entryID int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM weight_entries WHERE id = $1", entryID)
	return err
}
