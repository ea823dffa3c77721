package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ReviewItem is one scheduled practice unit for one learner.
type ReviewItem struct {
	LearnerID    string
	ItemID       string
	Exercise     string
	Ease         float64
	IntervalDays int
	NextDueAt    time.Time
	CorrectCount int
	WrongCount   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type reviewRow struct {
	LearnerID    string  `db:"learner_id"`
	ItemID       string  `db:"item_id"`
	Exercise     string  `db:"exercise"`
	Ease         float64 `db:"ease"`
	IntervalDays int     `db:"interval_days"`
	NextDueAt    int64   `db:"next_due_at"`
	CorrectCount int     `db:"correct_count"`
	WrongCount   int     `db:"wrong_count"`
	CreatedAt    int64   `db:"created_at"`
	UpdatedAt    int64   `db:"updated_at"`
}

func (r reviewRow) item() ReviewItem {
	return ReviewItem{
		LearnerID:    r.LearnerID,
		ItemID:       r.ItemID,
		Exercise:     r.Exercise,
		Ease:         r.Ease,
		IntervalDays: r.IntervalDays,
		NextDueAt:    time.Unix(r.NextDueAt, 0).UTC(),
		CorrectCount: r.CorrectCount,
		WrongCount:   r.WrongCount,
		CreatedAt:    time.Unix(r.CreatedAt, 0).UTC(),
		UpdatedAt:    time.Unix(r.UpdatedAt, 0).UTC(),
	}
}

// ReviewRepo persists review items keyed by (learner_id, item_id).
type ReviewRepo struct {
	db *sqlx.DB
}

// Seed inserts the item if absent and returns the stored row. A repeated
// seed for the same (learner, item) leaves the existing row untouched.
func (r *ReviewRepo) Seed(ctx context.Context, item ReviewItem) (ReviewItem, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews
			(learner_id, item_id, exercise, ease, interval_days, next_due_at,
			 correct_count, wrong_count, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, 0, 0, ?, ?)
		 ON CONFLICT (learner_id, item_id) DO NOTHING`,
		item.LearnerID, item.ItemID, item.Exercise, item.Ease, item.IntervalDays,
		item.NextDueAt.Unix(), item.CreatedAt.Unix(), item.UpdatedAt.Unix(),
	)
	if err != nil {
		return ReviewItem{}, fmt.Errorf("seed review item: %w", err)
	}
	return r.Get(ctx, item.LearnerID, item.ItemID)
}

// Get loads one review item.
func (r *ReviewRepo) Get(ctx context.Context, learnerID, itemID string) (ReviewItem, error) {
	return getReview(ctx, r.db, learnerID, itemID)
}

// GetTx loads one review item inside a transaction.
func (r *ReviewRepo) GetTx(ctx context.Context, tx *sqlx.Tx, learnerID, itemID string) (ReviewItem, error) {
	return getReview(ctx, tx, learnerID, itemID)
}

func getReview(ctx context.Context, q sqlx.QueryerContext, learnerID, itemID string) (ReviewItem, error) {
	var row reviewRow
	err := sqlx.GetContext(ctx, q, &row,
		`SELECT learner_id, item_id, exercise, ease, interval_days, next_due_at,
			correct_count, wrong_count, created_at, updated_at
		 FROM reviews WHERE learner_id = ? AND item_id = ?`,
		learnerID, itemID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ReviewItem{}, ErrNotFound
	}
	if err != nil {
		return ReviewItem{}, fmt.Errorf("get review item: %w", err)
	}
	return row.item(), nil
}

// Due returns items with next_due_at <= now, oldest-overdue first.
func (r *ReviewRepo) Due(ctx context.Context, learnerID string, now time.Time, limit int) ([]ReviewItem, error) {
	var rows []reviewRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT learner_id, item_id, exercise, ease, interval_days, next_due_at,
			correct_count, wrong_count, created_at, updated_at
		 FROM reviews
		 WHERE learner_id = ? AND next_due_at <= ?
		 ORDER BY next_due_at ASC
		 LIMIT ?`,
		learnerID, now.Unix(), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query due reviews: %w", err)
	}

	items := make([]ReviewItem, len(rows))
	for i, row := range rows {
		items[i] = row.item()
	}
	return items, nil
}

// UpdateScheduleTx persists a new schedule for an item and bumps the matching
// answer counter. Must run inside the same transaction as the read that
// produced the new schedule.
func (r *ReviewRepo) UpdateScheduleTx(ctx context.Context, tx *sqlx.Tx, learnerID, itemID string, ease float64, intervalDays int, nextDueAt time.Time, wasCorrect bool, now time.Time) error {
	counter := "wrong_count"
	if wasCorrect {
		counter = "correct_count"
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE reviews
		 SET ease = ?, interval_days = ?, next_due_at = ?, updated_at = ?,
		     `+counter+` = `+counter+` + 1
		 WHERE learner_id = ? AND item_id = ?`,
		ease, intervalDays, nextDueAt.Unix(), now.Unix(), learnerID, itemID,
	)
	if err != nil {
		return fmt.Errorf("update review schedule: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update review schedule: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
