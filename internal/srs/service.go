package srs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/abhisek/lingocoach/internal/clock"
	"github.com/abhisek/lingocoach/internal/store"
)

// ErrItemNotFound is returned by RecordResult when the item was never
// seeded. Callers seed first, then record.
var ErrItemNotFound = errors.New("review item not found")

// Outcome reports the schedule produced by one recorded answer.
type Outcome struct {
	ItemID       string
	Ease         float64
	IntervalDays int
	NextDueAt    time.Time
}

// Service owns the review-item lifecycle: idempotent seeding, due-item
// selection, and schedule updates after answers.
type Service struct {
	store  *store.Store
	events *store.EventRepo
	clock  clock.Clock
}

// NewService creates a review service.
func NewService(st *store.Store, clk clock.Clock) *Service {
	return &Service{store: st, events: st.Events(), clock: clk}
}

// Seed registers an exercise for review. The item id is derived from the
// exercise text when not supplied. Seeding an already-known item returns
// the existing row with its progress intact.
func (s *Service) Seed(ctx context.Context, learnerID, exercise, itemID string) (store.ReviewItem, error) {
	if itemID == "" {
		itemID = ItemID(exercise)
	}
	now := s.clock.Now()

	item, err := s.store.Reviews().Seed(ctx, store.ReviewItem{
		LearnerID:    learnerID,
		ItemID:       itemID,
		Exercise:     exercise,
		Ease:         DefaultEase,
		IntervalDays: 0,
		NextDueAt:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return store.ReviewItem{}, fmt.Errorf("seed %s: %w", itemID, err)
	}
	return item, nil
}

// Due returns up to limit items whose review time has passed, oldest-overdue
// first.
func (s *Service) Due(ctx context.Context, learnerID string, limit int) ([]store.ReviewItem, error) {
	return s.store.Reviews().Due(ctx, learnerID, s.clock.Now(), limit)
}

// RecordResult applies the scheduler to one answered item, persists the new
// schedule atomically, and appends the matching review event. Returns
// ErrItemNotFound when the item was never seeded.
func (s *Service) RecordResult(ctx context.Context, learnerID, itemID string, wasCorrect bool) (Outcome, error) {
	now := s.clock.Now()
	var out Outcome

	err := s.store.RunInTx(ctx, func(tx *sqlx.Tx) error {
		item, err := s.store.Reviews().GetTx(ctx, tx, learnerID, itemID)
		if err != nil {
			return err
		}

		ease, interval := Next(item.Ease, item.IntervalDays, wasCorrect)
		nextDue := now.AddDate(0, 0, interval)

		if err := s.store.Reviews().UpdateScheduleTx(ctx, tx, learnerID, itemID, ease, interval, nextDue, wasCorrect, now); err != nil {
			return err
		}

		out = Outcome{ItemID: itemID, Ease: ease, IntervalDays: interval, NextDueAt: nextDue}
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return Outcome{}, ErrItemNotFound
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("record result for %s: %w", itemID, err)
	}

	name := store.EventReviewWrong
	if wasCorrect {
		name = store.EventReviewCorrect
	}
	if err := s.events.Append(ctx, store.EventRecord{
		LearnerID: learnerID,
		Name:      name,
		Payload:   map[string]any{"item_id": itemID, "interval_days": out.IntervalDays},
		Timestamp: now,
	}); err != nil {
		return Outcome{}, fmt.Errorf("log review event: %w", err)
	}

	return out, nil
}
