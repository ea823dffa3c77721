package srs

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/lingocoach/internal/clock"
	"github.com/abhisek/lingocoach/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store, *clock.Fixed) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	clk := &clock.Fixed{T: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return NewService(st, clk), st, clk
}

func TestSeedIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	item, err := svc.Seed(ctx, "alice", "Fill the gap: She ___ coffee.", "")
	require.NoError(t, err)
	require.Equal(t, DefaultEase, item.Ease)
	require.Equal(t, 0, item.IntervalDays)

	_, err = svc.RecordResult(ctx, "alice", item.ItemID, true)
	require.NoError(t, err)

	again, err := svc.Seed(ctx, "alice", "Fill the gap: She ___ coffee.", "")
	require.NoError(t, err)
	require.Equal(t, item.ItemID, again.ItemID)
	require.InDelta(t, 2.6, again.Ease, 1e-9, "re-seeding must not reset progress")
	require.Equal(t, 1, again.IntervalDays)
}

func TestRecordResult_WrongThenCorrect(t *testing.T) {
	svc, st, clk := newTestService(t)
	ctx := context.Background()
	start := clk.T

	item, err := svc.Seed(ctx, "alice", "Choose: I ___ to school.", "")
	require.NoError(t, err)

	out, err := svc.RecordResult(ctx, "alice", item.ItemID, false)
	require.NoError(t, err)
	require.InDelta(t, 2.3, out.Ease, 1e-9)
	require.Equal(t, 1, out.IntervalDays)
	require.Equal(t, start.AddDate(0, 0, 1), out.NextDueAt)

	clk.Advance(25 * time.Hour)
	out, err = svc.RecordResult(ctx, "alice", item.ItemID, true)
	require.NoError(t, err)
	require.InDelta(t, 2.4, out.Ease, 1e-9)
	require.Equal(t, 2, out.IntervalDays)
	require.Equal(t, clk.T.AddDate(0, 0, 2), out.NextDueAt)

	stored, err := st.Reviews().Get(ctx, "alice", item.ItemID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.CorrectCount)
	require.Equal(t, 1, stored.WrongCount)
}

func TestRecordResult_AppendsEvents(t *testing.T) {
	svc, st, clk := newTestService(t)
	ctx := context.Background()

	item, err := svc.Seed(ctx, "alice", "Translate: good morning", "")
	require.NoError(t, err)

	_, err = svc.RecordResult(ctx, "alice", item.ItemID, true)
	require.NoError(t, err)
	_, err = svc.RecordResult(ctx, "alice", item.ItemID, false)
	require.NoError(t, err)

	counts, err := st.Events().CountByNameSince(ctx, "alice", clk.T.Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, 1, counts[store.EventReviewCorrect])
	require.Equal(t, 1, counts[store.EventReviewWrong])
}

func TestRecordResult_UnknownItem(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.RecordResult(context.Background(), "alice", "ex_missing", true)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestDue_OrderAndWindow(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := context.Background()

	first, err := svc.Seed(ctx, "alice", "exercise one", "")
	require.NoError(t, err)

	// Push the first item a day out, then seed a second due immediately.
	_, err = svc.RecordResult(ctx, "alice", first.ItemID, false)
	require.NoError(t, err)

	clk.Advance(time.Minute)
	second, err := svc.Seed(ctx, "alice", "exercise two", "")
	require.NoError(t, err)

	due, err := svc.Due(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.Equal(t, second.ItemID, due[0].ItemID)

	clk.Advance(25 * time.Hour)
	due, err = svc.Due(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, due, 2)
	require.Equal(t, second.ItemID, due[0].ItemID, "oldest overdue first")
	require.Equal(t, first.ItemID, due[1].ItemID)

	due, err = svc.Due(ctx, "alice", 1)
	require.NoError(t, err)
	require.Len(t, due, 1)
}

func TestDue_IsolatedPerLearner(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Seed(ctx, "alice", "alice's exercise", "")
	require.NoError(t, err)

	due, err := svc.Due(ctx, "bob", 10)
	require.NoError(t, err)
	require.Empty(t, due)
}
