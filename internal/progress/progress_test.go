package progress

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/lingocoach/internal/clock"
	"github.com/abhisek/lingocoach/internal/store"
)

func newTestAggregator(t *testing.T) (*Aggregator, *store.Store, *clock.Fixed) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	clk := &clock.Fixed{T: time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)}
	return NewAggregator(st, clk), st, clk
}

func appendEvent(t *testing.T, st *store.Store, name string, ts time.Time) {
	t.Helper()
	require.NoError(t, st.Events().Append(context.Background(), store.EventRecord{
		LearnerID: "alice",
		Name:      name,
		Timestamp: ts,
	}))
}

func TestSummary_Empty(t *testing.T) {
	agg, _, _ := newTestAggregator(t)

	summary, err := agg.Summary(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, Summary{}, summary)
}

func TestSummary_Counts(t *testing.T) {
	agg, st, clk := newTestAggregator(t)
	ctx := context.Background()
	now := clk.T

	for _, id := range []string{"l1", "l2", "l3"} {
		require.NoError(t, st.Lessons().Save(ctx, store.Lesson{
			ID: id, LearnerID: "alice", Content: "c", Exercise: "e", CreatedAt: now,
		}))
	}

	appendEvent(t, st, store.EventReviewCorrect, now.Add(-time.Hour))
	appendEvent(t, st, store.EventReviewCorrect, now.AddDate(0, 0, -6))
	appendEvent(t, st, store.EventReviewWrong, now.Add(-2*time.Hour))
	// Just outside the 7-day window.
	appendEvent(t, st, store.EventReviewCorrect, now.AddDate(0, 0, -8))

	summary, err := agg.Summary(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 3, summary.LessonsDone)
	require.Equal(t, 2, summary.ReviewsCorrect7d)
	require.Equal(t, 1, summary.ReviewsWrong7d)
}

func TestSummary_StreakStopsAtGap(t *testing.T) {
	agg, st, clk := newTestAggregator(t)
	now := clk.T

	// Active today and yesterday, then a gap, then activity three days back.
	appendEvent(t, st, store.EventLessonStarted, now)
	appendEvent(t, st, store.EventReviewCorrect, now.AddDate(0, 0, -1))
	appendEvent(t, st, store.EventLessonStarted, now.AddDate(0, 0, -3))

	summary, err := agg.Summary(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, 2, summary.StreakDays)
}

func TestSummary_NoActivityTodayBreaksStreak(t *testing.T) {
	agg, st, clk := newTestAggregator(t)
	now := clk.T

	appendEvent(t, st, store.EventLessonStarted, now.AddDate(0, 0, -1))
	appendEvent(t, st, store.EventLessonStarted, now.AddDate(0, 0, -2))

	summary, err := agg.Summary(context.Background(), "alice")
	require.NoError(t, err)
	require.Zero(t, summary.StreakDays)
}

func TestSummary_AnyEventKindCountsForStreak(t *testing.T) {
	agg, st, clk := newTestAggregator(t)

	appendEvent(t, st, store.EventQAAsked, clk.T)

	summary, err := agg.Summary(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, 1, summary.StreakDays)
}
