// Package progress derives temporal progress metrics from the event log.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lingocoach/internal/clock"
	"github.com/abhisek/lingocoach/internal/store"
)

// Summary is a learner's progress snapshot.
type Summary struct {
	LessonsDone      int
	ReviewsCorrect7d int
	ReviewsWrong7d   int
	StreakDays       int
}

// Aggregator computes progress summaries. Read-only over the event log and
// lesson store.
type Aggregator struct {
	lessons *store.LessonRepo
	events  *store.EventRepo
	clock   clock.Clock
}

// NewAggregator creates an Aggregator.
func NewAggregator(st *store.Store, clk clock.Clock) *Aggregator {
	return &Aggregator{lessons: st.Lessons(), events: st.Events(), clock: clk}
}

// Summary returns the all-time lesson count, trailing-7-day review counts,
// and the current streak for a learner.
func (a *Aggregator) Summary(ctx context.Context, learnerID string) (Summary, error) {
	lessonsDone, err := a.lessons.Count(ctx, learnerID)
	if err != nil {
		return Summary{}, fmt.Errorf("progress summary: %w", err)
	}

	now := a.clock.Now()
	counts, err := a.events.CountByNameSince(ctx, learnerID, now.Add(-7*24*time.Hour))
	if err != nil {
		return Summary{}, fmt.Errorf("progress summary: %w", err)
	}

	streak, err := a.streakDays(ctx, learnerID, now)
	if err != nil {
		return Summary{}, fmt.Errorf("progress summary: %w", err)
	}

	return Summary{
		LessonsDone:      lessonsDone,
		ReviewsCorrect7d: counts[store.EventReviewCorrect],
		ReviewsWrong7d:   counts[store.EventReviewWrong],
		StreakDays:       streak,
	}, nil
}

// streakDays counts consecutive UTC calendar days with at least one event,
// walking backward from today and stopping at the first gap.
func (a *Aggregator) streakDays(ctx context.Context, learnerID string, now time.Time) (int, error) {
	days, err := a.events.ActivityDays(ctx, learnerID)
	if err != nil {
		return 0, err
	}

	active := make(map[string]bool, len(days))
	for _, d := range days {
		active[d] = true
	}

	today := now.UTC().Truncate(24 * time.Hour)
	streak := 0
	for active[today.AddDate(0, 0, -streak).Format("2006-01-02")] {
		streak++
	}
	return streak, nil
}
