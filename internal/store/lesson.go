package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Lesson is one delivered micro-lesson with its practice exercise.
type Lesson struct {
	ID        string
	LearnerID string
	Content   string
	Exercise  string
	Payload   string // lesson JSON as generated, "" when unavailable
	CreatedAt time.Time
}

// LessonRepo persists delivered lessons.
type LessonRepo struct {
	db *sqlx.DB
}

// Save stores one lesson.
func (r *LessonRepo) Save(ctx context.Context, l Lesson) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO lessons (id, learner_id, content, exercise, payload, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		l.ID, l.LearnerID, l.Content, l.Exercise, l.Payload, l.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("save lesson: %w", err)
	}
	return nil
}

// Count returns the all-time number of lessons delivered to a learner.
func (r *LessonRepo) Count(ctx context.Context, learnerID string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM lessons WHERE learner_id = ?`, learnerID)
	if err != nil {
		return 0, fmt.Errorf("count lessons: %w", err)
	}
	return n, nil
}
