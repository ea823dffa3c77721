package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Event names recorded in the log.
const (
	EventLessonStarted      = "lesson_started"
	EventReviewCorrect      = "review_answered_correct"
	EventReviewWrong        = "review_answered_wrong"
	EventPlacementCompleted = "placement_completed"
	EventRegisterCompleted  = "register_completed"
	EventQAAsked            = "qa_asked"
	EventLLMRequest         = "llm_request"
)

// EventRecord is one immutable fact in the learner event log.
type EventRecord struct {
	LearnerID string
	Name      string
	Payload   map[string]any
	Timestamp time.Time
}

// EventRepo is the append-only event log. Records are never mutated or
// deleted.
type EventRepo struct {
	db *sqlx.DB
}

// Append writes one event. A nil payload is stored as an empty object.
func (r *EventRepo) Append(ctx context.Context, rec EventRecord) error {
	payload := rec.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO events (learner_id, event_name, payload, ts) VALUES (?, ?, ?, ?)`,
		rec.LearnerID, rec.Name, string(raw), rec.Timestamp.Unix(),
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// CountByNameSince returns per-event-name counts for a learner within
// [since, now].
func (r *EventRepo) CountByNameSince(ctx context.Context, learnerID string, since time.Time) (map[string]int, error) {
	rows, err := r.db.QueryxContext(ctx,
		`SELECT event_name, COUNT(*) FROM events
		 WHERE learner_id = ? AND ts >= ?
		 GROUP BY event_name`,
		learnerID, since.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("scan event count: %w", err)
		}
		counts[name] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	return counts, nil
}

// Recent returns the newest events for a learner, newest first. An empty
// name matches every event.
func (r *EventRepo) Recent(ctx context.Context, learnerID, name string, limit int) ([]EventRecord, error) {
	query := `SELECT learner_id, event_name, payload, ts FROM events WHERE learner_id = ?`
	args := []any{learnerID}
	if name != "" {
		query += ` AND event_name = ?`
		args = append(args, name)
	}
	query += ` ORDER BY ts DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent events: %w", err)
	}
	defer rows.Close()

	var events []EventRecord
	for rows.Next() {
		var (
			rec EventRecord
			raw string
			ts  int64
		)
		if err := rows.Scan(&rec.LearnerID, &rec.Name, &raw, &ts); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &rec.Payload); err != nil {
			return nil, fmt.Errorf("decode event payload: %w", err)
		}
		rec.Timestamp = time.Unix(ts, 0).UTC()
		events = append(events, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query recent events: %w", err)
	}
	return events, nil
}

// ActivityDays returns the distinct UTC calendar days (YYYY-MM-DD) on which
// the learner has at least one event, newest first.
func (r *EventRepo) ActivityDays(ctx context.Context, learnerID string) ([]string, error) {
	var days []string
	err := r.db.SelectContext(ctx, &days,
		`SELECT DISTINCT date(ts, 'unixepoch') FROM events
		 WHERE learner_id = ?
		 ORDER BY 1 DESC`,
		learnerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query activity days: %w", err)
	}
	return days, nil
}
