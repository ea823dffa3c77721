package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// User is a learner profile.
type User struct {
	LearnerID  string
	Name       string
	Age        string
	Email      string
	Level      string
	CEFR       string
	Goal       string
	Weaknesses []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type userRow struct {
	LearnerID  string `db:"learner_id"`
	Name       string `db:"name"`
	Age        string `db:"age"`
	Email      string `db:"email"`
	Level      string `db:"level"`
	CEFR       string `db:"cefr"`
	Goal       string `db:"goal"`
	Weaknesses string `db:"weaknesses"`
	CreatedAt  int64  `db:"created_at"`
	UpdatedAt  int64  `db:"updated_at"`
}

func (r userRow) user() (User, error) {
	var weaknesses []string
	if r.Weaknesses != "" {
		if err := json.Unmarshal([]byte(r.Weaknesses), &weaknesses); err != nil {
			return User{}, fmt.Errorf("decode weaknesses: %w", err)
		}
	}
	return User{
		LearnerID:  r.LearnerID,
		Name:       r.Name,
		Age:        r.Age,
		Email:      r.Email,
		Level:      r.Level,
		CEFR:       r.CEFR,
		Goal:       r.Goal,
		Weaknesses: weaknesses,
		CreatedAt:  time.Unix(r.CreatedAt, 0).UTC(),
		UpdatedAt:  time.Unix(r.UpdatedAt, 0).UTC(),
	}, nil
}

// UserRepo persists learner profiles.
type UserRepo struct {
	db *sqlx.DB
}

// Get loads one profile, or ErrNotFound.
func (r *UserRepo) Get(ctx context.Context, learnerID string) (User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row,
		`SELECT learner_id, name, age, email, level, cefr, goal, weaknesses, created_at, updated_at
		 FROM users WHERE learner_id = ?`, learnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return row.user()
}

// Save inserts the profile if absent and returns the stored row. An existing
// profile is left untouched.
func (r *UserRepo) Save(ctx context.Context, u User) (User, error) {
	weaknesses, err := json.Marshal(orEmpty(u.Weaknesses))
	if err != nil {
		return User{}, fmt.Errorf("encode weaknesses: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (learner_id, name, age, email, level, cefr, goal, weaknesses, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (learner_id) DO NOTHING`,
		u.LearnerID, u.Name, u.Age, u.Email, u.Level, u.CEFR, u.Goal,
		string(weaknesses), u.CreatedAt.Unix(), u.UpdatedAt.Unix(),
	)
	if err != nil {
		return User{}, fmt.Errorf("save user: %w", err)
	}
	return r.Get(ctx, u.LearnerID)
}

// profileColumns are the fields editable through UpdateField.
var profileColumns = map[string]bool{
	"name":  true,
	"age":   true,
	"email": true,
	"level": true,
	"goal":  true,
}

// UpdateField sets a single editable profile column.
func (r *UserRepo) UpdateField(ctx context.Context, learnerID, field, value string, now time.Time) error {
	if !profileColumns[field] {
		return fmt.Errorf("unknown profile field %q", field)
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET `+field+` = ?, updated_at = ? WHERE learner_id = ?`,
		value, now.Unix(), learnerID,
	)
	if err != nil {
		return fmt.Errorf("update user field: %w", err)
	}
	return nil
}

// SetPlacement records the outcome of a placement test: the assessed CEFR
// level and the learner's weakest tags.
func (r *UserRepo) SetPlacement(ctx context.Context, learnerID, cefr string, weaknesses []string, now time.Time) error {
	raw, err := json.Marshal(orEmpty(weaknesses))
	if err != nil {
		return fmt.Errorf("encode weaknesses: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE users SET cefr = ?, level = ?, weaknesses = ?, updated_at = ? WHERE learner_id = ?`,
		cefr, cefr, string(raw), now.Unix(), learnerID,
	)
	if err != nil {
		return fmt.Errorf("set placement: %w", err)
	}
	return nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
