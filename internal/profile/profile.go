// Package profile manages learner registration and profile edits.
package profile

import (
	"context"
	"fmt"

	"github.com/abhisek/lingocoach/internal/clock"
	"github.com/abhisek/lingocoach/internal/store"
)

// Registration carries the fields collected when a learner signs up.
type Registration struct {
	Name  string
	Age   string
	Email string
	Level string
	Goal  string
}

// Service wraps profile persistence with event logging.
type Service struct {
	users  *store.UserRepo
	events *store.EventRepo
	clock  clock.Clock
}

// NewService creates a profile service.
func NewService(st *store.Store, clk clock.Clock) *Service {
	return &Service{users: st.Users(), events: st.Events(), clock: clk}
}

// Get loads a learner profile. Returns store.ErrNotFound for unregistered
// learners.
func (s *Service) Get(ctx context.Context, learnerID string) (store.User, error) {
	return s.users.Get(ctx, learnerID)
}

// Register creates the profile if absent and logs register_completed.
// Registering an existing learner returns the stored profile unchanged.
func (s *Service) Register(ctx context.Context, learnerID string, reg Registration) (store.User, error) {
	now := s.clock.Now()
	user, err := s.users.Save(ctx, store.User{
		LearnerID: learnerID,
		Name:      reg.Name,
		Age:       reg.Age,
		Email:     reg.Email,
		Level:     reg.Level,
		Goal:      reg.Goal,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return store.User{}, err
	}

	if err := s.events.Append(ctx, store.EventRecord{
		LearnerID: learnerID,
		Name:      store.EventRegisterCompleted,
		Timestamp: now,
	}); err != nil {
		return store.User{}, fmt.Errorf("log registration: %w", err)
	}
	return user, nil
}

// UpdateField edits a single profile field (name, age, email, level, goal).
func (s *Service) UpdateField(ctx context.Context, learnerID, field, value string) error {
	return s.users.UpdateField(ctx, learnerID, field, value, s.clock.Now())
}

// CompletePlacement records a placement outcome: assessed CEFR level,
// weakness tags, and the placement_completed event.
func (s *Service) CompletePlacement(ctx context.Context, learnerID, cefr string, score, total int, weaknesses []string) error {
	now := s.clock.Now()
	if err := s.users.SetPlacement(ctx, learnerID, cefr, weaknesses, now); err != nil {
		return err
	}

	return s.events.Append(ctx, store.EventRecord{
		LearnerID: learnerID,
		Name:      store.EventPlacementCompleted,
		Payload: map[string]any{
			"score": score,
			"total": total,
			"cefr":  cefr,
			"weak":  weaknesses,
		},
		Timestamp: now,
	})
}
