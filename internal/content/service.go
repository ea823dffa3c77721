package content

import (
	"time"

	"github.com/abhisek/lingocoach/internal/clock"
	"github.com/abhisek/lingocoach/internal/llm"
	"github.com/abhisek/lingocoach/internal/srs"
	"github.com/abhisek/lingocoach/internal/store"
)

// Config tunes the generation service.
type Config struct {
	// PlacementTTL is how long a generated placement set stays cached.
	PlacementTTL time.Duration

	// LessonTTL is how long a generated micro-lesson stays cached.
	LessonTTL time.Duration

	// Timeout bounds one external generator call.
	Timeout time.Duration

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		PlacementTTL: 12 * time.Hour,
		LessonTTL:    6 * time.Hour,
		Timeout:      40 * time.Second,
		MaxTokens:    2048,
		Temperature:  0.4,
	}
}

// Service is the generation subsystem: placement sets, micro-lessons,
// answer grading, and Q&A, all backed by one provider and the TTL cache.
type Service struct {
	provider llm.Provider
	cache    *Cache
	lessons  *store.LessonRepo
	events   *store.EventRepo
	reviews  *srs.Service
	clock    clock.Clock
	cfg      Config
}

// NewService creates a content service.
func NewService(provider llm.Provider, st *store.Store, reviews *srs.Service, clk clock.Clock, cfg Config) *Service {
	return &Service{
		provider: provider,
		cache:    NewCache(st.Cache(), clk, cfg.Timeout),
		lessons:  st.Lessons(),
		events:   st.Events(),
		reviews:  reviews,
		clock:    clk,
		cfg:      cfg,
	}
}
