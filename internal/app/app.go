// Package app wires the core services together from one explicit Config.
// Components never read the environment themselves; everything flows in
// through construction.
package app

import (
	"context"
	"fmt"

	"github.com/abhisek/lingocoach/internal/clock"
	"github.com/abhisek/lingocoach/internal/content"
	"github.com/abhisek/lingocoach/internal/llm"
	"github.com/abhisek/lingocoach/internal/profile"
	"github.com/abhisek/lingocoach/internal/progress"
	"github.com/abhisek/lingocoach/internal/srs"
	"github.com/abhisek/lingocoach/internal/store"
)

// Config is the process-wide configuration, assembled once at startup.
type Config struct {
	DBPath  string
	LLM     llm.Config
	Content content.Config
}

// ConfigFromEnv builds a Config from the environment, with defaults.
func ConfigFromEnv() Config {
	llmCfg := llm.ConfigFromEnv()

	contentCfg := content.DefaultConfig()
	contentCfg.Timeout = llmCfg.Timeout

	return Config{
		LLM:     llmCfg,
		Content: contentCfg,
	}
}

// App holds the constructed core services.
type App struct {
	Store    *store.Store
	Clock    clock.Clock
	Provider llm.Provider
	Profile  *profile.Service
	Reviews  *srs.Service
	Progress *progress.Aggregator
	Content  *content.Service
}

// New opens the store and constructs every service.
func New(ctx context.Context, cfg Config) (*App, error) {
	if err := cfg.LLM.Validate(); err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, st.Events())
	if err != nil {
		st.Close()
		return nil, err
	}

	clk := clock.System{}
	reviews := srs.NewService(st, clk)

	return &App{
		Store:    st,
		Clock:    clk,
		Provider: provider,
		Profile:  profile.NewService(st, clk),
		Reviews:  reviews,
		Progress: progress.NewAggregator(st, clk),
		Content:  content.NewService(provider, st, reviews, clk, cfg.Content),
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}
