package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/lingocoach/internal/store"
)

// LoggingProvider is a decorator that records every generation call in the
// learner event log.
type LoggingProvider struct {
	inner  Provider
	events *store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, events *store.EventRepo) Provider {
	return &LoggingProvider{inner: p, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	learnerID, purpose := CallerFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	payload := map[string]any{
		"model":      l.inner.ModelID(),
		"purpose":    purpose,
		"latency_ms": time.Since(start).Milliseconds(),
		"success":    err == nil,
	}
	if resp != nil {
		payload["input_tokens"] = resp.Usage.InputTokens
		payload["output_tokens"] = resp.Usage.OutputTokens
	}
	if err != nil {
		payload["error"] = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	logErr := l.events.Append(ctx, store.EventRecord{
		LearnerID: learnerID,
		Name:      store.EventLLMRequest,
		Payload:   payload,
		Timestamp: start.UTC(),
	})
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log generation event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
