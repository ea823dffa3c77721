package llm

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/abhisek/lingocoach/internal/store"
)

func testEventRepo(t *testing.T) *store.EventRepo {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st.Events()
}

func TestLogging_RecordsSuccess(t *testing.T) {
	events := testEventRepo(t)
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	p := WithLogging(mock, events)

	ctx := WithCaller(context.Background(), "alice", "placement")
	if _, err := p.Generate(ctx, Request{Prompt: "generate questions"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recorded, err := events.Recent(ctx, "alice", store.EventLLMRequest, 10)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(recorded) != 1 {
		t.Fatalf("expected 1 event, got %d", len(recorded))
	}
	payload := recorded[0].Payload
	if payload["purpose"] != "placement" {
		t.Errorf("purpose = %v", payload["purpose"])
	}
	if payload["model"] != "mock" {
		t.Errorf("model = %v", payload["model"])
	}
	if payload["success"] != true {
		t.Errorf("success = %v", payload["success"])
	}
}

func TestLogging_RecordsFailureAndPropagatesError(t *testing.T) {
	events := testEventRepo(t)
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, events)

	ctx := WithCaller(context.Background(), "alice", "qa")
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error to propagate")
	}

	recorded, err := events.Recent(ctx, "alice", store.EventLLMRequest, 10)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(recorded) != 1 {
		t.Fatalf("expected 1 event, got %d", len(recorded))
	}
	payload := recorded[0].Payload
	if payload["success"] != false {
		t.Errorf("success = %v", payload["success"])
	}
	if msg, ok := payload["error"].(string); !ok || msg == "" {
		t.Error("expected error message in payload")
	}
}
