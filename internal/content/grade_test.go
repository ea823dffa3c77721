package content

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/lingocoach/internal/llm"
	"github.com/abhisek/lingocoach/internal/store"
)

func TestGradeAnswer_Correct(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"CORRECT! Nice use of the past simple."`),
	})
	svc, _, _ := newTestContent(t, mock)

	result, err := svc.GradeAnswer(context.Background(), "alice", "Fill: She ____ to school.", "went", nil)
	require.NoError(t, err)
	require.True(t, result.Correct)
	require.Contains(t, result.Feedback, "past simple")
}

func TestGradeAnswer_Wrong(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"WRONG. The answer is 'went': 'go' is irregular."`),
	})
	svc, _, _ := newTestContent(t, mock)

	result, err := svc.GradeAnswer(context.Background(), "alice", "Fill: She ____ to school.", "goed", nil)
	require.NoError(t, err)
	require.False(t, result.Correct)
}

func TestGradeAnswer_SurfacesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc, _, _ := newTestContent(t, mock)

	_, err := svc.GradeAnswer(context.Background(), "alice", "exercise", "answer", nil)
	require.Error(t, err, "a failed grade must not be recorded as a result")
}

func TestAnswer_LogsAndResponds(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Use 'a' before consonant sounds and 'an' before vowel sounds."`),
	})
	svc, st, clk := newTestContent(t, mock)
	ctx := context.Background()

	answer, err := svc.Answer(ctx, "alice", "When do I use a vs an?")
	require.NoError(t, err)
	require.Contains(t, answer, "vowel")

	counts, err := st.Events().CountByNameSince(ctx, "alice", clk.T.Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, 1, counts[store.EventQAAsked])
}

func TestAnswer_FallbackOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc, _, _ := newTestContent(t, mock)

	answer, err := svc.Answer(context.Background(), "alice", "What is a gerund?")
	require.NoError(t, err)
	require.Equal(t, qaFallback, answer)
}
