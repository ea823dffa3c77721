package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/lingocoach/internal/llm"
	"github.com/abhisek/lingocoach/internal/store"
)

// GradeResult is the tutor's verdict on one exercise answer.
type GradeResult struct {
	Correct  bool
	Feedback string
}

// GradeAnswer asks the generator to grade an exercise answer. Unlike the
// content paths there is no fallback here: a failed grading call is
// surfaced so the caller can retry instead of recording a bogus result
// into the review schedule.
func (s *Service) GradeAnswer(ctx context.Context, learnerID, exercise, answer string, weaknesses []string) (GradeResult, error) {
	ctx = llm.WithCaller(ctx, learnerID, "grade")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    gradeSystemPrompt,
		Prompt:    buildGradePrompt(exercise, answer, weaknesses),
		MaxTokens: 256,
	})
	if err != nil {
		return GradeResult{}, fmt.Errorf("grade answer: %w", err)
	}

	feedback := strings.TrimSpace(resp.Text())
	if feedback == "" {
		return GradeResult{}, fmt.Errorf("grade answer: empty feedback")
	}

	verdict := strings.ToUpper(feedback)
	return GradeResult{
		Correct:  strings.HasPrefix(verdict, "CORRECT"),
		Feedback: feedback,
	}, nil
}

// qaFallback is shown when the generator can't answer.
const qaFallback = "Sorry, try again later."

// Answer responds to a free-form learner question and logs the qa_asked
// event. Generator failures degrade to a canned reply.
func (s *Service) Answer(ctx context.Context, learnerID, question string) (string, error) {
	if err := s.events.Append(ctx, store.EventRecord{
		LearnerID: learnerID,
		Name:      store.EventQAAsked,
		Payload:   map[string]any{"q": question},
		Timestamp: s.clock.Now(),
	}); err != nil {
		return "", err
	}

	ctx = llm.WithCaller(ctx, learnerID, "qa")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:    buildQAPrompt(question),
		MaxTokens: 512,
	})
	if err != nil {
		return qaFallback, nil
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return qaFallback, nil
	}
	return answer, nil
}
