package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/lingocoach/internal/llm"
)

// ErrNoUsableQuestions means a generated payload parsed but contained zero
// questions that pass the structural checks.
var ErrNoUsableQuestions = errors.New("no usable questions in generated payload")

// maxPlacementQuestions caps a placement set.
const maxPlacementQuestions = 10

// PlacementQuestions returns a placement question set for the given level
// hint, generating and caching one when needed. Never fails: a broken
// generation yields the static fallback set.
func (s *Service) PlacementQuestions(ctx context.Context, learnerID, levelHint string) []Question {
	if levelHint == "" {
		levelHint = "Beginner"
	}
	key := "placement:" + strings.ToLower(levelHint)
	ctx = llm.WithCaller(ctx, learnerID, "placement")

	generate := func(ctx context.Context) (json.RawMessage, error) {
		resp, err := s.provider.Generate(ctx, llm.Request{
			System:      placementSystemPrompt,
			Prompt:      buildPlacementPrompt(levelHint),
			Schema:      PlacementSchema,
			MaxTokens:   s.cfg.MaxTokens,
			Temperature: s.cfg.Temperature,
		})
		if err != nil {
			return nil, err
		}
		return resp.Content, nil
	}

	fallback, _ := json.Marshal(fallbackPlacement())
	raw := s.cache.GetOrGenerate(ctx, key, generate, validateQuestionSet, fallback, s.cfg.PlacementTTL)

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return fallbackPlacement()
	}
	return questions
}

// validateQuestionSet filters a generated payload down to structurally
// usable questions. Zero usable questions fails the whole attempt.
func validateQuestionSet(raw json.RawMessage) (json.RawMessage, error) {
	var payload struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parse questions: %w", err)
	}

	var usable []Question
	for _, q := range payload.Questions {
		if q.Usable() {
			usable = append(usable, q)
		}
	}
	if len(usable) == 0 {
		return nil, ErrNoUsableQuestions
	}
	if len(usable) > maxPlacementQuestions {
		usable = usable[:maxPlacementQuestions]
	}

	return json.Marshal(usable)
}
