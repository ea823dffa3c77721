package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/lingocoach/internal/llm"
	"github.com/abhisek/lingocoach/internal/store"
)

// StartedLesson is a delivered lesson ready for display plus the review
// item seeded from its first exercise.
type StartedLesson struct {
	Lesson   MicroLesson
	Content  string
	Exercise string
	ItemID   string
}

// StartLesson produces a micro-lesson for the learner's level and goal,
// persists it, seeds its exercise as a review item, and logs the
// lesson_started event. Lesson generation never hard-fails: the static
// fallback lesson is used when the generator does.
func (s *Service) StartLesson(ctx context.Context, learnerID, level, goal string, weaknesses []string) (StartedLesson, error) {
	if level == "" {
		level = "A1"
	}
	if goal == "" {
		goal = "General"
	}

	lesson := s.microLesson(ctx, learnerID, level, goal, weaknesses)
	contentText, exercise := renderLesson(lesson)
	now := s.clock.Now()

	payload, err := json.Marshal(lesson)
	if err != nil {
		return StartedLesson{}, fmt.Errorf("encode lesson: %w", err)
	}

	if err := s.lessons.Save(ctx, store.Lesson{
		ID:        uuid.NewString(),
		LearnerID: learnerID,
		Content:   contentText,
		Exercise:  exercise,
		Payload:   string(payload),
		CreatedAt: now,
	}); err != nil {
		return StartedLesson{}, err
	}

	item, err := s.reviews.Seed(ctx, learnerID, exercise, "")
	if err != nil {
		return StartedLesson{}, err
	}

	if err := s.events.Append(ctx, store.EventRecord{
		LearnerID: learnerID,
		Name:      store.EventLessonStarted,
		Payload:   map[string]any{"level": level},
		Timestamp: now,
	}); err != nil {
		return StartedLesson{}, err
	}

	return StartedLesson{
		Lesson:   lesson,
		Content:  contentText,
		Exercise: exercise,
		ItemID:   item.ItemID,
	}, nil
}

// microLesson returns a lesson for (level, goal), generating and caching
// one when needed. Weaknesses steer the prompt but stay out of the cache
// key, which is deliberately coarse.
func (s *Service) microLesson(ctx context.Context, learnerID, level, goal string, weaknesses []string) MicroLesson {
	key := fmt.Sprintf("lesson:%s:%s", strings.ToLower(level), slug(goal))
	ctx = llm.WithCaller(ctx, learnerID, "lesson")

	generate := func(ctx context.Context) (json.RawMessage, error) {
		resp, err := s.provider.Generate(ctx, llm.Request{
			System:      lessonSystemPrompt,
			Prompt:      buildLessonPrompt(level, goal, weaknesses),
			Schema:      LessonSchema,
			MaxTokens:   s.cfg.MaxTokens,
			Temperature: s.cfg.Temperature,
		})
		if err != nil {
			return nil, err
		}
		return resp.Content, nil
	}

	fb := fallbackLesson(level, goal, strings.Join(weaknesses, ", "))
	fallback, _ := json.Marshal(fb)
	raw := s.cache.GetOrGenerate(ctx, key, generate, validateLesson, fallback, s.cfg.LessonTTL)

	var lesson MicroLesson
	if err := json.Unmarshal(raw, &lesson); err != nil {
		return fb
	}
	return lesson
}

// validateLesson checks that a generated lesson has something to teach and
// something to practice.
func validateLesson(raw json.RawMessage) (json.RawMessage, error) {
	var lesson MicroLesson
	if err := json.Unmarshal(raw, &lesson); err != nil {
		return nil, fmt.Errorf("parse lesson: %w", err)
	}
	if len(lesson.Vocab) == 0 && len(lesson.Sentences) == 0 {
		return nil, fmt.Errorf("lesson has no teaching content")
	}
	if len(lesson.Exercises) == 0 {
		return nil, fmt.Errorf("lesson has no exercises")
	}
	return raw, nil
}

// renderLesson flattens a lesson into display text and the exercise prompt
// used for review seeding.
func renderLesson(l MicroLesson) (contentText, exercise string) {
	var b strings.Builder

	b.WriteString("Vocabulary:\n")
	vocab := l.Vocab
	if len(vocab) > 3 {
		vocab = vocab[:3]
	}
	for _, v := range vocab {
		fmt.Fprintf(&b, "- %s /%s/ = %s\n  e.g. %s\n", v.Word, v.IPA, v.Meaning, v.Example)
	}

	b.WriteString("\nSentences:\n")
	for _, s := range l.Sentences {
		fmt.Fprintf(&b, "- %s\n", s)
	}

	if len(l.Tips) > 0 {
		b.WriteString("\nTips:\n")
		for _, t := range l.Tips {
			fmt.Fprintf(&b, "- %s\n", t)
		}
	}

	contentText = strings.TrimSpace(b.String())

	if len(l.Exercises) == 0 {
		return contentText, "Exercise: Make one sentence using a new word."
	}

	first := l.Exercises[0]
	if first.Type == "mcq" {
		var eb strings.Builder
		eb.WriteString(first.Prompt)
		eb.WriteString("\n")
		for i, opt := range first.Options {
			fmt.Fprintf(&eb, "%c) %s\n", 'A'+i, opt)
		}
		return contentText, "Exercise: " + strings.TrimSpace(eb.String())
	}
	return contentText, "Exercise: " + first.Prompt
}

// slug lowercases and dashes a free-text value for use in a cache key.
func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "-")
}
