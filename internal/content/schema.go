package content

import "github.com/abhisek/lingocoach/internal/llm"

// questionProperties is the shared JSON schema for one question/exercise.
var questionProperties = map[string]any{
	"q": map[string]any{
		"type":        "string",
		"description": "The question prompt shown to the learner",
	},
	"type": map[string]any{
		"type":        "string",
		"enum":        []any{"mcq", "fill", "dialog", "listening", "reading"},
		"description": "How the learner answers",
	},
	"options": map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": "Choices for mcq questions. Empty for open-answer kinds.",
	},
	"answer_index": map[string]any{
		"type":        "integer",
		"description": "Zero-based index of the correct option, for mcq",
	},
	"answer_text": map[string]any{
		"type":        "string",
		"description": "Expected answer text, for fill and dialog",
	},
	"tag": map[string]any{
		"type":        "string",
		"description": "Skill tag like grammar:articles or vocab:frequency",
	},
	"media_url": map[string]any{
		"type": "string",
	},
	"transcript": map[string]any{
		"type":        "string",
		"description": "Short passage or transcript for listening/reading",
	},
}

// PlacementSchema is the JSON schema for generated placement question sets.
var PlacementSchema = &llm.Schema{
	Name:        "placement-questions",
	Description: "A short English placement test mixing grammar, vocabulary, listening, and reading",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":       "object",
					"properties": questionProperties,
					"required":   []any{"q", "type"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

// LessonSchema is the JSON schema for generated micro-lessons.
var LessonSchema = &llm.Schema{
	Name:        "micro-lesson",
	Description: "A compact English micro-lesson with vocabulary, sentences, exercises, and tips",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"meta": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"level":      map[string]any{"type": "string"},
					"goal":       map[string]any{"type": "string"},
					"weaknesses": map[string]any{"type": "string"},
					"version":    map[string]any{"type": "string"},
				},
				"required": []any{"level", "goal"},
			},
			"vocab": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word":      map[string]any{"type": "string"},
						"ipa":       map[string]any{"type": "string"},
						"meaning":   map[string]any{"type": "string"},
						"example":   map[string]any{"type": "string"},
						"audio_url": map[string]any{"type": "string"},
					},
					"required": []any{"word", "example"},
				},
			},
			"sentences": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"exercises": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":         questionProperties["type"],
						"prompt":       map[string]any{"type": "string"},
						"options":      questionProperties["options"],
						"answer_index": questionProperties["answer_index"],
						"answer_text":  questionProperties["answer_text"],
						"media_url":    questionProperties["media_url"],
						"transcript":   questionProperties["transcript"],
					},
					"required": []any{"type", "prompt"},
				},
			},
			"tips": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"meta", "vocab", "sentences", "exercises", "tips"},
	},
}
