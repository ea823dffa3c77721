// Package llm abstracts the external text generator behind a single
// Generate call with optional schema-validated structured output.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the boundary to the external content generator.
type Provider interface {
	// Generate sends one prompt and returns the model's reply. When the
	// request carries a Schema, the reply is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one generation call. The core only ever does single-turn
// generation: a system instruction plus one user prompt.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user message.
	Prompt string

	// Schema, when set, instructs the provider to return JSON conforming
	// to it, using the provider's native structured-output mechanism.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means deterministic.
	Temperature float64
}

// Schema is a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "placement-questions").
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// set, otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as plain text, stripping a JSON string
// wrapper if present.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}
