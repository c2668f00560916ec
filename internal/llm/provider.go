// Package llm is a small provider-neutral client for structured JSON
// generation. Anthropic, OpenAI, Gemini and OpenRouter sit behind one
// Provider interface; retry, rate limiting and request logging are
// decorators around it.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one completion per call.
type Provider interface {
	// Generate sends req and returns the model's output. When req.Schema
	// is set the content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the resolved model identifier.
	ModelID() string
}

// Request is one single-turn or multi-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema asks for JSON output in the provider's native structured
	// mode. Nil means free text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who sent a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema. Name is kebab-case ("word-list"); it is
// the tool or schema name on the wire and the cache key for validation.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Stop reasons reported in Response.StopReason.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is a finished completion.
type Response struct {
	// Content is the JSON object when a Schema was requested, otherwise
	// the raw text.
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Usage is the token accounting for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
