// Package encourage produces short motivational lines shown after each
// answer.
package encourage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/kotoba/internal/llm"
)

// Request is the input for one encouragement line.
type Request struct {
	Correct bool
	Name    string
	Score   int // 0 when unknown
}

// Config holds configuration for the LLM encourager.
type Config struct {
	MaxTokens   int
	Temperature float64
	MaxLength   int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   128,
		Temperature: 0.9,
		MaxLength:   120,
	}
}

// FallbackFor returns the canned line used whenever the LLM is
// unavailable or fails.
func FallbackFor(correct bool) string {
	if correct {
		return "Nice work! Keep it up."
	}
	return "Not quite. You'll get it next time."
}

// EncouragementSchema defines the JSON schema for encouragement responses.
var EncouragementSchema = &llm.Schema{
	Name:        "encouragement",
	Description: "A single short encouraging sentence for a language learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "One friendly sentence, at most 15 words, no emoji",
			},
		},
		"required":             []any{"message"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You cheer on a beginner practicing Japanese kana.
Write one short, warm sentence in English. Address the learner by name when one is given.
If the answer was wrong, be kind and encouraging without mentioning the correct answer.
Never use emoji.`

type encouragementOutput struct {
	Message string `json:"message"`
}

func buildUserMessage(req Request) string {
	var b strings.Builder
	if req.Name != "" {
		fmt.Fprintf(&b, "Learner: %s\n", req.Name)
	}
	if req.Correct {
		b.WriteString("Result: correct\n")
	} else {
		b.WriteString("Result: incorrect\n")
	}
	if req.Score > 0 {
		fmt.Fprintf(&b, "Current score: %d\n", req.Score)
	}
	return b.String()
}

// generate asks the provider for a line and returns it, or an error.
func generate(ctx context.Context, p llm.Provider, cfg Config, req Request) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeEncouragement)

	resp, err := p.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      EncouragementSchema,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("encouragement generation: %w", err)
	}

	var out encouragementOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse encouragement: %w", err)
	}

	msg := strings.TrimSpace(out.Message)
	if msg == "" {
		return "", fmt.Errorf("empty encouragement")
	}
	if cfg.MaxLength > 0 && len([]rune(msg)) > cfg.MaxLength {
		return "", fmt.Errorf("encouragement exceeds %d characters", cfg.MaxLength)
	}
	return msg, nil
}
