package wordgen

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhisek/kotoba/internal/llm"
	"github.com/abhisek/kotoba/internal/vocab"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	logger   *slog.Logger
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config, logger *slog.Logger) *LLMGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &LLMGenerator{provider: provider, config: cfg, logger: logger}
}

// wordListOutput is the raw LLM response before validation.
type wordListOutput struct {
	Words []wordOutput `json:"words"`
}

type wordOutput struct {
	Native  string `json:"native"`
	Romaji  string `json:"romaji"`
	Meaning string `json:"meaning"`
}

// Generate produces a validated word list for the request.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) ([]vocab.Item, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeWordGen)

	if req.Count <= 0 {
		req.Count = g.config.DefaultCount
	}
	req.Priority = filterPriority(req.Priority, req)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req, g.config)},
		},
		Schema:      WordListSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		g.logger.Warn("word generation failed", "category", req.Category.ID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrEmpty, err)
	}

	var raw wordListOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		g.logger.Warn("word generation returned malformed payload", "category", req.Category.ID, "error", err)
		return nil, fmt.Errorf("%w: parse LLM response: %w", ErrEmpty, err)
	}

	items := g.accept(raw.Words, req)
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	return items, nil
}

// accept normalizes, validates and dedupes generated words, keeping at
// most req.Count of them in response order.
func (g *LLMGenerator) accept(words []wordOutput, req Request) []vocab.Item {
	seen := make(map[string]struct{}, len(words))
	items := make([]vocab.Item, 0, len(words))

	for _, w := range words {
		it := vocab.Item{
			Native:  strings.TrimSpace(w.Native),
			Romaji:  strings.ToLower(strings.TrimSpace(w.Romaji)),
			Meaning: strings.TrimSpace(w.Meaning),
		}
		if verr := g.validate(&it, req); verr != nil {
			g.logger.Debug("dropped generated word", "error", verr)
			continue
		}
		if _, dup := seen[it.Key()]; dup {
			continue
		}
		seen[it.Key()] = struct{}{}
		items = append(items, it)
		if len(items) == req.Count {
			break
		}
	}
	return items
}

func (g *LLMGenerator) validate(it *vocab.Item, req Request) *ValidationError {
	for _, v := range g.config.Validators {
		if verr := v.Validate(it, req); verr != nil {
			return verr
		}
	}
	return nil
}

// filterPriority keeps only hint characters the request's charset allows.
func filterPriority(priority []rune, req Request) []rune {
	if len(priority) == 0 || req.Charset.Open() {
		return priority
	}
	out := make([]rune, 0, len(priority))
	for _, r := range priority {
		if req.Charset.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}
