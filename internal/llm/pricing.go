package llm

import (
	"regexp"
	"strings"
)

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost prices a token count.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	const perM = 1_000_000
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / perM
}

var dateSuffix = regexp.MustCompile(`-\d{8}$`)

// LookupCost returns pricing for modelID, or nil when unknown. It tries
// the ID as given, then without an OpenRouter vendor prefix
// ("google/gemini-2.0-flash"), then without a trailing -YYYYMMDD
// snapshot date.
func LookupCost(modelID string) *ModelCost {
	candidates := []string{modelID}
	if _, rest, ok := strings.Cut(modelID, "/"); ok {
		candidates = append(candidates, rest)
	}
	for _, id := range candidates {
		if c, ok := modelCosts[id]; ok {
			return &c
		}
		if trimmed := dateSuffix.ReplaceAllString(id, ""); trimmed != id {
			if c, ok := modelCosts[trimmed]; ok {
				return &c
			}
		}
	}
	return nil
}

// modelCosts is list pricing as of September 2026.
var modelCosts = map[string]ModelCost{
	"claude-3-5-haiku-latest":  {0.8, 4},
	"claude-3-7-sonnet-latest": {3, 15},
	"claude-3-haiku-20240307":  {0.25, 1.25},
	"claude-haiku-4-5":         {1, 5},
	"claude-opus-4-1":          {15, 75},
	"claude-opus-4-5":          {5, 25},
	"claude-sonnet-4":          {3, 15},
	"claude-sonnet-4-5":        {3, 15},

	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-5":        {1.25, 10},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},
	"o3-mini":      {1.1, 4.4},
	"o4-mini":      {1.1, 4.4},

	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-exp":  {0, 0},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
	"gemini-flash-latest":   {0.3, 2.5},
}
