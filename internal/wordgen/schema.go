package wordgen

import "github.com/abhisek/kotoba/internal/llm"

// WordListSchema defines the JSON schema for LLM word generation responses.
var WordListSchema = &llm.Schema{
	Name:        "word-list",
	Description: "A list of Japanese practice words with romaji and English meaning",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"native": map[string]any{
							"type":        "string",
							"description": "The word written in kana only",
						},
						"romaji": map[string]any{
							"type":        "string",
							"description": "Hepburn romanization in lowercase ASCII, no spaces or macrons",
						},
						"meaning": map[string]any{
							"type":        "string",
							"description": "A short English gloss",
						},
					},
					"required":             []any{"native", "romaji", "meaning"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"words"},
		"additionalProperties": false,
	},
}
