package llm

// modelAliases maps short names accepted in config to vendor model IDs,
// per provider. Anything not listed is passed through unchanged.
var modelAliases = map[string]map[string]string{
	"anthropic": {
		"claude-haiku":  "claude-haiku-4-5-20251001",
		"claude-sonnet": "claude-sonnet-4-20250514",
	},
	"openai": {
		"gpt-4o":      "gpt-4o",
		"gpt-4o-mini": "gpt-4o-mini",
		"gpt-mini":    "gpt-4.1-mini",
	},
	"gemini": {
		"gemini-flash": "gemini-2.5-flash",
		"gemini-lite":  "gemini-2.5-flash-lite",
		"gemini-pro":   "gemini-2.5-pro",
	},
}

// resolveModel returns the vendor model ID for name under provider.
func resolveModel(provider, name string) string {
	if id, ok := modelAliases[provider][name]; ok {
		return id
	}
	return name
}
