package config

import (
	"github.com/abhisek/kotoba/internal/llm"
)

// ProviderOffline selects the built-in word list instead of an LLM.
const ProviderOffline = "offline"

// LLMProvider builds the llm.Config for the configured provider. ok is
// false when no usable provider is configured and the offline word list
// should be used.
func (c *Config) LLMProvider() (cfg llm.Config, ok bool) {
	cfg = llm.DefaultConfig()
	cfg.Timeout = c.LLM.Timeout
	cfg.Retry.MaxAttempts = c.LLM.MaxAttempts
	cfg.RateLimit.RequestsPerMinute = c.LLM.RequestsPerMinute
	cfg.RateLimit.Burst = c.LLM.Burst

	cfg.Anthropic.APIKey = c.LLM.AnthropicAPIKey
	cfg.OpenAI.APIKey = c.LLM.OpenAIAPIKey
	cfg.OpenAI.BaseURL = c.LLM.OpenAIBaseURL
	cfg.Gemini.APIKey = c.LLM.GeminiAPIKey
	cfg.OpenRouter.APIKey = c.LLM.OpenRouterAPIKey

	switch c.LLM.Provider {
	case ProviderOffline:
		return cfg, false
	case "":
		cfg.Provider = c.firstConfiguredProvider()
		if cfg.Provider == "" {
			discovered, found := llm.DiscoverConfig(cfg)
			if !found {
				return cfg, false
			}
			cfg = discovered
		}
	default:
		cfg.Provider = c.LLM.Provider
	}

	if c.LLM.Model != "" {
		setModel(&cfg, c.LLM.Model)
	}
	return cfg, cfg.HasKey()
}

func (c *Config) firstConfiguredProvider() string {
	switch {
	case c.LLM.GeminiAPIKey != "":
		return "gemini"
	case c.LLM.OpenAIAPIKey != "":
		return "openai"
	case c.LLM.AnthropicAPIKey != "":
		return "anthropic"
	case c.LLM.OpenRouterAPIKey != "":
		return "openrouter"
	}
	return ""
}

func setModel(cfg *llm.Config, model string) {
	switch cfg.Provider {
	case "anthropic":
		cfg.Anthropic.Model = model
	case "openai":
		cfg.OpenAI.Model = model
	case "gemini":
		cfg.Gemini.Model = model
	case "openrouter":
		cfg.OpenRouter.Model = model
	}
}
