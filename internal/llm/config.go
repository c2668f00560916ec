package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects a provider and tunes the middleware around it.
type Config struct {
	// Provider is anthropic, openai, gemini, openrouter or mock.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	Retry     RetryConfig
	RateLimit RateLimitConfig

	// Timeout bounds a single logical request, retries included.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // for OpenAI-compatible servers
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string // vendor-prefixed, e.g. google/gemini-2.0-flash-exp
	BaseURL string
}

// RetryConfig is the backoff policy for WithRetry.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64

	// RateLimitOnly retries 429s and nothing else.
	RateLimitOnly bool
}

// RateLimitConfig is the client-side token bucket for WithRateLimit.
type RateLimitConfig struct {
	RequestsPerMinute int // 0 disables limiting
	Burst             int
}

// providerKeys lists the key-bearing providers in discovery order, with
// the vendor env var each one reads and the kotoba override users set.
var providerKeys = []struct {
	name     string
	vendor   string
	override string
}{
	{"gemini", "GEMINI_API_KEY", "KOTOBA_LLM_GEMINI_API_KEY"},
	{"openai", "OPENAI_API_KEY", "KOTOBA_LLM_OPENAI_API_KEY"},
	{"anthropic", "ANTHROPIC_API_KEY", "KOTOBA_LLM_ANTHROPIC_API_KEY"},
	{"openrouter", "OPENROUTER_API_KEY", "KOTOBA_LLM_OPENROUTER_API_KEY"},
}

// DefaultConfig uses Anthropic's small model, retries only rate limits and
// allows 30 requests a minute.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts:   3,
			InitialWait:   time.Second,
			MaxWait:       10 * time.Second,
			Multiplier:    2,
			RateLimitOnly: true,
		},
		RateLimit: RateLimitConfig{RequestsPerMinute: 30, Burst: 3},
		Timeout:   30 * time.Second,
	}
}

// DiscoverConfig picks the first provider whose vendor API key env var is
// set, keeping base's retry and timeout settings. ok is false when no key
// is found.
func DiscoverConfig(base Config) (cfg Config, ok bool) {
	for _, pk := range providerKeys {
		if k := os.Getenv(pk.vendor); k != "" {
			cfg = base
			cfg.Provider = pk.name
			cfg.setKey(k)
			return cfg, true
		}
	}
	return base, false
}

// apiKey returns the key for the selected provider. ok is false for
// providers that do not use one.
func (c Config) apiKey() (key string, ok bool) {
	switch c.Provider {
	case "anthropic":
		return c.Anthropic.APIKey, true
	case "openai":
		return c.OpenAI.APIKey, true
	case "gemini":
		return c.Gemini.APIKey, true
	case "openrouter":
		return c.OpenRouter.APIKey, true
	}
	return "", false
}

func (c *Config) setKey(k string) {
	switch c.Provider {
	case "anthropic":
		c.Anthropic.APIKey = k
	case "openai":
		c.OpenAI.APIKey = k
	case "gemini":
		c.Gemini.APIKey = k
	case "openrouter":
		c.OpenRouter.APIKey = k
	}
}

// HasKey reports whether Validate passes.
func (c Config) HasKey() bool {
	return c.Validate() == nil
}

// Validate checks that the provider is known and has its key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	key, ok := c.apiKey()
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key != "" {
		return nil
	}
	for _, pk := range providerKeys {
		if pk.name == c.Provider {
			return fmt.Errorf("%s is required for the %s provider", pk.override, c.Provider)
		}
	}
	return fmt.Errorf("API key is required for the %s provider", c.Provider)
}
