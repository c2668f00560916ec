package llm

import (
	"context"
	"fmt"
	"log/slog"
)

// NewProvider builds the configured provider and wraps it, outermost
// first, in a timeout, retry, rate limiting and request logging. A nil
// events sink skips logging. The mock provider is returned bare.
func NewProvider(ctx context.Context, cfg Config, events EventSink, logger *slog.Logger) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch cfg.Provider {
	case "mock":
		return NewMockProvider(), nil
	case "anthropic":
		p, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		p, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		p, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg.Gemini)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if events != nil {
		p = WithLogging(p, events, cfg.Provider, logger)
	}
	return WithTimeout(WithRetry(WithRateLimit(p, cfg.RateLimit), cfg.Retry), cfg.Timeout), nil
}
