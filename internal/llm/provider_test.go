package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_Script(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 3, OutputTokens: 4}},
		MockResponse{Err: boom},
	)

	resp, err := m.Generate(context.Background(), Request{System: "first"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(resp.Content))
	assert.Equal(t, 3, resp.Usage.InputTokens)
	assert.Equal(t, StopEnd, resp.StopReason)

	_, err = m.Generate(context.Background(), Request{System: "second"})
	assert.ErrorIs(t, err, boom)

	_, err = m.Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)

	m.AddResponse(MockResponse{Content: json.RawMessage(`{}`)})
	_, err = m.Generate(context.Background(), Request{System: "last"})
	require.NoError(t, err)

	assert.Equal(t, 4, m.CallCount())
	last, ok := m.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "last", last.System)
}

func TestMockProvider_NoCalls(t *testing.T) {
	_, ok := NewMockProvider().LastRequest()
	assert.False(t, ok)
}

func TestPurpose(t *testing.T) {
	assert.Equal(t, PurposeUnknown, PurposeFrom(context.Background()))
	assert.Equal(t, PurposeUnknown, PurposeFrom(WithPurpose(context.Background(), "")))
	assert.Equal(t, PurposeWordGen, PurposeFrom(WithPurpose(context.Background(), PurposeWordGen)))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, ""},
		{"anthropic with key", func(c *Config) { c.Anthropic.APIKey = "k" }, ""},
		{"anthropic without key", func(c *Config) {}, "KOTOBA_LLM_ANTHROPIC_API_KEY"},
		{"gemini without key", func(c *Config) { c.Provider = "gemini" }, "KOTOBA_LLM_GEMINI_API_KEY"},
		{"openrouter with key", func(c *Config) { c.Provider = "openrouter"; c.OpenRouter.APIKey = "k" }, ""},
		{"unknown provider", func(c *Config) { c.Provider = "acme" }, "unknown LLM provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.True(t, cfg.HasKey())
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.False(t, cfg.HasKey())
		})
	}
}

func clearVendorKeys(t *testing.T) {
	t.Helper()
	for _, pk := range providerKeys {
		t.Setenv(pk.vendor, "")
	}
}

func TestDiscoverConfig(t *testing.T) {
	t.Run("none set", func(t *testing.T) {
		clearVendorKeys(t)
		cfg, ok := DiscoverConfig(DefaultConfig())
		assert.False(t, ok)
		assert.Equal(t, "anthropic", cfg.Provider)
	})

	t.Run("openai before anthropic", func(t *testing.T) {
		clearVendorKeys(t)
		t.Setenv("ANTHROPIC_API_KEY", "ak")
		t.Setenv("OPENAI_API_KEY", "ok")

		base := DefaultConfig()
		base.Retry.MaxAttempts = 7
		cfg, ok := DiscoverConfig(base)
		require.True(t, ok)
		assert.Equal(t, "openai", cfg.Provider)
		assert.Equal(t, "ok", cfg.OpenAI.APIKey)
		assert.Empty(t, cfg.Anthropic.APIKey)
		assert.Equal(t, 7, cfg.Retry.MaxAttempts)
		assert.NoError(t, cfg.Validate())
	})
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, Config{Provider: "mock"}, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &MockProvider{}, p)

	_, err = NewProvider(ctx, Config{Provider: "acme"}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acme")

	_, err = NewProvider(ctx, Config{Provider: "anthropic"}, nil, nil)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "initializing anthropic provider"))

	cfg := DefaultConfig()
	cfg.Anthropic.APIKey = "k"
	p, err = NewProvider(ctx, cfg, &memSink{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &TimeoutProvider{}, p)
	assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())
}
