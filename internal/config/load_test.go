package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load or key discovery reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"KOTOBA_DATA_DIR", "KOTOBA_DB", "KOTOBA_DATA_DB_PATH", "KOTOBA_LOG_LEVEL",
		"KOTOBA_LLM_PROVIDER", "KOTOBA_LLM_MODEL", "KOTOBA_LLM_GEMINI_API_KEY",
		"KOTOBA_LLM_OPENAI_API_KEY", "KOTOBA_LLM_ANTHROPIC_API_KEY", "KOTOBA_LLM_OPENROUTER_API_KEY",
		"KOTOBA_DRILL_WORD_COUNT", "KOTOBA_DRILL_DIFFICULTY",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(Options{DataDir: dir})
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Data.Dir)
	assert.Equal(t, filepath.Join(dir, "kotoba.db"), cfg.Data.DBPath)
	assert.Equal(t, filepath.Join(dir, "kotoba.log"), cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.LLM.MaxAttempts)
	assert.Equal(t, 10, cfg.Drill.WordCount)
	assert.Equal(t, "medium", cfg.Drill.Difficulty)
	assert.Equal(t, "hiragana", cfg.Drill.Category)
}

func TestLoad_ConfigFileInDataDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), `
log:
  level: DEBUG
llm:
  provider: gemini
  gemini_api_key: file-key
  timeout: 45s
drill:
  word_count: 15
  difficulty: hard
  category: katakana
`)

	cfg, err := Load(Options{DataDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 15, cfg.Drill.WordCount)
	assert.Equal(t, "katakana", cfg.Drill.Category)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), "drill:\n  word_count: 15\n")
	t.Setenv("KOTOBA_DRILL_WORD_COUNT", "7")
	t.Setenv("KOTOBA_DB", filepath.Join(dir, "other.db"))

	cfg, err := Load(Options{DataDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Drill.WordCount)
	assert.Equal(t, filepath.Join(dir, "other.db"), cfg.Data.DBPath)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "KOTOBA_LLM_OPENAI_API_KEY=from-dotenv\n")
	// godotenv does not override variables that already exist.
	require.NoError(t, os.Unsetenv("KOTOBA_LLM_OPENAI_API_KEY"))
	t.Cleanup(func() { os.Unsetenv("KOTOBA_LLM_OPENAI_API_KEY") })

	cfg, err := Load(Options{DataDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.LLM.OpenAIAPIKey)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	clearEnv(t)
	_, err := Load(Options{DataDir: t.TempDir(), ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad log level", "log:\n  level: loud\n"},
		{"bad provider", "llm:\n  provider: skynet\n"},
		{"bad difficulty", "drill:\n  difficulty: extreme\n"},
		{"word count too high", "drill:\n  word_count: 500\n"},
		{"zero attempts", "llm:\n  max_attempts: 0\n"},
		{"bad base url", "llm:\n  openai_base_url: not a url\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			path := filepath.Join(dir, "custom.yaml")
			writeFile(t, path, tt.yaml)
			_, err := Load(Options{DataDir: dir, ConfigFile: path})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestLLMProvider(t *testing.T) {
	t.Run("offline when nothing configured", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load(Options{DataDir: t.TempDir()})
		require.NoError(t, err)
		_, ok := cfg.LLMProvider()
		assert.False(t, ok)
	})

	t.Run("configured key picks provider", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("KOTOBA_LLM_ANTHROPIC_API_KEY", "sk-ant")
		t.Setenv("KOTOBA_LLM_MODEL", "claude-sonnet")
		cfg, err := Load(Options{DataDir: t.TempDir()})
		require.NoError(t, err)
		lc, ok := cfg.LLMProvider()
		require.True(t, ok)
		assert.Equal(t, "anthropic", lc.Provider)
		assert.Equal(t, "claude-sonnet", lc.Anthropic.Model)
		assert.Equal(t, 30, lc.RateLimit.RequestsPerMinute)
	})

	t.Run("falls back to standard env keys", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OPENAI_API_KEY", "sk-openai")
		cfg, err := Load(Options{DataDir: t.TempDir()})
		require.NoError(t, err)
		lc, ok := cfg.LLMProvider()
		require.True(t, ok)
		assert.Equal(t, "openai", lc.Provider)
		assert.Equal(t, "sk-openai", lc.OpenAI.APIKey)
	})

	t.Run("explicit provider without key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("KOTOBA_LLM_PROVIDER", "gemini")
		cfg, err := Load(Options{DataDir: t.TempDir()})
		require.NoError(t, err)
		_, ok := cfg.LLMProvider()
		assert.False(t, ok)
	})

	t.Run("explicit offline", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("KOTOBA_LLM_PROVIDER", "offline")
		t.Setenv("GEMINI_API_KEY", "g")
		cfg, err := Load(Options{DataDir: t.TempDir()})
		require.NoError(t, err)
		_, ok := cfg.LLMProvider()
		assert.False(t, ok)
	})
}
