package config

import "time"

// Config holds all application configuration.
type Config struct {
	Data  DataConfig  `mapstructure:"data" validate:"required"`
	Log   LogConfig   `mapstructure:"log" validate:"required"`
	LLM   LLMConfig   `mapstructure:"llm" validate:"required"`
	Drill DrillConfig `mapstructure:"drill" validate:"required"`
}

// DataConfig locates on-disk state.
type DataConfig struct {
	Dir    string `mapstructure:"dir" validate:"required"`
	DBPath string `mapstructure:"db_path"` // defaults to <dir>/kotoba.db
}

// LogConfig controls the structured log file.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	File  string `mapstructure:"file"` // defaults to <data dir>/kotoba.log
}

// LLMConfig selects and tunes the language model provider.
type LLMConfig struct {
	// Provider is one of anthropic, openai, gemini, openrouter, mock or
	// offline. Empty picks the first provider with an API key.
	Provider string `mapstructure:"provider" validate:"omitempty,oneof=anthropic openai gemini openrouter mock offline"`
	Model    string `mapstructure:"model"`

	AnthropicAPIKey  string `mapstructure:"anthropic_api_key"`
	OpenAIAPIKey     string `mapstructure:"openai_api_key"`
	OpenAIBaseURL    string `mapstructure:"openai_base_url" validate:"omitempty,url"`
	GeminiAPIKey     string `mapstructure:"gemini_api_key"`
	OpenRouterAPIKey string `mapstructure:"openrouter_api_key"`

	Timeout           time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxAttempts       int           `mapstructure:"max_attempts" validate:"gte=1,lte=10"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute" validate:"gte=0"`
	Burst             int           `mapstructure:"burst" validate:"gte=1"`
}

// DrillConfig holds the defaults offered on the setup screen.
type DrillConfig struct {
	WordCount  int    `mapstructure:"word_count" validate:"gte=1,lte=50"`
	Difficulty string `mapstructure:"difficulty" validate:"oneof=easy medium hard"`
	Category   string `mapstructure:"category" validate:"required"`
}
