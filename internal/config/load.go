package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/kotoba/internal/store"
)

// EnvPrefix prefixes every environment override, e.g. KOTOBA_LOG_LEVEL.
const EnvPrefix = "KOTOBA"

// Options tunes where Load looks for configuration.
type Options struct {
	// ConfigFile is an explicit config path. It must exist when set.
	ConfigFile string
	// DataDir overrides the default data directory.
	DataDir string
}

// Load reads configuration from defaults, an optional config.yaml, an
// optional .env file and KOTOBA_* environment variables, in increasing
// precedence. The result is validated.
func Load(opts Options) (*Config, error) {
	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = os.Getenv(EnvPrefix + "_DATA_DIR")
	}
	if dataDir == "" {
		d, err := store.DefaultDataDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		dataDir = d
	}

	loadDotEnv(filepath.Join(dataDir, ".env"), ".env")

	v := viper.New()
	setDefaults(v, dataDir)

	v.SetConfigType("yaml")
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(dataDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// KOTOBA_DB is the short form of KOTOBA_DATA_DB_PATH.
	if err := v.BindEnv("data.db_path", EnvPrefix+"_DATA_DB_PATH", EnvPrefix+"_DB"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}
	if opts.DataDir != "" {
		v.Set("data.dir", opts.DataDir)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	cfg.normalize()

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault("data.dir", dataDir)
	v.SetDefault("data.db_path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.anthropic_api_key", "")
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.openai_base_url", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.openrouter_api_key", "")
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("llm.max_attempts", 3)
	v.SetDefault("llm.requests_per_minute", 30)
	v.SetDefault("llm.burst", 3)

	v.SetDefault("drill.word_count", 10)
	v.SetDefault("drill.difficulty", "medium")
	v.SetDefault("drill.category", "hiragana")
}

// normalize fills derived paths and canonicalizes enum values.
func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	c.Drill.Difficulty = strings.ToLower(strings.TrimSpace(c.Drill.Difficulty))
	if c.Data.DBPath == "" && c.Data.Dir != "" {
		c.Data.DBPath = filepath.Join(c.Data.Dir, "kotoba.db")
	}
	if c.Log.File == "" && c.Data.Dir != "" {
		c.Log.File = filepath.Join(c.Data.Dir, "kotoba.log")
	}
}

// loadDotEnv loads each .env file that exists. Existing environment
// variables win.
func loadDotEnv(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		_ = godotenv.Load(p)
	}
}
