// Package config loads application configuration from defaults, an
// optional YAML file in the data directory, optional .env files and
// KOTOBA_* environment variables, and validates the result.
//
// Example config.yaml:
//
//	log:
//	  level: debug
//	llm:
//	  provider: gemini
//	  gemini_api_key: "..."
//	  requests_per_minute: 20
//	drill:
//	  word_count: 15
//	  difficulty: hard
//	  category: katakana
package config
