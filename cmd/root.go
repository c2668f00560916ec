package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/config"
	"github.com/abhisek/kotoba/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kotoba",
	Short: "Kana vocabulary drills in the terminal",
	Long: `Kotoba — a terminal drill for reading Japanese kana.

Words are generated by an LLM (or a built-in offline list), answered in
romaji and scheduled for review with a spaced-repetition ladder.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KOTOBA_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a config.yaml file")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for the database, log and config (overrides KOTOBA_DATA_DIR)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration honoring the persistent flags. --db wins
// over every other database path source.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	dataDir, _ := cmd.Flags().GetString("data-dir")

	cfg, err := config.Load(config.Options{ConfigFile: file, DataDir: dataDir})
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.Data.DBPath = p
	}
	if err := store.EnsureDir(cfg.Data.DBPath); err != nil {
		return nil, fmt.Errorf("prepare database dir: %w", err)
	}
	return cfg, nil
}

// openStore loads configuration and opens the database it points at.
func openStore(cmd *cobra.Command) (*config.Config, *store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(cfg.Data.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, s, nil
}
