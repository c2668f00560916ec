package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/achievements"
	"github.com/abhisek/kotoba/internal/app"
	"github.com/abhisek/kotoba/internal/config"
	"github.com/abhisek/kotoba/internal/drill"
	"github.com/abhisek/kotoba/internal/encourage"
	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/llm"
	"github.com/abhisek/kotoba/internal/logging"
	"github.com/abhisek/kotoba/internal/progress"
	"github.com/abhisek/kotoba/internal/scoring"
	"github.com/abhisek/kotoba/internal/srs"
	"github.com/abhisek/kotoba/internal/store"
	"github.com/abhisek/kotoba/internal/wordgen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, logFile, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer logFile.Close()

	st, err := store.OpenWithLogger(cfg.Data.DBPath, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo := progress.New(st.KV(), logger)
	state, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	scheduler := srs.NewScheduler(state.Records, repo, logger)
	hist := history.New(state.History, repo, logger)
	evaluator := achievements.NewEvaluator(nil, state.Unlocked, repo, logger)

	deps := app.Deps{
		Scheduler:    scheduler,
		History:      hist,
		Achievements: evaluator,
		Names:        repo,
		Learner:      state.DisplayName,
		Defaults:     drillDefaults(cfg, logger),
		Logger:       logger,
	}

	provider, online := buildProvider(ctx, cfg, st.EventRepo(), logger)
	if online {
		deps.Generator = wordgen.New(provider, wordgen.DefaultConfig(), logger)
		svc := encourage.NewService(provider, encourage.DefaultConfig(), logger)
		defer svc.Close()
		deps.Encourager = svc
		deps.Online = true
	} else {
		deps.Generator = wordgen.NewOffline(wordgen.DefaultConfig(), nil)
	}

	deps.Orchestrator = drill.New(drill.Deps{
		Generator:    deps.Generator,
		Scheduler:    scheduler,
		History:      hist,
		Achievements: evaluator,
		Logger:       logger,
	})

	logger.Info("starting kotoba",
		"db", cfg.Data.DBPath,
		"online", online,
		"records", scheduler.Len(),
		"sessions", hist.Len())

	return app.Run(deps)
}

// buildProvider creates the configured LLM provider. ok is false when the
// offline word list should be used instead.
func buildProvider(ctx context.Context, cfg *config.Config, events llm.EventSink, logger *slog.Logger) (llm.Provider, bool) {
	llmCfg, ok := cfg.LLMProvider()
	if !ok {
		logger.Info("no LLM provider configured, using offline word list")
		return nil, false
	}
	provider, err := llm.NewProvider(ctx, llmCfg, events, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Using the built-in offline word list.")
		logger.Warn("init llm provider", "provider", llmCfg.Provider, "error", err)
		return nil, false
	}
	return provider, true
}

// drillDefaults maps the configured drill defaults onto a drill.Config.
// Invalid values fall back to the first category and medium difficulty.
func drillDefaults(cfg *config.Config, logger *slog.Logger) drill.Config {
	out := drill.Config{
		WordCount:  cfg.Drill.WordCount,
		Difficulty: scoring.DifficultyMedium,
	}
	if d, err := scoring.ParseDifficulty(cfg.Drill.Difficulty); err == nil {
		out.Difficulty = d
	} else {
		logger.Warn("invalid default difficulty", "error", err)
	}
	if cat, err := kana.CategoryByID(cfg.Drill.Category); err == nil {
		out.Category = cat
	} else {
		logger.Warn("invalid default category", "error", err)
		out.Category = kana.Categories()[0]
	}
	return out
}
