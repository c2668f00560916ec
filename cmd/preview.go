package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/config"
	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/logging"
	"github.com/abhisek/kotoba/internal/scoring"
	"github.com/abhisek/kotoba/internal/wordgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated words for a category (no database)",
	Long: `Generate and interactively answer words for a category.

This is a stateless developer tool — no database, no review schedule, no events.
Useful for evaluating word quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("category", "hiragana", "Category ID (hiragana, katakana, vocabulary)")
	previewCmd.Flags().String("difficulty", "easy", "Difficulty: easy, medium or hard")
	previewCmd.Flags().Int("count", 5, "Number of words to generate")
	previewCmd.Flags().String("topic", "", "Optional topic hint, e.g. food")
}

func runPreview(cmd *cobra.Command, args []string) error {
	catVal, _ := cmd.Flags().GetString("category")
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	topic, _ := cmd.Flags().GetString("topic")

	cat, err := kana.CategoryByID(catVal)
	if err != nil {
		return err
	}
	diff, err := scoring.ParseDifficulty(diffVal)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", count)
	}

	file, _ := cmd.Flags().GetString("config")
	dataDir, _ := cmd.Flags().GetString("data-dir")
	cfg, err := config.Load(config.Options{ConfigFile: file, DataDir: dataDir})
	if err != nil {
		return err
	}

	// No event sink, so nothing is logged to the database.
	ctx := context.Background()
	logger := logging.New(os.Stderr, "warn")
	var gen wordgen.Generator = wordgen.NewOffline(wordgen.DefaultConfig(), nil)
	source := "offline word list"
	if provider, ok := buildProvider(ctx, cfg, nil, logger); ok {
		gen = wordgen.New(provider, wordgen.DefaultConfig(), logger)
		source = provider.ModelID()
	}

	fmt.Printf("Category: %s — %s (%s)\n", cat.ID, cat.Name, diff.DisplayName())
	fmt.Printf("Generating %d words with %s...\n\n", count, source)

	items, err := gen.Generate(ctx, wordgen.Request{
		Category:   cat,
		Charset:    kana.CharsetFor(cat),
		Difficulty: diff,
		Topic:      strings.TrimSpace(topic),
		Count:      count,
	})
	if err != nil {
		return fmt.Errorf("generate words: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	var correct, asked int

	for i, it := range items {
		fmt.Printf("── Word %d/%d ──\n", i+1, len(items))
		fmt.Println(it.Native)
		if diff == scoring.DifficultyEasy && it.Meaning != "" {
			fmt.Printf("(%s)\n", it.Meaning)
		}

		fmt.Print("\nRomaji: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Println("(skipped)")
			fmt.Println()
			continue
		}

		asked++
		if it.Matches(answer) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Not quite.\033[0m It reads %s.\n", it.Romaji)
		}
		if it.Meaning != "" && diff != scoring.DifficultyEasy {
			fmt.Printf("Meaning: %s\n", it.Meaning)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, asked)
	return nil
}
