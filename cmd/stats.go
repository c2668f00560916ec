package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/analytics"
	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/logging"
	"github.com/abhisek/kotoba/internal/progress"
	"github.com/abhisek/kotoba/internal/srs"
)

const (
	statsWidth  = 56
	topWeakness = 5
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := loadProgress(cmd)
		if err != nil {
			return err
		}
		printStats(cmd.OutOrStdout(), state, time.Now())
		return nil
	},
}

// loadProgress reads the persisted slots read-only. Warnings about corrupt
// slots go to stderr.
func loadProgress(cmd *cobra.Command) (progress.State, error) {
	cfg, s, err := openStore(cmd)
	if err != nil {
		return progress.State{}, err
	}
	defer s.Close()

	logger := logging.New(os.Stderr, cfg.Log.Level)
	state, err := progress.New(s.KV(), logger).Load(context.Background())
	if err != nil {
		return progress.State{}, fmt.Errorf("load progress: %w", err)
	}
	return state, nil
}

func printStats(w io.Writer, state progress.State, now time.Time) {
	sep := strings.Repeat("─", statsWidth)

	m := analytics.Mastery(state.Records, now)
	fmt.Fprintln(w, "Mastery")
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "%-12s %6d\n", "Words", m.Total)
	fmt.Fprintf(w, "%-12s %6d\n", "Learned", m.Learned)
	fmt.Fprintf(w, "%-12s %6d\n", "Strong", m.Strong)
	fmt.Fprintf(w, "%-12s %6d\n", "Mastered", m.Mastered)
	fmt.Fprintf(w, "%-12s %6d\n", "Due now", m.Due)
	if m.Total > 0 {
		fmt.Fprintln(w)
		for lvl := 0; lvl <= srs.MaxLevel; lvl++ {
			n := m.ByLevel[lvl]
			bar := strings.Repeat("█", n*30/m.Total)
			fmt.Fprintf(w, "L%d %-30s %4d\n", lvl, bar, n)
		}
	}

	fmt.Fprintln(w)
	sum := analytics.Summarize(state.History)
	fmt.Fprintln(w, "Sessions")
	fmt.Fprintln(w, sep)
	if sum.Sessions == 0 {
		fmt.Fprintln(w, "No sessions yet.")
	} else {
		fmt.Fprintf(w, "%-12s %6d\n", "Played", sum.Sessions)
		fmt.Fprintf(w, "%-12s %6d/%d\n", "Answers", sum.Correct, sum.Answered)
		fmt.Fprintf(w, "%-12s %5.0f%%\n", "Accuracy", sum.AverageAccuracy)
		fmt.Fprintf(w, "%-12s %6d\n", "Best score", sum.BestScore)
		fmt.Fprintf(w, "%-12s %6d\n", "Best streak", sum.BestStreak)
	}

	report := analytics.Weaknesses(state.History, kana.GroupOf)
	if len(report.Items) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Weak spots")
	fmt.Fprintln(w, sep)
	for i, ic := range report.Items {
		if i == topWeakness {
			break
		}
		fmt.Fprintf(w, "%-16s %-14s %3d missed\n", ic.Item.Native, ic.Item.Romaji, ic.Count)
	}
	if len(report.Chars) > 0 {
		var chars []string
		for i, cc := range report.Chars {
			if i == topWeakness {
				break
			}
			chars = append(chars, fmt.Sprintf("%c×%d", cc.Char, cc.Count))
		}
		fmt.Fprintf(w, "\nCharacters: %s\n", strings.Join(chars, "  "))
	}
	if len(report.Groups) > 0 {
		var groups []string
		for i, gc := range report.Groups {
			if i == topWeakness {
				break
			}
			groups = append(groups, fmt.Sprintf("%s×%d", kana.GroupName(gc.Group), gc.Count))
		}
		fmt.Fprintf(w, "Rows:       %s\n", strings.Join(groups, "  "))
	}
}
