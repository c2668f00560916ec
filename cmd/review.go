package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/srs"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review words that are due (opens the TUI)",
	Long: `Without flags, opens the TUI; pick REVIEW on the home screen.
With --list, prints the words due now and exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, _ := cmd.Flags().GetBool("list")
		if !list {
			return runApp(cmd)
		}
		state, err := loadProgress(cmd)
		if err != nil {
			return err
		}
		now := time.Now()
		sched := srs.NewScheduler(state.Records, nil, nil)
		printDue(cmd.OutOrStdout(), sched.DueItems(now), now)
		return nil
	},
}

func init() {
	reviewCmd.Flags().BoolP("list", "l", false, "List due words instead of opening the TUI")
}

func printDue(w io.Writer, due []srs.Record, now time.Time) {
	if len(due) == 0 {
		fmt.Fprintln(w, "Nothing is due. Come back later!")
		return
	}

	fmt.Fprintf(w, "%-16s  %-14s  %-5s  %-4s  %s\n", "Word", "Romaji", "Level", "Miss", "Overdue")
	fmt.Fprintln(w, strings.Repeat("─", 60))
	for _, r := range due {
		fmt.Fprintf(w, "%-16s  %-14s  %-5d  %-4d  %s\n",
			r.Item.Native, r.Item.Romaji, r.Level, r.TimesIncorrect, formatOverdue(r.Overdue(now)))
	}
	fmt.Fprintf(w, "\n%d due\n", len(due))
}

func formatOverdue(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
