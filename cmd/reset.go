package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kotoba/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	Long: `Delete the display name, session history, review schedule and unlocked
achievements. With --events the LLM request log is cleared too.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		events, _ := cmd.Flags().GetBool("events")

		if !yes {
			fmt.Fprint(cmd.OutOrStdout(), "This deletes all progress. Type 'yes' to continue: ")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			if !scanner.Scan() || strings.TrimSpace(strings.ToLower(scanner.Text())) != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		_, s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		if err := progress.New(s.KV(), nil).Reset(ctx); err != nil {
			return err
		}
		if events {
			if err := s.EventRepo().ClearLLMEvents(ctx); err != nil {
				return fmt.Errorf("clear llm events: %w", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	resetCmd.Flags().Bool("events", false, "Also clear the LLM request log")
}
