package main

import (
	"encoding/json"
	"strings"

	"github.com/saulo-duarte/goal-pulse/internal/analysis"
	"github.com/saulo-duarte/goal-pulse/internal/goal"
	"github.com/saulo-duarte/goal-pulse/internal/progress"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "analyze <text>",
		Short: "Analyze a progress update without touching the database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			result := analysis.NewAnalyzer().Analyze(text, title)

			out := struct {
				Analysis analysis.Result `json:"analysis"`
				Feedback string          `json:"feedback"`
			}{
				Analysis: result,
				Feedback: progress.GenerateFeedback(goal.Goal{Title: title}, result),
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "goal title the update belongs to")
	return cmd
}
