package main

import (
	"context"
	"fmt"
	"time"

	"github.com/saulo-duarte/goal-pulse/internal/analysis"
	"github.com/saulo-duarte/goal-pulse/internal/config"
	"github.com/saulo-duarte/goal-pulse/internal/goal"
	"github.com/spf13/cobra"
)

type sampleGoal struct {
	title       string
	description string
	category    string
	targetDays  int
	progress    float64
	update      string
	updateDays  int
}

var sampleGoals = []sampleGoal{
	{
		title:       "Learn Spanish Fluently",
		description: "Achieve conversational fluency in Spanish by practicing daily and completing an online course.",
		category:    "Education",
		targetDays:  365,
		progress:    25,
		update:      "Completed lesson 5 today! Learning about past tense verbs. Feeling confident about my progress so far.",
		updateDays:  2,
	},
	{
		title:       "Run a Half Marathon",
		description: "Train consistently to complete a 21K run in under 2 hours.",
		category:    "Health & Fitness",
		targetDays:  180,
		progress:    45,
		update:      "Ran 8km today in 45 minutes. My endurance is definitely improving week by week!",
		updateDays:  1,
	},
	{
		title:       "Launch My Side Project",
		description: "Build and deploy a web application that solves a real problem for users.",
		category:    "Career",
		targetDays:  120,
		progress:    60,
		update:      "Finished the user authentication system. About 60% done with the core features now.",
		updateDays:  3,
	},
	{
		title:       "Read 24 Books This Year",
		description: "Read at least 2 books per month across different genres to expand knowledge.",
		category:    "Personal",
		targetDays:  300,
		progress:    33,
		update:      "Just finished 'Atomic Habits' - amazing book! That's 8 books down, 16 to go.",
		updateDays:  5,
	},
	{
		title:       "Save $10,000 Emergency Fund",
		description: "Build a solid emergency fund by saving consistently each month.",
		category:    "Financial",
		targetDays:  240,
		progress:    70,
		update:      "Saved another $500 this month. I'm at $7,000 now - so close to my goal!",
		updateDays:  7,
	},
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample goals and progress updates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := config.Connect(ctx, settings.DatabaseDriver, settings.DatabaseDSN); err != nil {
				return err
			}

			repo := goal.NewRepository(config.DB)
			if err := repo.AutoMigrate(); err != nil {
				return fmt.Errorf("migrate schema: %w", err)
			}

			n, err := seed(ctx, repo, analysis.NewAnalyzer(), time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d goals with progress updates\n", n)
			return nil
		},
	}
}

// seed writes the sample goals in one transaction. Each goal gets its starting progress
// and one backdated update.
func seed(ctx context.Context, repo goal.Repository, analyzer *analysis.Analyzer, now time.Time) (int, error) {
	err := repo.Transaction(ctx, func(tx goal.Repository) error {
		for _, s := range sampleGoals {
			target := now.AddDate(0, 0, s.targetDays)
			g := goal.Goal{
				Title:       s.title,
				Description: s.description,
				Category:    s.category,
				TargetDate:  &target,
			}
			if err := tx.Create(ctx, &g); err != nil {
				return fmt.Errorf("create %q: %w", s.title, err)
			}

			g = goal.ApplyProgress(g, s.progress)
			if err := tx.Save(ctx, &g); err != nil {
				return fmt.Errorf("set progress for %q: %w", s.title, err)
			}

			result := analyzer.Analyze(s.update, s.title)
			entry := goal.ProgressEntry{
				GoalID:             g.ID,
				Text:               s.update,
				ProgressPercentage: result.ProgressPercentage,
				Sentiment:          string(result.Sentiment),
				KeyInsights:        result.Insights,
				CreatedAt:          now.AddDate(0, 0, -s.updateDays),
			}
			if err := tx.CreateProgressEntry(ctx, &entry); err != nil {
				return fmt.Errorf("add update for %q: %w", s.title, err)
			}

			config.WithContext(ctx).WithField("goal_id", g.ID).Infof("Created goal: %s", s.title)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(sampleGoals), nil
}
