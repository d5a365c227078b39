package progress

import (
	"strings"

	"github.com/saulo-duarte/goal-pulse/internal/analysis"
	"github.com/saulo-duarte/goal-pulse/internal/goal"
)

// GenerateFeedback builds a coaching message for an update. The goal is the snapshot
// taken before the update was applied.
func GenerateFeedback(g goal.Goal, result analysis.Result) string {
	var parts []string

	switch pct := result.ProgressPercentage; {
	case pct >= 80:
		parts = append(parts, "Excellent progress! You're doing great.")
	case pct >= 50:
		parts = append(parts, "Good momentum! Keep up the steady progress.")
	case pct >= 20:
		parts = append(parts, "You're making progress. Consider what's working well.")
	default:
		parts = append(parts, "Every step counts. What small action can you take today?")
	}

	switch result.Sentiment {
	case analysis.SentimentPositive:
		parts = append(parts, "Your positive attitude is a great asset for achieving this goal.")
	case analysis.SentimentNegative:
		parts = append(parts, "Challenges are part of the journey. Consider breaking this into smaller steps.")
	}

	if result.HasInsight(analysis.InsightChallenges) {
		parts = append(parts, "When facing obstacles, try the 5-minute rule: commit to just 5 minutes of work.")
	}
	if result.HasInsight(analysis.InsightMilestone) {
		parts = append(parts, "Celebrate this achievement! Momentum builds on success.")
	}

	return strings.Join(parts, " ")
}
