package goal

import "github.com/saulo-duarte/goal-pulse/internal/analysis"

// ApplyProgress returns g with its progress set to pct clamped to [0, 100].
// Reaching 100 completes the goal; any other value leaves the status alone,
// so a completed goal never reverts through this path.
func ApplyProgress(g Goal, pct float64) Goal {
	g.ProgressPercentage = analysis.Clamp(pct)
	if g.ProgressPercentage >= 100.0 {
		g.Status = GoalStatusCompleted
	}
	return g
}
