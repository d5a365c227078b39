package goal

import (
	"time"

	util "github.com/saulo-duarte/goal-pulse/internal/utils"
)

type CreateGoalDTO struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	TargetDate  *util.DateTime `json:"target_date"`
}

// UpdateGoalDTO carries field edits. Progress has no field here; it only
// changes through progress updates.
type UpdateGoalDTO struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Category    *string        `json:"category"`
	TargetDate  *util.DateTime `json:"target_date"`
	Status      *GoalStatus    `json:"status"`
}

type DashboardStats struct {
	TotalGoals      int64            `json:"total_goals"`
	CompletedGoals  int64            `json:"completed_goals"`
	ActiveGoals     int64            `json:"active_goals"`
	AverageProgress float64          `json:"average_progress"`
	GoalsByCategory map[string]int64 `json:"goals_by_category"`
}

type DashboardResponse struct {
	Goals       []Goal         `json:"goals"`
	Statistics  DashboardStats `json:"statistics"`
	LastUpdated time.Time      `json:"last_updated"`
}

type DeletedGoalPayload struct {
	GoalID      string `json:"goal_id"`
	DeletedGoal Goal   `json:"deleted_goal"`
}
