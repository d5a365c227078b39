package analysis

// Progress tiers, checked high first. The first tier with any hit decides the range.
var progressTiers = []tier{
	{
		name:     "high",
		keywords: []string{"completed", "finished", "done", "achieved", "accomplished", "success"},
		min:      80,
		max:      100,
	},
	{
		name:     "medium",
		keywords: []string{"progress", "working", "started", "began", "improving", "advancing"},
		min:      40,
		max:      79,
	},
	{
		name:     "low",
		keywords: []string{"struggling", "difficult", "challenging", "stuck", "slow", "behind"},
		min:      0,
		max:      39,
	},
}

const (
	fallbackMin = 5
	fallbackMax = 15
)

var (
	positiveWords = []string{"great", "excellent", "amazing", "fantastic", "good", "happy", "excited"}
	negativeWords = []string{"bad", "terrible", "awful", "frustrated", "disappointed", "difficult"}
	neutralWords  = []string{"okay", "fine", "normal", "regular", "standard"}
)

// Insight messages. Feedback generation keys off the first two.
const (
	InsightChallenges = "Facing challenges that may need attention"
	InsightMilestone  = "Reached an important milestone"
	InsightStrategy   = "Developing new strategies or approaches"
	InsightTime       = "Time management considerations mentioned"
)

var insightChecks = []insightCheck{
	{keywords: []string{"challenge", "difficult", "problem"}, insight: InsightChallenges},
	{keywords: []string{"milestone", "achievement", "completed"}, insight: InsightMilestone},
	{keywords: []string{"plan", "strategy", "approach"}, insight: InsightStrategy},
	{keywords: []string{"time", "schedule", "deadline"}, insight: InsightTime},
}

type tier struct {
	name     string
	keywords []string
	min      float64
	max      float64
}

type insightCheck struct {
	keywords []string
	insight  string
}
