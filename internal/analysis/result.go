package analysis

import "time"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Result is the outcome of analyzing one progress update. It is never persisted as is;
// the progress service folds it into a progress entry.
type Result struct {
	ProgressPercentage float64   `json:"progress_percentage"`
	Sentiment          Sentiment `json:"sentiment"`
	Insights           []string  `json:"insights"`
	ProcessedAt        time.Time `json:"processed_at"`

	// Rule names the percentage rule that fired: percent, fraction, tier:<name> or fallback.
	Rule   string         `json:"rule"`
	Scores SentimentScore `json:"sentiment_scores"`
}

// SentimentScore counts how many keywords of each set appear in the text.
type SentimentScore struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// HasInsight reports whether the result carries the given insight.
func (r Result) HasInsight(insight string) bool {
	for _, i := range r.Insights {
		if i == insight {
			return true
		}
	}
	return false
}
