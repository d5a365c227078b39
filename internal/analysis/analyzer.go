// Package analysis turns a free-text progress update into a progress estimate,
// a sentiment and a list of insights using fixed keyword rules.
//
// The keyword tiers and the fallback draw their percentage uniformly at random
// from a range, so two identical updates can score differently. The randomness
// comes from a Source so callers and tests can pin it.
package analysis

import (
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	percentPattern  = regexp.MustCompile(`(\d+)%`)
	fractionPattern = regexp.MustCompile(`(\d+)/(\d+)`)
)

// Source yields uniformly distributed floats in [0, 1).
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Analyzer is safe for concurrent use as long as its Source is.
type Analyzer struct {
	source Source
	now    func() time.Time
}

type Option func(*Analyzer)

func WithSource(s Source) Option {
	return func(a *Analyzer) { a.source = s }
}

func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		source: globalSource{},
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze never fails. goalTitle is accepted for parity with callers that have it
// but the current rules only look at the update text.
func (a *Analyzer) Analyze(text, goalTitle string) Result {
	lower := strings.ToLower(text)

	pct, rule := a.estimateProgress(lower)
	sentiment, scores := classifySentiment(lower)

	return Result{
		ProgressPercentage: pct,
		Sentiment:          sentiment,
		Insights:           extractInsights(lower),
		ProcessedAt:        a.now(),
		Rule:               rule,
		Scores:             scores,
	}
}

func (a *Analyzer) estimateProgress(text string) (float64, string) {
	if m := percentPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return Clamp(v), "percent"
		}
	}

	if m := fractionPattern.FindStringSubmatch(text); m != nil {
		num, errNum := strconv.ParseFloat(m[1], 64)
		den, errDen := strconv.ParseFloat(m[2], 64)
		if errNum == nil && errDen == nil && den > 0 {
			if v := 100 * num / den; !math.IsNaN(v) {
				return Clamp(v), "fraction"
			}
		}
	}

	for _, t := range progressTiers {
		if containsAny(text, t.keywords) {
			return a.uniform(t.min, t.max), "tier:" + t.name
		}
	}

	return a.uniform(fallbackMin, fallbackMax), "fallback"
}

func (a *Analyzer) uniform(lo, hi float64) float64 {
	return Clamp(lo + a.source.Float64()*(hi-lo))
}

func classifySentiment(text string) (Sentiment, SentimentScore) {
	scores := SentimentScore{
		Positive: countPresent(text, positiveWords),
		Negative: countPresent(text, negativeWords),
		Neutral:  countPresent(text, neutralWords),
	}

	switch {
	case scores.Positive > scores.Negative:
		return SentimentPositive, scores
	case scores.Negative > scores.Positive:
		return SentimentNegative, scores
	default:
		return SentimentNeutral, scores
	}
}

func extractInsights(text string) []string {
	insights := []string{}
	for _, check := range insightChecks {
		if containsAny(text, check.keywords) {
			insights = append(insights, check.insight)
		}
	}
	return insights
}

// Clamp restricts v to [0, 100].
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func countPresent(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}
