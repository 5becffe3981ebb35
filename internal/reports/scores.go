package reports

import "bizhealth-backend/internal/shared/util"

// ScoreSet is the per-category score mapping produced by upstream analytics.
// The mapping may be sparse and values may be non-numeric; reads coerce to a
// conservative zero so a report is always producible from partial data.
type ScoreSet struct {
	Overall    any            `json:"overall"`
	ByCategory map[string]any `json:"byCategory"`
}

// OverallScore returns the coerced overall score, clamped to [0,100].
func (s ScoreSet) OverallScore() float64 {
	return util.ClampScore(util.NumberOr(s.Overall, 0))
}

// Category returns the coerced score for a category, clamped to [0,100].
// Absent or non-numeric entries score zero.
func (s ScoreSet) Category(code string) float64 {
	if s.ByCategory == nil {
		return 0
	}
	return util.ClampScore(util.NumberOr(s.ByCategory[code], 0))
}
