package reports

import "bizhealth-backend/internal/shared/util"

// maxFindings bounds every findings list in a deep-dive section.
const maxFindings = 3

const (
	defaultSummary        = "Analysis for this area is still being prepared."
	defaultPriority       = "medium"
	defaultTimeframe      = "30-day"
	defaultRecommendation = "Review this area with your team and agree the first improvement to make."
)

// Findings is the bounded, display-ready subset of a category analysis.
type Findings struct {
	Summary         string
	Strengths       []string
	Weaknesses      []string
	Recommendations []Recommendation
	Metrics         []KeyMetric
}

// SelectFindings trims a category analysis to at most three entries per list,
// preserving upstream order. Strengths, weaknesses, and metrics may come back
// empty; the summary and recommendations always carry a usable fallback so
// their sections never render broken.
func SelectFindings(a CategoryAnalysis) Findings {
	f := Findings{
		Summary:         util.NonEmptyStringOr(a.Summary, defaultSummary),
		Strengths:       firstStrings(a.Strengths, maxFindings),
		Weaknesses:      firstStrings(a.Weaknesses, maxFindings),
		Recommendations: firstRecommendations(a.Recommendations, maxFindings),
		Metrics:         firstMetrics(a.KeyMetrics, maxFindings),
	}
	if len(f.Recommendations) == 0 {
		f.Recommendations = []Recommendation{{
			Title:     defaultRecommendation,
			Priority:  defaultPriority,
			Timeframe: defaultTimeframe,
		}}
	}
	return f
}

func firstStrings(items []string, limit int) []string {
	out := make([]string, 0, limit)
	for _, item := range items {
		trimmed := util.NonEmptyStringOr(item, "")
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
		if len(out) == limit {
			break
		}
	}
	return out
}

func firstRecommendations(items []Recommendation, limit int) []Recommendation {
	out := make([]Recommendation, 0, limit)
	for _, item := range items {
		if util.NonEmptyStringOr(item.Title, "") == "" {
			continue
		}
		out = append(out, normalizeRecommendation(item))
		if len(out) == limit {
			break
		}
	}
	return out
}

func normalizeRecommendation(r Recommendation) Recommendation {
	r.Title = util.NonEmptyStringOr(r.Title, "")
	r.Priority = normalizePriority(r.Priority)
	r.Timeframe = util.NonEmptyStringOr(r.Timeframe, defaultTimeframe)
	return r
}

func normalizePriority(value string) string {
	switch trimmed := util.NonEmptyStringOr(value, ""); trimmed {
	case "high", "medium", "low":
		return trimmed
	default:
		return defaultPriority
	}
}

func firstMetrics(items []KeyMetric, limit int) []KeyMetric {
	out := make([]KeyMetric, 0, limit)
	for _, item := range items {
		if util.NonEmptyStringOr(item.Name, "") == "" {
			continue
		}
		item.Status = normalizeMetricStatus(item.Status)
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}

func normalizeMetricStatus(value string) string {
	switch trimmed := util.NonEmptyStringOr(value, ""); trimmed {
	case "good", "warning", "critical":
		return trimmed
	default:
		return "warning"
	}
}
