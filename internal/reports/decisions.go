package reports

import (
	"fmt"

	"bizhealth-backend/internal/shared/util"
	"bizhealth-backend/internal/taxonomy"
)

// maxDecisions caps the decisions-required section.
const maxDecisions = 4

// Score boundaries for decision urgency. A category at or above
// decisionSkipThreshold contributes no decision; between the optimize and
// skip thresholds the decision is framed as optimization rather than
// gap-closing. These numbers are product policy and must not drift.
const (
	decisionImmediateBelow     = 40.0
	decisionNearTermBelow      = 60.0
	decisionSkipThreshold      = 70.0
	strategicGrowthFromOverall = 60.0
)

// SynthesizeDecisions derives the prioritized "decisions required" list by
// scanning the primary categories in their configured order. Output preserves
// generation order: category scan first, then the strategic-growth addition.
// It is never empty and never longer than maxDecisions.
func SynthesizeDecisions(analyses map[string]CategoryAnalysis, scores ScoreSet, primary []string) []Decision {
	decisions := make([]Decision, 0, maxDecisions)

	for _, code := range primary {
		analysis := analyses[code]
		if len(analysis.Recommendations) == 0 {
			continue
		}
		score := scores.Category(code)
		if score >= decisionSkipThreshold {
			continue
		}

		top := normalizeRecommendation(analysis.Recommendations[0])
		name := taxonomy.CategoryName(code)

		switch {
		case score < decisionImmediateBelow:
			decisions = append(decisions, Decision{
				Title:       fmt.Sprintf("Act now on %s", name),
				Description: decisionDescription(top, fmt.Sprintf("This area scored %.0f/100 and needs intervention before anything else.", score)),
				Urgency:     UrgencyImmediate,
			})
		case score < decisionNearTermBelow:
			decisions = append(decisions, Decision{
				Title:       fmt.Sprintf("Close the gap in %s", name),
				Description: decisionDescription(top, fmt.Sprintf("A score of %.0f/100 leaves room to lose ground; schedule this within the quarter.", score)),
				Urgency:     UrgencyNearTerm,
			})
		default:
			decisions = append(decisions, Decision{
				Title:       fmt.Sprintf("Optimize %s", name),
				Description: decisionDescription(top, fmt.Sprintf("%s is holding at %.0f/100; the next step is refinement, not repair.", name, score)),
				Urgency:     UrgencyNearTerm,
			})
		}
	}

	if scores.OverallScore() >= strategicGrowthFromOverall {
		decisions = append(decisions, Decision{
			Title:       "Commit to a growth initiative",
			Description: "The overall health score supports expansion. Pick one growth initiative for the next two quarters and resource it properly.",
			Urgency:     UrgencyStrategic,
		})
	}

	if len(decisions) == 0 {
		decisions = append(decisions, Decision{
			Title:       "Review your recommendations",
			Description: "Work through the recommendations in each category with your team and commit to the top three.",
			Urgency:     UrgencyNearTerm,
		})
	}

	if len(decisions) > maxDecisions {
		decisions = decisions[:maxDecisions]
	}
	return decisions
}

func decisionDescription(top Recommendation, context string) string {
	detail := util.NonEmptyStringOr(top.Description, top.Title)
	if detail == "" {
		return context
	}
	return fmt.Sprintf("%s %s", context, detail)
}
