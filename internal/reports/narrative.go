package reports

import (
	"fmt"

	"bizhealth-backend/internal/llm"
	"bizhealth-backend/internal/shared/util"
	"bizhealth-backend/internal/taxonomy"
)

// narrativeMaxParagraphs bounds the generated executive summary.
const narrativeMaxParagraphs = 3

// narrativeTrim limits per-category strengths and gaps in the prompt context.
const narrativeTrim = 2

// buildNarrativeInput assembles the structured prompt context for the one
// narrative call: primary-category scores with trimmed strengths and gaps,
// plus the already-synthesized immediate actions.
func buildNarrativeInput(profile BusinessProfile, scores ScoreSet, analyses map[string]CategoryAnalysis, primary []string, decisions []Decision, tone llm.Tone) llm.NarrativeInput {
	categories := make([]llm.CategoryContext, 0, len(primary))
	for _, code := range primary {
		findings := SelectFindings(analyses[code])
		categories = append(categories, llm.CategoryContext{
			Code:      code,
			Name:      taxonomy.CategoryName(code),
			Score:     scores.Category(code),
			Strengths: firstStrings(findings.Strengths, narrativeTrim),
			Gaps:      firstStrings(findings.Weaknesses, narrativeTrim),
		})
	}

	var critical []string
	for _, d := range decisions {
		if d.Urgency == UrgencyImmediate {
			critical = append(critical, d.Title)
		}
	}

	return llm.NarrativeInput{
		CompanyName:     companyName(profile),
		Audience:        OwnerAudienceLabel,
		Tone:            tone,
		MaxParagraphs:   narrativeMaxParagraphs,
		OverallScore:    scores.OverallScore(),
		Categories:      categories,
		CriticalActions: critical,
	}
}

// fallbackNarrative is the deterministic substitute used when the narrative
// provider fails, times out, or is not configured. It is built purely from
// already-known scores and the company name.
func fallbackNarrative(profile BusinessProfile, scores ScoreSet, primary []string) []string {
	name := companyName(profile)
	overall := scores.OverallScore()
	band := ClassifyScore(overall)

	first := fmt.Sprintf(
		"%s scored %.0f out of 100 overall, which places the business in the %s band.",
		name, overall, band.Label,
	)

	if len(primary) == 0 {
		return []string{first, "The sections that follow break down each core area of the business with specific, prioritized recommendations."}
	}

	strongest, weakest := primary[0], primary[0]
	for _, code := range primary[1:] {
		if scores.Category(code) > scores.Category(strongest) {
			strongest = code
		}
		if scores.Category(code) < scores.Category(weakest) {
			weakest = code
		}
	}

	second := fmt.Sprintf(
		"Its strongest core area is %s at %.0f, while %s at %.0f needs the most attention. "+
			"The sections that follow break down each core area with specific, prioritized recommendations.",
		taxonomy.CategoryName(strongest), scores.Category(strongest),
		taxonomy.CategoryName(weakest), scores.Category(weakest),
	)

	return []string{first, second}
}

func companyName(profile BusinessProfile) string {
	return util.NonEmptyStringOr(profile.CompanyName, defaultCompanyName)
}
