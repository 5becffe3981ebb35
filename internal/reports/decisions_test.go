package reports

import (
	"strings"
	"testing"
)

func analysesWithRecommendations(codes ...string) map[string]CategoryAnalysis {
	out := make(map[string]CategoryAnalysis, len(codes))
	for _, code := range codes {
		out[code] = CategoryAnalysis{
			Recommendations: []Recommendation{
				{Title: "top recommendation for " + code, Description: "do the work"},
			},
		}
	}
	return out
}

func TestSynthesizeDecisionsFallbackWhenAllHealthy(t *testing.T) {
	primary := []string{"STR", "FIN"}
	analyses := analysesWithRecommendations("STR", "FIN")
	scores := ScoreSet{
		Overall:    55,
		ByCategory: map[string]any{"STR": 82.0, "FIN": 75.0},
	}

	decisions := SynthesizeDecisions(analyses, scores, primary)
	if len(decisions) != 1 {
		t.Fatalf("expected exactly the fallback decision, got %d", len(decisions))
	}
	if decisions[0].Urgency != UrgencyNearTerm {
		t.Fatalf("fallback urgency = %q", decisions[0].Urgency)
	}
}

func TestSynthesizeDecisionsImmediate(t *testing.T) {
	primary := []string{"FIN"}
	analyses := analysesWithRecommendations("FIN")
	scores := ScoreSet{
		Overall:    35,
		ByCategory: map[string]any{"FIN": 35.0},
	}

	decisions := SynthesizeDecisions(analyses, scores, primary)
	if len(decisions) != 1 {
		t.Fatalf("expected 1 decision, got %d", len(decisions))
	}
	if decisions[0].Urgency != UrgencyImmediate {
		t.Fatalf("urgency = %q, want immediate", decisions[0].Urgency)
	}
}

func TestSynthesizeDecisionsScenario(t *testing.T) {
	// FIN 35, STR 75, LDG 68, RMS 55, overall 58.
	primary := []string{"STR", "FIN", "LDG", "RMS"}
	analyses := analysesWithRecommendations("STR", "FIN", "LDG", "RMS")
	scores := ScoreSet{
		Overall: 58,
		ByCategory: map[string]any{
			"FIN": 35.0,
			"STR": 75.0,
			"LDG": 68.0,
			"RMS": 55.0,
		},
	}

	decisions := SynthesizeDecisions(analyses, scores, primary)

	if len(decisions) != 3 {
		t.Fatalf("expected 3 decisions (FIN, LDG, RMS), got %d: %+v", len(decisions), decisions)
	}
	// Generation order follows the primary scan: FIN (immediate), LDG
	// (optimize), RMS (near-term). STR at 75 contributes nothing, and
	// overall 58 adds no strategic-growth decision.
	if decisions[0].Urgency != UrgencyImmediate || !strings.Contains(decisions[0].Title, "Financials") {
		t.Fatalf("first decision should be immediate FIN, got %+v", decisions[0])
	}
	if decisions[1].Urgency != UrgencyNearTerm || !strings.Contains(decisions[1].Title, "Leadership") {
		t.Fatalf("second decision should be near-term LDG, got %+v", decisions[1])
	}
	if decisions[2].Urgency != UrgencyNearTerm || !strings.Contains(decisions[2].Title, "Risk") {
		t.Fatalf("third decision should be near-term RMS, got %+v", decisions[2])
	}
	for _, d := range decisions {
		if strings.Contains(d.Title, "Strategy") {
			t.Fatalf("STR at 75 must not contribute a decision: %+v", d)
		}
		if d.Urgency == UrgencyStrategic {
			t.Fatalf("overall 58 must not add a strategic decision: %+v", d)
		}
	}
}

func TestSynthesizeDecisionsOptimizationFraming(t *testing.T) {
	primary := []string{"LDG"}
	analyses := analysesWithRecommendations("LDG")
	scores := ScoreSet{
		Overall:    50,
		ByCategory: map[string]any{"LDG": 65.0},
	}

	decisions := SynthesizeDecisions(analyses, scores, primary)
	if len(decisions) != 1 {
		t.Fatalf("expected 1 decision, got %d", len(decisions))
	}
	if decisions[0].Urgency != UrgencyNearTerm {
		t.Fatalf("urgency = %q, want near-term", decisions[0].Urgency)
	}
	if !strings.Contains(decisions[0].Title, "Optimize") {
		t.Fatalf("[60,70) decision should be framed as optimization, got %q", decisions[0].Title)
	}
}

func TestSynthesizeDecisionsStrategicGrowth(t *testing.T) {
	primary := []string{"STR"}
	analyses := analysesWithRecommendations("STR")
	scores := ScoreSet{
		Overall:    72,
		ByCategory: map[string]any{"STR": 85.0},
	}

	decisions := SynthesizeDecisions(analyses, scores, primary)
	if len(decisions) != 1 {
		t.Fatalf("expected only the strategic decision, got %d", len(decisions))
	}
	if decisions[0].Urgency != UrgencyStrategic {
		t.Fatalf("urgency = %q, want strategic", decisions[0].Urgency)
	}
}

func TestSynthesizeDecisionsCappedAtFour(t *testing.T) {
	primary := []string{"STR", "FIN", "SLS", "OPS", "RMS"}
	analyses := analysesWithRecommendations(primary...)
	scores := ScoreSet{
		Overall: 62,
		ByCategory: map[string]any{
			"STR": 30.0, "FIN": 30.0, "SLS": 30.0, "OPS": 30.0, "RMS": 30.0,
		},
	}

	decisions := SynthesizeDecisions(analyses, scores, primary)
	if len(decisions) != 4 {
		t.Fatalf("expected cap of 4, got %d", len(decisions))
	}
	// Truncation preserves generation order: the category scan fills the
	// list before the strategic addition is considered.
	for _, d := range decisions {
		if d.Urgency != UrgencyImmediate {
			t.Fatalf("expected the first four scan decisions, got %+v", d)
		}
	}
}

func TestSynthesizeDecisionsSkipsWithoutRecommendations(t *testing.T) {
	primary := []string{"FIN"}
	scores := ScoreSet{
		Overall:    30,
		ByCategory: map[string]any{"FIN": 20.0},
	}

	decisions := SynthesizeDecisions(map[string]CategoryAnalysis{"FIN": {}}, scores, primary)
	if len(decisions) != 1 {
		t.Fatalf("expected fallback only, got %d", len(decisions))
	}
	if decisions[0].Urgency != UrgencyNearTerm {
		t.Fatalf("expected generic fallback, got %+v", decisions[0])
	}
}
