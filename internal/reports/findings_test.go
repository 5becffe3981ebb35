package reports

import "testing"

func TestSelectFindingsTruncatesToThree(t *testing.T) {
	analysis := CategoryAnalysis{
		Summary:    "Solid footing with a few gaps.",
		Strengths:  []string{"a", "b", "c", "d", "e"},
		Weaknesses: []string{"w1", "w2", "w3", "w4"},
		Recommendations: []Recommendation{
			{Title: "r1", Priority: "high", Timeframe: "30-day"},
			{Title: "r2", Priority: "medium", Timeframe: "60-day"},
			{Title: "r3", Priority: "low", Timeframe: "90-day"},
			{Title: "r4", Priority: "high", Timeframe: "30-day"},
		},
		KeyMetrics: []KeyMetric{
			{Name: "m1", Value: "1", Status: "good"},
			{Name: "m2", Value: "2", Status: "warning"},
			{Name: "m3", Value: "3", Status: "critical"},
			{Name: "m4", Value: "4", Status: "good"},
		},
	}

	f := SelectFindings(analysis)
	if len(f.Strengths) != 3 || len(f.Weaknesses) != 3 || len(f.Recommendations) != 3 || len(f.Metrics) != 3 {
		t.Fatalf("expected 3 of each, got %d/%d/%d/%d",
			len(f.Strengths), len(f.Weaknesses), len(f.Recommendations), len(f.Metrics))
	}
	if f.Strengths[0] != "a" || f.Strengths[2] != "c" {
		t.Fatalf("expected first-N order preserved, got %v", f.Strengths)
	}
	if f.Recommendations[0].Title != "r1" {
		t.Fatalf("expected top recommendation first, got %q", f.Recommendations[0].Title)
	}
}

func TestSelectFindingsEmptyAnalysis(t *testing.T) {
	f := SelectFindings(CategoryAnalysis{})

	if f.Strengths == nil || len(f.Strengths) != 0 {
		t.Fatalf("expected empty non-nil strengths, got %v", f.Strengths)
	}
	if f.Weaknesses == nil || len(f.Weaknesses) != 0 {
		t.Fatalf("expected empty non-nil weaknesses, got %v", f.Weaknesses)
	}
	if f.Metrics == nil || len(f.Metrics) != 0 {
		t.Fatalf("expected empty non-nil metrics, got %v", f.Metrics)
	}
	if f.Summary == "" {
		t.Fatalf("expected summary fallback")
	}
	if len(f.Recommendations) != 1 {
		t.Fatalf("expected fallback recommendation, got %d", len(f.Recommendations))
	}
	rec := f.Recommendations[0]
	if rec.Priority != "medium" || rec.Timeframe != "30-day" {
		t.Fatalf("fallback defaults wrong: %+v", rec)
	}
}

func TestSelectFindingsDefaultsPriorityAndTimeframe(t *testing.T) {
	f := SelectFindings(CategoryAnalysis{
		Recommendations: []Recommendation{
			{Title: "document the sales process"},
			{Title: "hire a bookkeeper", Priority: "urgent", Timeframe: ""},
		},
	})
	if len(f.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(f.Recommendations))
	}
	for _, rec := range f.Recommendations {
		if rec.Priority != "medium" {
			t.Errorf("priority = %q, want medium", rec.Priority)
		}
		if rec.Timeframe != "30-day" {
			t.Errorf("timeframe = %q, want 30-day", rec.Timeframe)
		}
	}
}

func TestSelectFindingsSkipsBlankEntries(t *testing.T) {
	f := SelectFindings(CategoryAnalysis{
		Strengths: []string{"", "  ", "real strength"},
		KeyMetrics: []KeyMetric{
			{Name: "", Value: "ignored"},
			{Name: "Gross margin", Value: "42%", Status: "mystery"},
		},
	})
	if len(f.Strengths) != 1 || f.Strengths[0] != "real strength" {
		t.Fatalf("expected blank strengths skipped, got %v", f.Strengths)
	}
	if len(f.Metrics) != 1 || f.Metrics[0].Status != "warning" {
		t.Fatalf("expected unknown metric status coerced to warning, got %v", f.Metrics)
	}
}
