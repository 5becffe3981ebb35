package reports

import "testing"

func TestScoreSetCategory(t *testing.T) {
	scores := ScoreSet{
		Overall: 58,
		ByCategory: map[string]any{
			"FIN": 35.0,
			"STR": "75",
			"OPS": "not scored",
			"RMS": nil,
			"TEC": 140.0,
			"MKT": -10.0,
		},
	}

	tests := []struct {
		code string
		want float64
	}{
		{code: "FIN", want: 35},
		{code: "STR", want: 75},
		{code: "OPS", want: 0},
		{code: "RMS", want: 0},
		{code: "SLS", want: 0},
		{code: "TEC", want: 100},
		{code: "MKT", want: 0},
	}
	for _, tt := range tests {
		if got := scores.Category(tt.code); got != tt.want {
			t.Errorf("Category(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestScoreSetOverall(t *testing.T) {
	if got := (ScoreSet{Overall: 58.4}).OverallScore(); got != 58.4 {
		t.Fatalf("OverallScore = %v, want 58.4", got)
	}
	if got := (ScoreSet{Overall: "n/a"}).OverallScore(); got != 0 {
		t.Fatalf("OverallScore with junk = %v, want 0", got)
	}
	if got := (ScoreSet{}).OverallScore(); got != 0 {
		t.Fatalf("OverallScore zero value = %v, want 0", got)
	}
}

func TestScoreSetNilMap(t *testing.T) {
	var scores ScoreSet
	if got := scores.Category("FIN"); got != 0 {
		t.Fatalf("Category on nil map = %v, want 0", got)
	}
}
