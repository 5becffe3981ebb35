package reports

import "testing"

func TestComposePhaseTwoTierSelection(t *testing.T) {
	// 10 items: 6 primary (STR), 4 non-primary (MKT).
	items := []RoadmapItem{
		{Action: "p1", Category: "STR"},
		{Action: "n1", Category: "MKT"},
		{Action: "p2", Category: "STR"},
		{Action: "p3", Category: "STR"},
		{Action: "n2", Category: "MKT"},
		{Action: "p4", Category: "STR"},
		{Action: "p5", Category: "STR"},
		{Action: "n3", Category: "MKT"},
		{Action: "p6", Category: "STR"},
		{Action: "n4", Category: "MKT"},
	}

	got := composePhase(items, []string{"STR"})
	if len(got) != 5 {
		t.Fatalf("expected 5 items after truncation, got %d", len(got))
	}
	// 4 primary then 2 non-primary candidates, trimmed to 5 with
	// primary-first order preserved.
	wantActions := []string{"p1", "p2", "p3", "p4", "n1"}
	for i, want := range wantActions {
		if got[i].Action != want {
			t.Fatalf("item %d = %q, want %q (full: %+v)", i, got[i].Action, want, got)
		}
	}
}

func TestComposePhaseFewItems(t *testing.T) {
	items := []RoadmapItem{
		{Action: "n1", Category: "MKT"},
		{Action: "p1", Category: "FIN"},
	}
	got := composePhase(items, []string{"FIN"})
	if len(got) != 2 {
		t.Fatalf("expected both items, got %d", len(got))
	}
	if got[0].Action != "p1" || got[1].Action != "n1" {
		t.Fatalf("expected primary first, got %+v", got)
	}
}

func TestComposePhaseEmpty(t *testing.T) {
	if got := composePhase(nil, []string{"FIN"}); len(got) != 0 {
		t.Fatalf("expected empty phase, got %+v", got)
	}
}

func TestComposeRoadmapAppliesToAllPhases(t *testing.T) {
	many := make([]RoadmapItem, 0, 8)
	for i := 0; i < 8; i++ {
		many = append(many, RoadmapItem{Action: "x", Category: "STR"})
	}
	r := ComposeRoadmap(Roadmap{Days30: many, Days60: many, Days90: many}, []string{"STR"})
	if len(r.Days30) != 4 || len(r.Days60) != 4 || len(r.Days90) != 4 {
		t.Fatalf("expected 4 primary items per phase, got %d/%d/%d",
			len(r.Days30), len(r.Days60), len(r.Days90))
	}
}
