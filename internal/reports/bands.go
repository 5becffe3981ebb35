package reports

// Band is a discrete quality label derived purely from a numeric score, with
// the presentation tokens used wherever that score is displayed.
type Band struct {
	Label      string `json:"label"`
	Color      string `json:"color"`
	Background string `json:"background"`
}

var (
	bandExcellence  = Band{Label: "Excellence", Color: "#16a34a", Background: "#f0fdf4"}
	bandProficiency = Band{Label: "Proficiency", Color: "#2563eb", Background: "#eff6ff"}
	bandAttention   = Band{Label: "Attention", Color: "#ca8a04", Background: "#fefce8"}
	bandConcern     = Band{Label: "Concern", Color: "#ea580c", Background: "#fff7ed"}
	bandCritical    = Band{Label: "Critical", Color: "#dc2626", Background: "#fef2f2"}
)

// ClassifyScore maps a score to its band. Thresholds are inclusive lower
// bounds checked in descending order; this is the single definition every
// section uses.
func ClassifyScore(score float64) Band {
	switch {
	case score >= 80:
		return bandExcellence
	case score >= 70:
		return bandProficiency
	case score >= 60:
		return bandAttention
	case score >= 40:
		return bandConcern
	default:
		return bandCritical
	}
}
