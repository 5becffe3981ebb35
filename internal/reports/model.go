package reports

import "time"

// ReportTypeOwner tags reports built for the business owner audience.
const ReportTypeOwner = "owner"

// BusinessProfile is the minimal business identity supplied by the caller.
type BusinessProfile struct {
	BusinessID  string `json:"businessId"`
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry,omitempty"`
	OwnerName   string `json:"ownerName,omitempty"`
}

// Recommendation is one prioritized suggestion inside a category analysis.
type Recommendation struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Priority        string `json:"priority"`
	Timeframe       string `json:"timeframe"`
	EstimatedImpact string `json:"estimatedImpact,omitempty"`
}

// KeyMetric is a pre-formatted metric with a status flag.
type KeyMetric struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Status    string `json:"status"`
	Benchmark string `json:"benchmark,omitempty"`
}

// CategoryAnalysis is the upstream analytical record for one category. It is
// consumed, never produced, by this package; any field may be missing or
// sparse and is coerced with safe defaults at read time.
type CategoryAnalysis struct {
	Score           float64          `json:"score"`
	Summary         string           `json:"summary"`
	Strengths       []string         `json:"strengths"`
	Weaknesses      []string         `json:"weaknesses"`
	Recommendations []Recommendation `json:"recommendations"`
	KeyMetrics      []KeyMetric      `json:"keyMetrics"`
}

// RoadmapItem is one action inside a roadmap phase.
type RoadmapItem struct {
	Action   string `json:"action"`
	Category string `json:"category"`
	Impact   string `json:"impact,omitempty"`
}

// Roadmap holds the three fixed action phases.
type Roadmap struct {
	Days30 []RoadmapItem `json:"days30"`
	Days60 []RoadmapItem `json:"days60"`
	Days90 []RoadmapItem `json:"days90"`
}

// Decision urgency levels, in escalation order.
const (
	UrgencyImmediate = "immediate"
	UrgencyNearTerm  = "near-term"
	UrgencyStrategic = "strategic"
)

// Decision is one owner-facing "decision required", synthesized fresh on each
// report build and never persisted upstream.
type Decision struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
}

// BottomLine is the optional precomputed bottom-line bundle. When absent the
// section is omitted from the report entirely.
type BottomLine struct {
	Headline       string `json:"headline"`
	KeyTakeaway    string `json:"keyTakeaway"`
	ScoreHighlight string `json:"scoreHighlight"`
	TopPriority    string `json:"topPriority"`
	CallToAction   string `json:"callToAction"`
}

// BuildInput is everything one report build consumes.
type BuildInput struct {
	Profile    BusinessProfile             `json:"profile"`
	Scores     ScoreSet                    `json:"scores"`
	Analyses   map[string]CategoryAnalysis `json:"analyses"`
	Roadmap    Roadmap                     `json:"roadmap"`
	BottomLine *BottomLine                 `json:"bottomLine,omitempty"`
}

// GeneratedReport is the assembled document plus its metadata. It is immutable
// once built; the caller owns storage and delivery.
type GeneratedReport struct {
	ID              string    `json:"id"`
	BusinessID      string    `json:"businessId"`
	ReportType      string    `json:"reportType"`
	Title           string    `json:"title"`
	HTML            string    `json:"html"`
	PageEstimate    int       `json:"pageEstimate"`
	Sections        []string  `json:"sections"`
	NarrativeTokens int       `json:"narrativeTokens"`
	GeneratedAt     time.Time `json:"generatedAt"`
}
