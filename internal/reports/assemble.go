package reports

import (
	"strings"
	"time"
)

// pageEstimateChars is the rendered-characters-per-page heuristic behind the
// page-count estimate. Display only; nothing downstream validates it.
const pageEstimateChars = 3500

// documentShell is the single top-level markup template. Section content is
// produced by the builders in sections.go; this shell only supplies layout
// and styling, so presentation changes never touch scoring logic.
const documentShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{title}}</title>
<style>
body{font-family:Georgia,serif;color:#1f2937;max-width:820px;margin:0 auto;padding:2rem}
section{margin-bottom:2.5rem}
h1{font-size:2.2rem;margin-bottom:.25rem}
h2{font-size:1.4rem;border-bottom:2px solid #e5e7eb;padding-bottom:.35rem}
.cover{text-align:center;padding:3rem 0}
.report-kind{text-transform:uppercase;letter-spacing:.2em;color:#6b7280}
.overall{display:inline-block;border-radius:.75rem;padding:1rem 2rem;margin-top:1rem}
.overall .score{font-size:3rem;font-weight:bold;margin-right:.5rem}
.bar-row{display:flex;align-items:center;gap:.75rem;margin:.4rem 0}
.bar-label{flex:0 0 14rem}
.bar-track{flex:1;background:#f3f4f6;border-radius:.25rem;height:.8rem}
.bar-fill{height:100%;border-radius:.25rem}
.badge{font-size:.8rem;border-radius:.5rem;padding:.2rem .6rem;vertical-align:middle}
.priority,.urgency,.tag{font-size:.75rem;text-transform:uppercase;border-radius:.3rem;padding:.1rem .4rem;background:#f3f4f6;margin-right:.4rem}
.priority-high{background:#fef2f2;color:#dc2626}
.urgency-immediate .urgency{background:#fef2f2;color:#dc2626}
table.metrics td{padding:.3rem .8rem .3rem 0;border-bottom:1px solid #f3f4f6}
.metric-critical td:nth-child(2){color:#dc2626}
.metric-warning td:nth-child(2){color:#ca8a04}
</style>
</head>
<body>
{{sections}}
</body>
</html>
`

// assembleInput is everything the assembler needs, already resolved; the
// assembler itself reaches into no global state and has no state across
// invocations.
type assembleInput struct {
	Profile         BusinessProfile
	Scores          ScoreSet
	Analyses        map[string]CategoryAnalysis
	Roadmap         Roadmap
	BottomLine      *BottomLine
	Decisions       []Decision
	Narrative       []string
	NarrativeTokens int
	Primary         []string
}

// assembleReport runs the deterministic section pipeline and renders the
// final document. Two calls with identical inputs produce identical output
// except for the generation timestamp.
func assembleReport(in assembleInput, now time.Time) GeneratedReport {
	sections := make([]section, 0, 8+len(in.Primary))

	sections = append(sections, buildCoverSection(in.Profile, in.Scores))
	if bottomLine, ok := buildBottomLineSection(in.BottomLine); ok {
		sections = append(sections, bottomLine)
	}
	sections = append(sections, buildNarrativeSection(in.Narrative))
	sections = append(sections, buildOverviewSection(in.Scores))
	for _, code := range in.Primary {
		sections = append(sections, buildDeepDiveSection(code, in.Scores, in.Analyses[code]))
	}
	roadmap := ComposeRoadmap(in.Roadmap, in.Primary)
	sections = append(sections, buildRoadmapSection(roadmap))
	decisions := in.Decisions
	if decisions == nil {
		decisions = SynthesizeDecisions(in.Analyses, in.Scores, in.Primary)
	}
	sections = append(sections, buildDecisionsSection(decisions))
	sections = append(sections, buildClosingSection(in.Profile))

	names := make([]string, len(sections))
	fragments := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name
		fragments[i] = s.HTML
	}

	title := companyName(in.Profile) + " — Business Health Report"
	doc := documentShell
	doc = strings.ReplaceAll(doc, "{{title}}", esc(title))
	doc = strings.ReplaceAll(doc, "{{sections}}", strings.Join(fragments, "\n"))

	return GeneratedReport{
		ReportType:      ReportTypeOwner,
		Title:           title,
		HTML:            doc,
		PageEstimate:    estimatePages(doc),
		Sections:        names,
		NarrativeTokens: in.NarrativeTokens,
		GeneratedAt:     now,
	}
}

func estimatePages(doc string) int {
	pages := len(doc) / pageEstimateChars
	if pages < 1 {
		return 1
	}
	return pages
}
