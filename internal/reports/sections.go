package reports

import (
	"fmt"
	"html"
	"strings"

	"bizhealth-backend/internal/shared/util"
	"bizhealth-backend/internal/taxonomy"
)

// section is one named, rendered block of the report. Builders are pure
// functions of their inputs; the assembler fixes their order.
type section struct {
	Name string
	HTML string
}

func esc(value string) string {
	return html.EscapeString(value)
}

func buildCoverSection(profile BusinessProfile, scores ScoreSet) section {
	name := companyName(profile)
	overall := scores.OverallScore()
	band := ClassifyScore(overall)

	var b strings.Builder
	b.WriteString(`<section class="cover">`)
	b.WriteString(`<p class="report-kind">Business Health Report</p>`)
	fmt.Fprintf(&b, `<h1>%s</h1>`, esc(name))
	if industry := util.NonEmptyStringOr(profile.Industry, ""); industry != "" {
		fmt.Fprintf(&b, `<p class="industry">%s</p>`, esc(industry))
	}
	fmt.Fprintf(&b,
		`<div class="overall" style="color:%s;background:%s"><span class="score">%.0f</span><span class="band">%s</span></div>`,
		band.Color, band.Background, overall, esc(band.Label),
	)
	b.WriteString(`</section>`)
	return section{Name: "Cover", HTML: b.String()}
}

func buildBottomLineSection(bottomLine *BottomLine) (section, bool) {
	if bottomLine == nil {
		return section{}, false
	}

	var b strings.Builder
	b.WriteString(`<section class="bottom-line">`)
	fmt.Fprintf(&b, `<h2>%s</h2>`, esc(util.NonEmptyStringOr(bottomLine.Headline, "The Bottom Line")))
	if v := util.NonEmptyStringOr(bottomLine.KeyTakeaway, ""); v != "" {
		fmt.Fprintf(&b, `<p class="takeaway">%s</p>`, esc(v))
	}
	if v := util.NonEmptyStringOr(bottomLine.ScoreHighlight, ""); v != "" {
		fmt.Fprintf(&b, `<p class="highlight">%s</p>`, esc(v))
	}
	if v := util.NonEmptyStringOr(bottomLine.TopPriority, ""); v != "" {
		fmt.Fprintf(&b, `<p class="priority"><strong>Top priority:</strong> %s</p>`, esc(v))
	}
	if v := util.NonEmptyStringOr(bottomLine.CallToAction, ""); v != "" {
		fmt.Fprintf(&b, `<p class="cta">%s</p>`, esc(v))
	}
	b.WriteString(`</section>`)
	return section{Name: "Bottom Line", HTML: b.String()}, true
}

func buildNarrativeSection(paragraphs []string) section {
	var b strings.Builder
	b.WriteString(`<section class="executive-summary"><h2>Executive Summary</h2>`)
	for _, p := range paragraphs {
		if trimmed := util.NonEmptyStringOr(p, ""); trimmed != "" {
			fmt.Fprintf(&b, `<p>%s</p>`, esc(trimmed))
		}
	}
	b.WriteString(`</section>`)
	return section{Name: "Executive Summary", HTML: b.String()}
}

// buildOverviewSection renders one scored bar per category, grouped by
// chapter in presentation order.
func buildOverviewSection(scores ScoreSet) section {
	var b strings.Builder
	b.WriteString(`<section class="health-overview"><h2>Health Overview</h2>`)
	for _, chapter := range taxonomy.ChapterCodes() {
		fmt.Fprintf(&b, `<h3>%s</h3>`, esc(taxonomy.ChapterName(chapter)))
		for _, code := range taxonomy.ChapterCategories(chapter) {
			score := scores.Category(code)
			band := ClassifyScore(score)
			fmt.Fprintf(&b,
				`<div class="bar-row"><span class="bar-label">%s</span>`+
					`<div class="bar-track"><div class="bar-fill" style="width:%.0f%%;background:%s"></div></div>`+
					`<span class="bar-score">%.0f</span></div>`,
				esc(taxonomy.CategoryName(code)), score, band.Color, score,
			)
		}
	}
	b.WriteString(`</section>`)
	return section{Name: "Health Overview", HTML: b.String()}
}

func buildDeepDiveSection(code string, scores ScoreSet, analysis CategoryAnalysis) section {
	name := taxonomy.CategoryName(code)
	score := scores.Category(code)
	band := ClassifyScore(score)
	findings := SelectFindings(analysis)

	var b strings.Builder
	b.WriteString(`<section class="deep-dive">`)
	fmt.Fprintf(&b,
		`<h2>%s <span class="badge" style="color:%s;background:%s">%.0f · %s</span></h2>`,
		esc(name), band.Color, band.Background, score, esc(band.Label),
	)
	fmt.Fprintf(&b, `<p class="summary">%s</p>`, esc(findings.Summary))

	if len(findings.Strengths) > 0 {
		b.WriteString(`<h4>What's Working</h4><ul class="strengths">`)
		for _, s := range findings.Strengths {
			fmt.Fprintf(&b, `<li>%s</li>`, esc(s))
		}
		b.WriteString(`</ul>`)
	}
	if len(findings.Weaknesses) > 0 {
		b.WriteString(`<h4>What Needs Attention</h4><ul class="weaknesses">`)
		for _, w := range findings.Weaknesses {
			fmt.Fprintf(&b, `<li>%s</li>`, esc(w))
		}
		b.WriteString(`</ul>`)
	}

	b.WriteString(`<h4>Recommendations</h4><ul class="recommendations">`)
	for _, rec := range findings.Recommendations {
		fmt.Fprintf(&b,
			`<li><span class="priority priority-%s">%s</span><span class="timeframe">%s</span> <strong>%s</strong>`,
			esc(rec.Priority), esc(rec.Priority), esc(rec.Timeframe), esc(rec.Title),
		)
		if v := util.NonEmptyStringOr(rec.Description, ""); v != "" {
			fmt.Fprintf(&b, ` — %s`, esc(v))
		}
		if v := util.NonEmptyStringOr(rec.EstimatedImpact, ""); v != "" {
			fmt.Fprintf(&b, ` <em>(%s)</em>`, esc(v))
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)

	if len(findings.Metrics) > 0 {
		b.WriteString(`<h4>Key Metrics</h4><table class="metrics"><tbody>`)
		for _, m := range findings.Metrics {
			fmt.Fprintf(&b,
				`<tr class="metric-%s"><td>%s</td><td>%s</td>`,
				esc(m.Status), esc(m.Name), esc(m.Value),
			)
			if v := util.NonEmptyStringOr(m.Benchmark, ""); v != "" {
				fmt.Fprintf(&b, `<td class="benchmark">%s</td>`, esc(v))
			}
			b.WriteString(`</tr>`)
		}
		b.WriteString(`</tbody></table>`)
	}

	b.WriteString(`</section>`)
	return section{Name: "Deep Dive: " + name, HTML: b.String()}
}

func buildRoadmapSection(roadmap Roadmap) section {
	var b strings.Builder
	b.WriteString(`<section class="roadmap"><h2>90-Day Roadmap</h2>`)
	writeRoadmapPhase(&b, "First 30 Days", roadmap.Days30)
	writeRoadmapPhase(&b, "Days 31-60", roadmap.Days60)
	writeRoadmapPhase(&b, "Days 61-90", roadmap.Days90)
	b.WriteString(`</section>`)
	return section{Name: "90-Day Roadmap", HTML: b.String()}
}

func writeRoadmapPhase(b *strings.Builder, label string, items []RoadmapItem) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, `<h3>%s</h3><ul class="phase">`, esc(label))
	for _, item := range items {
		fmt.Fprintf(b, `<li><span class="tag">%s</span> %s`, esc(taxonomy.CategoryName(item.Category)), esc(item.Action))
		if v := util.NonEmptyStringOr(item.Impact, ""); v != "" {
			fmt.Fprintf(b, ` <em>%s</em>`, esc(v))
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
}

func buildDecisionsSection(decisions []Decision) section {
	var b strings.Builder
	b.WriteString(`<section class="decisions"><h2>Decisions Required</h2><ol>`)
	for _, d := range decisions {
		fmt.Fprintf(&b,
			`<li class="urgency-%s"><span class="urgency">%s</span> <strong>%s</strong><p>%s</p></li>`,
			esc(d.Urgency), esc(d.Urgency), esc(d.Title), esc(d.Description),
		)
	}
	b.WriteString(`</ol></section>`)
	return section{Name: "Decisions Required", HTML: b.String()}
}

func buildClosingSection(profile BusinessProfile) section {
	var b strings.Builder
	b.WriteString(`<section class="closing"><h2>Next Steps</h2>`)
	fmt.Fprintf(&b,
		`<p>This report gives %s a prioritized picture of where the business stands today. `+
			`Start with the immediate decisions, put the 30-day actions on the calendar, and re-assess in ninety days to measure the shift.</p>`,
		esc(companyName(profile)),
	)
	b.WriteString(`</section>`)
	return section{Name: "Next Steps", HTML: b.String()}
}
