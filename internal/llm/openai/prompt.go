package openai

import (
	"fmt"
	"strings"

	"bizhealth-backend/internal/llm"
)

// Message is one chat message sent to the provider.
type Message struct {
	Role    string
	Content string
}

var toneInstructions = map[llm.Tone]string{
	llm.ToneDirect:      "Be direct and plain-spoken. No hedging, no filler.",
	llm.ToneEncouraging: "Be encouraging but honest. Acknowledge what works before naming what doesn't.",
	llm.ToneFormal:      "Use a formal, board-report register.",
}

// BuildNarrativePrompt renders the structured narrative context into chat
// messages. The output contract is plain prose paragraphs, not JSON.
func BuildNarrativePrompt(input llm.NarrativeInput) []Message {
	maxParagraphs := input.MaxParagraphs
	if maxParagraphs <= 0 {
		maxParagraphs = 3
	}

	tone, ok := toneInstructions[input.Tone]
	if !ok {
		tone = toneInstructions[llm.ToneEncouraging]
	}

	system := fmt.Sprintf(
		"You write executive summaries of business health assessments for a %s. "+
			"Write at most %d short paragraphs of plain prose. %s "+
			"Refer only to the data provided. Do not use headings, lists, or markdown.",
		audienceOr(input.Audience), maxParagraphs, tone,
	)

	var b strings.Builder
	fmt.Fprintf(&b, "Company: %s\n", input.CompanyName)
	fmt.Fprintf(&b, "Overall health score: %.0f/100\n\n", input.OverallScore)
	for _, cat := range input.Categories {
		fmt.Fprintf(&b, "%s (%s): %.0f/100\n", cat.Name, cat.Code, cat.Score)
		for _, s := range cat.Strengths {
			fmt.Fprintf(&b, "  strength: %s\n", s)
		}
		for _, g := range cat.Gaps {
			fmt.Fprintf(&b, "  gap: %s\n", g)
		}
	}
	if len(input.CriticalActions) > 0 {
		b.WriteString("\nCritical actions already identified:\n")
		for _, action := range input.CriticalActions {
			fmt.Fprintf(&b, "- %s\n", action)
		}
	}
	b.WriteString("\nWrite the executive summary.")

	return []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: b.String()},
	}
}

func audienceOr(audience string) string {
	if strings.TrimSpace(audience) == "" {
		return "business owner"
	}
	return audience
}
