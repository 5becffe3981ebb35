package llm

import (
	"context"
	"errors"
	"strings"
)

// Client abstracts the external narrative generation provider. The report
// pipeline makes exactly one call per report and recovers locally from any
// failure, so implementations should not retry internally.
type Client interface {
	GenerateNarrative(ctx context.Context, input NarrativeInput) (NarrativeResult, error)
}

// Tone selects the writing style for generated narrative.
type Tone string

const (
	ToneDirect      Tone = "direct"
	ToneEncouraging Tone = "encouraging"
	ToneFormal      Tone = "formal"
)

// ParseTone normalizes and validates a tone string.
func ParseTone(raw string) (Tone, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch Tone(normalized) {
	case ToneDirect, ToneEncouraging, ToneFormal:
		return Tone(normalized), nil
	default:
		return "", errors.New("tone is invalid")
	}
}

// CategoryContext is the trimmed per-category view passed to the provider.
type CategoryContext struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Score     float64  `json:"score"`
	Strengths []string `json:"strengths,omitempty"`
	Gaps      []string `json:"gaps,omitempty"`
}

// NarrativeInput captures the structured context for one narrative call.
type NarrativeInput struct {
	CompanyName     string
	Audience        string
	Tone            Tone
	MaxParagraphs   int
	OverallScore    float64
	Categories      []CategoryContext
	CriticalActions []string
}

// NarrativeResult is generated prose plus the token count consumed, reported
// upstream for cost accounting.
type NarrativeResult struct {
	Paragraphs []string
	TokensUsed int
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation used when no provider is
// configured; callers fall back to the deterministic narrative.
type PlaceholderClient struct{}

// GenerateNarrative returns ErrNotImplemented.
func (PlaceholderClient) GenerateNarrative(ctx context.Context, input NarrativeInput) (NarrativeResult, error) {
	_ = ctx
	_ = input
	return NarrativeResult{}, ErrNotImplemented
}
