package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizhealth-backend/internal/llm"
)

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		max     int
		want    int
	}{
		{name: "two paragraphs", content: "First.\n\nSecond.", max: 3, want: 2},
		{name: "budget enforced", content: "A.\n\nB.\n\nC.\n\nD.", max: 2, want: 2},
		{name: "blank blocks dropped", content: "A.\n\n\n\n  \n\nB.", max: 3, want: 2},
		{name: "single block", content: "Only one paragraph here.", max: 3, want: 1},
		{name: "zero budget defaults", content: "A.\n\nB.\n\nC.\n\nD.", max: 0, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitParagraphs(tt.content, tt.max)
			if len(got) != tt.want {
				t.Fatalf("splitParagraphs returned %d paragraphs, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSplitParagraphsCollapsesInternalNewlines(t *testing.T) {
	got := splitParagraphs("Line one\nline two.", 3)
	if len(got) != 1 || strings.Contains(got[0], "\n") {
		t.Fatalf("expected single flattened paragraph, got %q", got)
	}
}

func TestGenerateNarrative(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "Paragraph one.\n\nParagraph two."}}],
			"usage": {"prompt_tokens": 100, "completion_tokens": 40, "total_tokens": 140}
		}`))
	}))
	defer srv.Close()

	t.Setenv("OPENAI_BASE_URL", srv.URL)
	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	result, err := client.GenerateNarrative(context.Background(), llm.NarrativeInput{
		CompanyName:  "Acme Joinery",
		Audience:     "business owner",
		Tone:         llm.ToneEncouraging,
		OverallScore: 62,
	})
	if err != nil {
		t.Fatalf("GenerateNarrative: %v", err)
	}
	if len(result.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(result.Paragraphs))
	}
	if result.TokensUsed != 140 {
		t.Fatalf("TokensUsed = %d, want 140", result.TokensUsed)
	}
}

func TestGenerateNarrativeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit"}}`))
	}))
	defer srv.Close()

	t.Setenv("OPENAI_BASE_URL", srv.URL)
	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.GenerateNarrative(context.Background(), llm.NarrativeInput{}); err == nil {
		t.Fatalf("expected provider error")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gpt-4o-mini"); err == nil {
		t.Fatalf("expected missing api key error")
	}
	if _, err := NewClient("key", ""); err == nil {
		t.Fatalf("expected missing model error")
	}
}
