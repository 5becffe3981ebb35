package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"bizhealth-backend/internal/llm"
	"bizhealth-backend/internal/shared/telemetry"
)

const defaultAPIURL = "https://api.openai.com/v1/chat/completions"

// Client implements llm.Client using OpenAI Chat Completions.
type Client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// NewClient constructs a new OpenAI client. The request timeout bounds the
// single narrative attempt; callers substitute the deterministic fallback on
// expiry rather than retrying.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	timeout := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	apiURL := defaultAPIURL
	if raw := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); raw != "" {
		apiURL = strings.TrimRight(raw, "/") + "/v1/chat/completions"
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float32      `json:"temperature,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// GenerateNarrative makes a single chat-completion call and returns the
// generated paragraphs plus token usage.
func (c *Client) GenerateNarrative(ctx context.Context, input llm.NarrativeInput) (llm.NarrativeResult, error) {
	messages := BuildNarrativePrompt(input)
	content, tokens, err := c.completeOnce(ctx, messages)
	if err != nil {
		return llm.NarrativeResult{}, err
	}

	paragraphs := splitParagraphs(content, input.MaxParagraphs)
	if len(paragraphs) == 0 {
		return llm.NarrativeResult{}, fmt.Errorf("openai response empty content")
	}

	telemetry.Info("llm.usage", map[string]any{
		"model":        c.model,
		"total_tokens": tokens,
	})
	return llm.NarrativeResult{Paragraphs: paragraphs, TokensUsed: tokens}, nil
}

func (c *Client) completeOnce(ctx context.Context, messages []Message) (string, int, error) {
	temp := float32(0.4)
	reqMessages := make([]chatMessage, 0, len(messages))
	for _, m := range messages {
		reqMessages = append(reqMessages, chatMessage{Role: m.Role, Content: m.Content})
	}
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    reqMessages,
		Temperature: &temp,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", 0, fmt.Errorf("openai request timeout: %w", err)
		}
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", 0, fmt.Errorf("openai response parse: %w", err)
	}
	if parsed.Error != nil {
		return "", 0, fmt.Errorf("openai error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Choices) == 0 {
		return "", 0, fmt.Errorf("openai response missing choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", 0, fmt.Errorf("openai response empty content")
	}
	tokens := 0
	if parsed.Usage != nil {
		tokens = parsed.Usage.TotalTokens
	}
	return content, tokens, nil
}

// splitParagraphs breaks response text on blank lines and enforces the
// paragraph budget.
func splitParagraphs(content string, maxParagraphs int) []string {
	if maxParagraphs <= 0 {
		maxParagraphs = 3
	}
	blocks := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n")
	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" {
			continue
		}
		out = append(out, strings.Join(strings.Fields(trimmed), " "))
		if len(out) == maxParagraphs {
			break
		}
	}
	return out
}
