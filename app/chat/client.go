package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hiddenhistories/archive/app/archive"
	"github.com/hiddenhistories/archive/app/cfg"
)

const requestTimeout = 30 * time.Second

// Client talks to the hosted completion API. The credential lives here, on
// the server side; it is never exposed to the rendering layer.
type Client struct {
	httpClient *http.Client
	builder    *ContextBuilder
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
}

func NewClient(httpClient *http.Client) *Client {
	c := cfg.Get()

	return &Client{
		httpClient: httpClient,
		builder:    NewContextBuilder(),
		baseURL:    c.LLMBaseUrl,
		apiKey:     c.LLMAPIKey,
		model:      c.ChatModel,
		maxTokens:  c.ChatMaxTokens,
	}
}

// Configured reports whether a credential is available. Without one the chat
// endpoint answers with the fallback message instead of calling out.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Ask sends one question with the archive digest and trailing conversation
// window. On any failure the caller should show FallbackMessage; Ask never
// invents an answer.
func (c *Client) Ask(ctx context.Context, question string, history []Message, snap *archive.Snapshot) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("completion API credential not configured")
	}

	payload := apiRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    c.builder.SystemPrompt(snap),
		Messages:  c.builder.Messages(history, question),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "POST", c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.Error("Completion API error", "status", resp.StatusCode, "body", string(respBody))
		return "", fmt.Errorf("completion API returned status %d", resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(parsed.Content) == 0 || parsed.Content[0].Text == "" {
		return "", fmt.Errorf("unexpected response format from completion API")
	}

	return parsed.Content[0].Text, nil
}
