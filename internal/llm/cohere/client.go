package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"aspirebot-backend/internal/llm"
)

const (
	apiURL       = "https://api.cohere.com/v1/chat"
	providerName = "cohere"

	defaultTemperature = 0.7
	defaultMaxTokens   = 500
)

// Client implements llm.Generator using the Cohere chat API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new Cohere client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("COHERE_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("COHERE_MODEL is required")
	}
	timeout := 60 * time.Second
	if raw := strings.TrimSpace(os.Getenv("COHERE_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatRequest struct {
	Model       string  `json:"model"`
	Message     string  `json:"message"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

type chatResponse struct {
	Text    string `json:"text"`
	Message string `json:"message,omitempty"`
}

// Name returns the provider identifier.
func (c *Client) Name() string { return providerName }

// Generate performs one chat call and returns the raw response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Message:     prompt,
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	})
	if err != nil {
		return "", llm.CallError(providerName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", llm.CallError(providerName, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", llm.CallError(providerName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", llm.CallError(providerName, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", llm.CallError(providerName, fmt.Errorf("response parse: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(parsed.Message)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", llm.CallError(providerName, fmt.Errorf("http status %d: %s", resp.StatusCode, msg))
	}

	text := strings.TrimSpace(parsed.Text)
	if text == "" {
		return "", llm.CallError(providerName, fmt.Errorf("response missing text"))
	}
	return text, nil
}

var _ llm.Generator = (*Client)(nil)
