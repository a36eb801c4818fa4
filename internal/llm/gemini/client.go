package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"aspirebot-backend/internal/llm"
)

const (
	apiBaseURL   = "https://generativelanguage.googleapis.com/v1beta/models"
	providerName = "gemini"

	defaultTemperature  = 0.7
	defaultMaxOutputLen = 500
)

// Client implements llm.Generator using the Gemini generateContent API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new Gemini client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("GEMINI_MODEL is required")
	}
	timeout := 60 * time.Second
	if raw := strings.TrimSpace(os.Getenv("GEMINI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: apiBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Request envelope: contents[0].parts[0].text carries the prompt.
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// Response envelope: generated text sits at candidates[0].content.parts[0].text.
// Every level is optional in the wire format, so each is checked before use.
type generateResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Name returns the provider identifier.
func (c *Client) Name() string { return providerName }

// Generate performs one generateContent call and returns the raw response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:     defaultTemperature,
			MaxOutputTokens: defaultMaxOutputLen,
		},
	})
	if err != nil {
		return "", llm.CallError(providerName, err)
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", llm.CallError(providerName, err)
	}
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

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", llm.CallError(providerName, fmt.Errorf("response parse: %w", err))
	}
	if parsed.Error != nil {
		return "", llm.CallError(providerName, fmt.Errorf("api error %d: %s", parsed.Error.Code, parsed.Error.Message))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", llm.CallError(providerName, fmt.Errorf("http status %d", resp.StatusCode))
	}

	// Absence at any level of the candidate path means no text was produced.
	if len(parsed.Candidates) == 0 || parsed.Candidates[0].Content == nil || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", llm.CallError(providerName, fmt.Errorf("response missing candidate text"))
	}
	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", llm.CallError(providerName, fmt.Errorf("response missing candidate text"))
	}
	return text, nil
}

var _ llm.Generator = (*Client)(nil)
