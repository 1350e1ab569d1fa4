package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrRateLimited is returned when the generation backend answers with
// HTTP 429. Callers advance to the next backend instead of retrying.
var ErrRateLimited = errors.New("rate limited")

// Client is a client for the Gemini generateContent API.
type Client struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

// NewClient creates a new generation client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		client:  http.DefaultClient,
	}
}

// generatePart is a single text part in a generation request or response.
type generatePart struct {
	Text string `json:"text"`
}

// generateContent is the content wrapper used by the Gemini API.
type generateContent struct {
	Parts []generatePart `json:"parts"`
}

// GenerateRequest represents the request payload for generateContent.
type GenerateRequest struct {
	Contents []generateContent `json:"contents"`
}

// GenerateResponse represents the response from generateContent.
type GenerateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// Generate sends a single generation request to the named model and
// returns the answer text. HTTP 429 maps to ErrRateLimited; any other
// failure (non-200, malformed body, empty candidates) is a plain error.
// All returned errors have the API key redacted.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, model, c.APIKey)

	payload := GenerateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", c.redactError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", c.redactError(fmt.Errorf("failed to send request: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("model %s: %w", model, ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", c.redactError(fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw)))
	}

	var genResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}

// redactError strips the API credential from an error message before it
// can be logged or surfaced to a caller.
func (c *Client) redactError(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(RedactKey(err.Error(), c.APIKey))
}

// RedactKey replaces every occurrence of the credential in msg.
func RedactKey(msg, key string) string {
	if key == "" {
		return msg
	}
	return strings.ReplaceAll(msg, key, "[REDACTED]")
}
