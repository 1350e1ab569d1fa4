package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// EmbeddingsClient is a client for the Gemini embedContent API.
type EmbeddingsClient struct {
	BaseURL string
	APIKey  string
	Model   string
	client  *http.Client
}

// NewEmbeddingsClient creates a new embeddings client.
func NewEmbeddingsClient(baseURL, apiKey, model string) *EmbeddingsClient {
	return &EmbeddingsClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		client:  http.DefaultClient,
	}
}

// EmbedRequest represents the request payload for embedContent.
// TaskType "retrieval_query" tells the model this is the query side of a
// retrieval pair, matching the "retrieval_document" used at ingest time.
type EmbedRequest struct {
	Content  string `json:"content"`
	TaskType string `json:"task_type"`
}

// EmbedResponse represents the response from embedContent.
type EmbedResponse struct {
	Embedding struct {
		Values []float64 `json:"values"`
	} `json:"embedding"`
}

// EmbedQuery embeds a question for retrieval. Any network or HTTP error
// is returned with the API key redacted; callers degrade to an empty
// candidate set rather than failing the request.
func (c *EmbeddingsClient) EmbedQuery(ctx context.Context, text string) ([]float64, error) {
	if text == "" {
		return nil, fmt.Errorf("empty input text")
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:embedContent?key=%s", c.BaseURL, c.Model, c.APIKey)

	payload := EmbedRequest{
		Content:  text,
		TaskType: "retrieval_query",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, c.redactError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, c.redactError(fmt.Errorf("failed to send request: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, c.redactError(fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw)))
	}

	var embedResp EmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&embedResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(embedResp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding returned")
	}

	return embedResp.Embedding.Values, nil
}

func (c *EmbeddingsClient) redactError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s", RedactKey(err.Error(), c.APIKey))
}
