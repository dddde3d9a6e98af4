// Package openai is a thin client for the OpenAI HTTP API covering the
// three capabilities the relay needs: chat completions, image generation
// and audio transcription. Calls are single blocking requests; failures
// carry a typed core.ErrKind so callers never inspect error text.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.openai.com"

type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
	}
}

// NewClientWithBaseURL exists for tests pointing at an httptest server.
func NewClientWithBaseURL(apiKey, baseURL string, timeout time.Duration) *Client {
	c := NewClient(apiKey, timeout)
	c.baseURL = baseURL
	return c
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	return resp, nil
}

// readBody drains and closes the response body.
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}
