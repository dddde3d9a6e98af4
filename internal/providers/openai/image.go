package openai

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fernvale/parley/internal/core"
)

// GenerateImage asks the image model for one hosted image and returns
// its URL.
func (c *Client) GenerateImage(ctx context.Context, prompt, size string) (string, error) {
	payload := map[string]any{
		"prompt": prompt,
		"n":      1,
		"size":   size,
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/images/generations", payload)
	if err != nil {
		return "", core.WrapCapabilityError(core.ErrKindGeneric, "image generation request failed", err)
	}

	data, err := readBody(resp)
	if err != nil {
		return "", core.WrapCapabilityError(core.ErrKindGeneric, "image generation response unreadable", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyError(resp.StatusCode, data)
	}

	var result struct {
		Data []struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", core.WrapCapabilityError(core.ErrKindGeneric, "decode image generation", err)
	}
	if len(result.Data) == 0 || result.Data[0].URL == "" {
		return "", core.NewCapabilityError(core.ErrKindGeneric, "image generation returned no image")
	}
	return result.Data[0].URL, nil
}
