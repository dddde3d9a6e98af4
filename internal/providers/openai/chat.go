package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fernvale/parley/internal/core"
)

// ChatCompletions sends the materialized history to the chat model and
// returns the assistant message content.
func (c *Client) ChatCompletions(ctx context.Context, messages []core.Message, model string) (string, error) {
	payload := map[string]any{
		"model":    model,
		"messages": messages,
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/chat/completions", payload)
	if err != nil {
		return "", core.WrapCapabilityError(core.ErrKindGeneric, "chat completion request failed", err)
	}

	data, err := readBody(resp)
	if err != nil {
		return "", core.WrapCapabilityError(core.ErrKindGeneric, "chat completion response unreadable", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyError(resp.StatusCode, data)
	}

	var result struct {
		Choices []struct {
			Message core.Message `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", core.WrapCapabilityError(core.ErrKindGeneric, "decode chat completion", err)
	}
	if len(result.Choices) == 0 {
		return "", core.NewCapabilityError(core.ErrKindGeneric, fmt.Sprintf("empty choices: %s", string(data)))
	}
	return result.Choices[0].Message.Content, nil
}
