package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fernvale/parley/internal/core"
)

// Transcribe uploads an audio file to the transcription model and
// returns the recognized text.
func (c *Client) Transcribe(ctx context.Context, audioPath, model string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", core.WrapCapabilityError(core.ErrKindGeneric, "open audio file", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copy audio: %w", err)
	}
	if err := mw.WriteField("model", model); err != nil {
		return "", fmt.Errorf("write model field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", core.WrapCapabilityError(core.ErrKindGeneric, "transcription request failed", err)
	}

	data, err := readBody(resp)
	if err != nil {
		return "", core.WrapCapabilityError(core.ErrKindGeneric, "transcription response unreadable", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyError(resp.StatusCode, data)
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", core.WrapCapabilityError(core.ErrKindGeneric, "decode transcription", err)
	}
	return result.Text, nil
}
