package openai

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fernvale/parley/internal/core"
)

// apiError is the error envelope the OpenAI API returns on non-2xx.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// classifyError maps an HTTP status plus the structured error body onto
// a typed capability error. Classification keys off the status code and
// the API's machine-readable type/code fields, never the human message.
func classifyError(status int, body []byte) *core.CapabilityError {
	var envelope apiError
	_ = json.Unmarshal(body, &envelope)

	message := envelope.Error.Message
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = http.StatusText(status)
	}

	kind := core.ErrKindGeneric
	switch {
	case status == http.StatusUnauthorized,
		envelope.Error.Code == "invalid_api_key",
		envelope.Error.Type == "authentication_error":
		kind = core.ErrKindAuth
	case status == http.StatusTooManyRequests,
		status == http.StatusServiceUnavailable,
		envelope.Error.Code == "insufficient_quota",
		envelope.Error.Type == "server_error" && strings.Contains(envelope.Error.Code, "overloaded"),
		envelope.Error.Type == "overloaded_error":
		kind = core.ErrKindOverloaded
	}

	return core.NewCapabilityError(kind, message)
}
