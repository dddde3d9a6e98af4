package openai

import (
	"testing"

	"github.com/fernvale/parley/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind core.ErrKind
	}{
		{
			name:     "401 is auth",
			status:   401,
			body:     `{"error":{"message":"Incorrect API key provided: sk-...","type":"invalid_request_error","code":"invalid_api_key"}}`,
			wantKind: core.ErrKindAuth,
		},
		{
			name:     "authentication_error type is auth",
			status:   400,
			body:     `{"error":{"message":"bad key","type":"authentication_error"}}`,
			wantKind: core.ErrKindAuth,
		},
		{
			name:     "429 is overloaded",
			status:   429,
			body:     `{"error":{"message":"Rate limit reached","type":"requests"}}`,
			wantKind: core.ErrKindOverloaded,
		},
		{
			name:     "insufficient quota is overloaded",
			status:   403,
			body:     `{"error":{"message":"You exceeded your current quota","type":"insufficient_quota","code":"insufficient_quota"}}`,
			wantKind: core.ErrKindOverloaded,
		},
		{
			name:     "503 is overloaded",
			status:   503,
			body:     `{"error":{"message":"The engine is currently overloaded","type":"server_error"}}`,
			wantKind: core.ErrKindOverloaded,
		},
		{
			name:     "500 is generic",
			status:   500,
			body:     `{"error":{"message":"internal error","type":"server_error"}}`,
			wantKind: core.ErrKindGeneric,
		},
		{
			name:     "non-json body is generic with text preserved",
			status:   502,
			body:     "Bad Gateway",
			wantKind: core.ErrKindGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyError(tt.status, []byte(tt.body))
			assert.Equal(t, tt.wantKind, err.Kind)
			assert.NotEmpty(t, err.Message)
			assert.Equal(t, tt.wantKind, core.KindOf(err))
		})
	}
}

func TestClassifyErrorEmptyBody(t *testing.T) {
	err := classifyError(500, nil)
	assert.Equal(t, core.ErrKindGeneric, err.Kind)
	assert.Equal(t, "Internal Server Error", err.Message)
}
