package gateway

import (
	"context"
	"fmt"
	"testing"

	"github.com/fernvale/parley/internal/config"
	"github.com/fernvale/parley/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	completions []string
	calls       [][]core.Message
	err         error
}

func (f *fakeClient) ChatCompletions(ctx context.Context, messages []core.Message, model string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.calls = append(f.calls, messages)
	return fmt.Sprintf("summary-%d", len(f.calls)), nil
}

func (f *fakeClient) GenerateImage(ctx context.Context, prompt, size string) (string, error) {
	return "https://img.example/cat.png", nil
}

func (f *fakeClient) Transcribe(ctx context.Context, audioPath, model string) (string, error) {
	return "transcribed", nil
}

func newTestGateway(client AIClient) *Gateway {
	return New(client, &config.OpenAIConfig{
		ModelEngine:  "gpt-3.5-turbo",
		WhisperModel: "whisper-1",
		ImageSize:    "512x512",
	})
}

func TestSummarizeZeroChunksIsContentError(t *testing.T) {
	g := newTestGateway(&fakeClient{})

	_, err := g.Summarize(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, core.ErrKindContent, core.KindOf(err))
}

func TestSummarizeSingleChunkIsOneCall(t *testing.T) {
	client := &fakeClient{}
	g := newTestGateway(client)

	got, err := g.Summarize(context.Background(), []string{"the article text"})
	require.NoError(t, err)
	assert.Equal(t, "summary-1", got)
	require.Len(t, client.calls, 1)
	assert.Equal(t, core.RoleSystem, client.calls[0][0].Role)
	assert.Equal(t, "the article text", client.calls[0][1].Content)
}

func TestSummarizeFoldsMultipleChunks(t *testing.T) {
	client := &fakeClient{}
	g := newTestGateway(client)

	_, err := g.Summarize(context.Background(), []string{"part one", "part two", "part three"})
	require.NoError(t, err)

	// One call per chunk plus the final combine call.
	require.Len(t, client.calls, 4)
	final := client.calls[3]
	assert.Contains(t, final[1].Content, "summary-1")
	assert.Contains(t, final[1].Content, "summary-3")
}

func TestSummarizePropagatesCapabilityError(t *testing.T) {
	client := &fakeClient{err: core.NewCapabilityError(core.ErrKindOverloaded, "overloaded")}
	g := newTestGateway(client)

	_, err := g.Summarize(context.Background(), []string{"text"})
	require.Error(t, err)
	assert.Equal(t, core.ErrKindOverloaded, core.KindOf(err))
}
