// Package gateway implements the uniform capability surface the router
// talks to. It binds the configured models to the OpenAI client and is
// the single place where empty extraction results become typed errors.
package gateway

import (
	"context"
	"strings"

	"github.com/fernvale/parley/internal/config"
	"github.com/fernvale/parley/internal/core"
	"github.com/fernvale/parley/pkg/log"
)

const summarizeInstruction = "You are an expert summarizer. Write a concise summary of the provided text, keeping the key points and the language of the source."

const combineInstruction = "You are an expert summarizer. The following are partial summaries of one document, in order. Merge them into a single coherent summary."

// AIClient is the transport-level client the gateway drives. Satisfied
// by *openai.Client.
type AIClient interface {
	ChatCompletions(ctx context.Context, messages []core.Message, model string) (string, error)
	GenerateImage(ctx context.Context, prompt, size string) (string, error)
	Transcribe(ctx context.Context, audioPath, model string) (string, error)
}

type Gateway struct {
	client AIClient
	cfg    *config.OpenAIConfig
}

func New(client AIClient, cfg *config.OpenAIConfig) *Gateway {
	return &Gateway{
		client: client,
		cfg:    cfg,
	}
}

func (g *Gateway) ChatCompletion(ctx context.Context, history []core.Message) (string, error) {
	return g.client.ChatCompletions(ctx, history, g.cfg.ModelEngine)
}

func (g *Gateway) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return g.client.GenerateImage(ctx, prompt, g.cfg.ImageSize)
}

func (g *Gateway) Transcribe(ctx context.Context, audioPath string) (string, error) {
	return g.client.Transcribe(ctx, audioPath, g.cfg.WhisperModel)
}

// Summarize folds ordered text chunks into one summary. A single chunk
// is summarized directly; multiple chunks are summarized individually
// and the partials merged in a final call. Zero chunks means the content
// extraction produced nothing and is reported as a content error.
func (g *Gateway) Summarize(ctx context.Context, chunks []string) (string, error) {
	if len(chunks) == 0 {
		return "", core.NewCapabilityError(core.ErrKindContent, "no text to summarize")
	}

	if len(chunks) == 1 {
		return g.summarizeOne(ctx, summarizeInstruction, chunks[0])
	}

	log.FromCtx(ctx).Debug().Int("chunks", len(chunks)).Msg("summarizing in parts")

	partials := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		partial, err := g.summarizeOne(ctx, summarizeInstruction, chunk)
		if err != nil {
			return "", err
		}
		partials = append(partials, partial)
	}

	return g.summarizeOne(ctx, combineInstruction, strings.Join(partials, "\n\n"))
}

func (g *Gateway) summarizeOne(ctx context.Context, instruction, text string) (string, error) {
	messages := []core.Message{
		{Role: core.RoleSystem, Content: instruction},
		{Role: core.RoleUser, Content: text},
	}
	return g.client.ChatCompletions(ctx, messages, g.cfg.ModelEngine)
}
