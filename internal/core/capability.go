package core

import "context"

// Gateway is the uniform interface to every external AI capability.
// Each call is one blocking request/response; there are no retries and
// no caching. Failures come back as *CapabilityError with a typed kind.
type Gateway interface {
	// ChatCompletion runs the configured chat model over the full
	// materialized history (system message first).
	ChatCompletion(ctx context.Context, history []Message) (string, error)

	// GenerateImage turns a prompt into a hosted image URL.
	GenerateImage(ctx context.Context, prompt string) (string, error)

	// Transcribe converts an audio file on disk into text.
	Transcribe(ctx context.Context, audioPath string) (string, error)

	// Summarize folds an ordered sequence of text chunks (paginated
	// article or transcript) into a single aggregated summary. Zero
	// chunks is a content-extraction failure.
	Summarize(ctx context.Context, chunks []string) (string, error)
}
