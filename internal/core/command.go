package core

import "context"

// Command handles one slash prefix. Execute receives the payload with
// the prefix and surrounding whitespace already stripped.
type Command interface {
	Prefix() string
	Description() string
	Execute(ctx context.Context, userID, payload string) (Reply, error)
}

type CmdRouter interface {
	// Route classifies raw input against the command table and runs the
	// matching handler. Every failure is normalized into a text Reply;
	// unrecognized input yields the zero Reply.
	Route(ctx context.Context, userID, raw string) Reply

	// Converse runs the direct chat flow (append user turn, complete,
	// append assistant turn) without command or URL classification.
	// Used for transcribed audio.
	Converse(ctx context.Context, userID, text string) Reply

	// FailureReply applies the command failure policy (history clear,
	// normalized text reply) to an error raised outside dispatch, such
	// as a failed transcription in the adapter.
	FailureReply(ctx context.Context, userID string, err error) Reply
}
