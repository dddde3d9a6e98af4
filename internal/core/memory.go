package core

import "context"

// Memory is the per-user conversation state engine. All operations are
// safe to call for a previously-unseen user: a fresh record with the
// configured default system message is created lazily. Every mutation is
// written through to the backing Store before returning.
type Memory interface {
	// Get returns the system message followed by the bounded history,
	// in chronological order.
	Get(ctx context.Context, userID string) ([]Message, error)

	// Append adds one entry and enforces the sliding window: once the
	// history exceeds twice the configured turn count, the oldest
	// user/assistant pair is dropped.
	Append(ctx context.Context, userID, role, content string) error

	// SetSystemMessage upserts the pinned system message without
	// touching history.
	SetSystemMessage(ctx context.Context, userID, text string) error

	// Clear empties the history for the user; the system message is kept.
	Clear(ctx context.Context, userID string) error
}
