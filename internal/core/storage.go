package core

import "context"

// Store is the keyed persistence contract for serialized user records.
// Implementations are interchangeable (file document store, sqlite) and
// callers never observe which backend is active. Get returns ErrNotFound
// for a missing key; Set does not return until the write is durably
// applied to the active backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
