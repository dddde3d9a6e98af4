// Package memory maintains per-user bounded conversation state: a
// pinned system message plus a sliding window of user/assistant turns,
// written through to the configured store on every mutation.
package memory

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/fernvale/parley/internal/core"
)

// record is the serialized per-user document; the store owns the
// persisted form, this type is its in-process materialization.
type record struct {
	SystemMessage string         `json:"system_message"`
	History       []core.Message `json:"history"`
}

type Memory struct {
	store         core.Store
	defaultSystem string
	maxTurns      int
}

func New(store core.Store, defaultSystem string, maxTurns int) *Memory {
	if maxTurns < 1 {
		maxTurns = 1
	}
	return &Memory{
		store:         store,
		defaultSystem: defaultSystem,
		maxTurns:      maxTurns,
	}
}

// Get materializes the conversation for a downstream call: system
// message first, then the bounded history in chronological order.
func (m *Memory) Get(ctx context.Context, userID string) ([]core.Message, error) {
	rec, err := m.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]core.Message, 0, len(rec.History)+1)
	out = append(out, core.Message{Role: core.RoleSystem, Content: rec.SystemMessage})
	out = append(out, rec.History...)
	return out, nil
}

// Append adds one entry and evicts the oldest user/assistant pair while
// the history holds more than 2*maxTurns entries.
func (m *Memory) Append(ctx context.Context, userID, role, content string) error {
	rec, err := m.load(ctx, userID)
	if err != nil {
		return err
	}

	rec.History = append(rec.History, core.Message{Role: role, Content: content})
	for len(rec.History) > 2*m.maxTurns {
		rec.History = rec.History[2:]
	}

	return m.save(ctx, userID, rec)
}

// SetSystemMessage upserts the pinned system message; history is untouched.
func (m *Memory) SetSystemMessage(ctx context.Context, userID, text string) error {
	rec, err := m.load(ctx, userID)
	if err != nil {
		return err
	}

	rec.SystemMessage = text
	return m.save(ctx, userID, rec)
}

// Clear drops the history and keeps the system message.
func (m *Memory) Clear(ctx context.Context, userID string) error {
	rec, err := m.load(ctx, userID)
	if err != nil {
		return err
	}

	rec.History = nil
	return m.save(ctx, userID, rec)
}

func (m *Memory) load(ctx context.Context, userID string) (*record, error) {
	data, err := m.store.Get(ctx, userID)
	if errors.Is(err, core.ErrNotFound) {
		// Lazy creation on first interaction.
		return &record{SystemMessage: m.defaultSystem}, nil
	}
	if err != nil {
		return nil, core.WrapCapabilityError(core.ErrKindStorage, "load user record", err)
	}

	rec := &record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, core.WrapCapabilityError(core.ErrKindStorage, "decode user record", err)
	}
	if rec.SystemMessage == "" {
		rec.SystemMessage = m.defaultSystem
	}
	return rec, nil
}

func (m *Memory) save(ctx context.Context, userID string, rec *record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return core.WrapCapabilityError(core.ErrKindStorage, "encode user record", err)
	}
	if err := m.store.Set(ctx, userID, data); err != nil {
		return core.WrapCapabilityError(core.ErrKindStorage, "persist user record", err)
	}
	return nil
}
