// Package file is the file-backed record store: a single JSON document
// keyed by user identifier.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fernvale/parley/internal/core"
)

// DocumentStore implements core.Store over one JSON file. Every write
// rewrites the document atomically (temp file + rename, fsynced), so a
// returned Set is durable. A single mutex serializes writers; no write
// is ever dropped.
type DocumentStore struct {
	path string
	mu   sync.Mutex
}

func NewDocumentStore(path string) (*DocumentStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &DocumentStore{path: path}, nil
}

func (s *DocumentStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load()
	if err != nil {
		return nil, err
	}

	value, ok := docs[key]
	if !ok {
		return nil, core.ErrNotFound
	}
	return value, nil
}

func (s *DocumentStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load()
	if err != nil {
		return err
	}
	docs[key] = json.RawMessage(value)
	return s.save(docs)
}

func (s *DocumentStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load()
	if err != nil {
		return err
	}
	delete(docs, key)
	return s.save(docs)
}

func (s *DocumentStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]json.RawMessage), nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	docs := make(map[string]json.RawMessage)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("failed to parse store file: %w", err)
		}
	}
	return docs, nil
}

func (s *DocumentStore) save(docs map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".store-*")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
