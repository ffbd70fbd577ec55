// Package storage provides persistence adapters for the hackathon store.
// The durable slice is stored as a single serialized JSON blob; adapters
// never read or write partial state.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hackdash/hackdash/internal/domain"
	"github.com/hackdash/hackdash/internal/ports"
)

var _ ports.StateStore = (*FileStore)(nil)

// FileStore persists the durable state slice as a JSON file on disk.
// Writes go through a temp file and rename, so a crash mid-write never
// leaves a half-written blob behind.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path. The parent
// directory is created when missing.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("storage path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

// Load reads and decodes the blob. A missing file is first run, not an
// error: it yields an empty slice so the store can seed its default state.
func (s *FileStore) Load(ctx context.Context) (domain.DurableState, error) {
	if err := ctx.Err(); err != nil {
		return domain.DurableState{}, ports.NewStorageError(s.path, "load", err)
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DurableState{}, nil
	}
	if err != nil {
		return domain.DurableState{}, ports.NewStorageError(s.path, "load", err)
	}

	var state domain.DurableState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.DurableState{}, ports.NewStorageError(s.path, "decode", err)
	}
	return state, nil
}

// Save encodes and atomically replaces the blob.
func (s *FileStore) Save(ctx context.Context, state domain.DurableState) error {
	if err := ctx.Err(); err != nil {
		return ports.NewStorageError(s.path, "save", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return ports.NewStorageError(s.path, "encode", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return ports.NewStorageError(s.path, "save", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return ports.NewStorageError(s.path, "save", err)
	}
	return nil
}
