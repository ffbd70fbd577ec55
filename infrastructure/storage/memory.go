package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hackdash/hackdash/internal/domain"
	"github.com/hackdash/hackdash/internal/ports"
)

var _ ports.StateStore = (*MemoryStore)(nil)

// MemoryStore keeps the durable slice as an in-memory JSON blob. It backs
// tests and ephemeral sessions where nothing should touch disk, while
// still exercising the same encode/decode path as the file adapter.
type MemoryStore struct {
	mu   sync.Mutex
	blob []byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Load decodes the held blob. An empty store yields an empty slice.
func (m *MemoryStore) Load(ctx context.Context) (domain.DurableState, error) {
	if err := ctx.Err(); err != nil {
		return domain.DurableState{}, ports.NewStorageError("memory", "load", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blob == nil {
		return domain.DurableState{}, nil
	}

	var state domain.DurableState
	if err := json.Unmarshal(m.blob, &state); err != nil {
		return domain.DurableState{}, ports.NewStorageError("memory", "decode", err)
	}
	return state, nil
}

// Save encodes and replaces the held blob.
func (m *MemoryStore) Save(ctx context.Context, state domain.DurableState) error {
	if err := ctx.Err(); err != nil {
		return ports.NewStorageError("memory", "save", err)
	}

	data, err := json.Marshal(state)
	if err != nil {
		return ports.NewStorageError("memory", "encode", err)
	}

	m.mu.Lock()
	m.blob = data
	m.mu.Unlock()
	return nil
}
