package snapshot

import (
	"context"
	"sync"
)

// Memory implements Store with a mutex-guarded map. Suitable for tests and
// single-process setups; snapshots do not survive a restart.
type Memory struct {
	mu    sync.RWMutex
	snaps map[string]Snapshot
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory snapshot store.
func NewMemory() *Memory {
	return &Memory{
		snaps: make(map[string]Snapshot),
	}
}

func (m *Memory) Save(ctx context.Context, snap Snapshot) error {
	if snap.ID == "" {
		return ErrEmptyID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps[snap.ID] = snap
	return nil
}

func (m *Memory) Load(ctx context.Context, id string) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap, ok := m.snaps[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	return snap, nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.snaps, id)
	return nil
}

// Len reports how many snapshots the store holds.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.snaps)
}
