package kvstore

import (
	"context"
	"sync"

	"github.com/mlagunovs/watertrack/internal/common"
)

type slot struct {
	value []byte
	rev   int64
}

// MemoryStore is an in-process Store used by tests and ephemeral runs.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string]slot
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]slot)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.slots[key]
	if !ok {
		return nil, 0, common.ErrNotFound
	}
	v := make([]byte, len(s.value))
	copy(v, s.value)
	return v, s.rev, nil
}

func (m *MemoryStore) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.slots[key]
	m.slots[key] = slot{value: cloneBytes(value), rev: s.rev + 1}
	return nil
}

func (m *MemoryStore) CompareAndSwap(ctx context.Context, key string, value []byte, rev int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var cur int64
	if s, ok := m.slots[key]; ok {
		cur = s.rev
	}
	if cur != rev {
		return common.ErrRevisionConflict
	}
	m.slots[key] = slot{value: cloneBytes(value), rev: cur + 1}
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, key)
	return nil
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
