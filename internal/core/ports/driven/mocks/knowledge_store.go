package mocks

import (
	"context"
	"sync"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
)

// MockKnowledgeStore is a mock implementation of KnowledgeStore for testing.
// List returns entries in insertion order.
type MockKnowledgeStore struct {
	mu      sync.RWMutex
	entries map[string]*domain.KnowledgeEntry
	order   []string
}

// NewMockKnowledgeStore creates a new MockKnowledgeStore
func NewMockKnowledgeStore() *MockKnowledgeStore {
	return &MockKnowledgeStore{
		entries: make(map[string]*domain.KnowledgeEntry),
	}
}

func (m *MockKnowledgeStore) Save(ctx context.Context, entry *domain.KnowledgeEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.entries[entry.ID]; !exists {
		m.order = append(m.order, entry.ID)
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockKnowledgeStore) Get(ctx context.Context, id string) (*domain.KnowledgeEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (m *MockKnowledgeStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockKnowledgeStore) List(ctx context.Context) ([]*domain.KnowledgeEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := make([]*domain.KnowledgeEntry, 0, len(m.order))
	for _, id := range m.order {
		entries = append(entries, m.entries[id])
	}
	return entries, nil
}
