package mocks

import (
	"context"
	"sync"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
)

// MockPendingStore is a mock implementation of PendingStore for testing.
// List returns questions in insertion order.
type MockPendingStore struct {
	mu      sync.RWMutex
	pending map[string]*domain.PendingQuestion
	order   []string
}

// NewMockPendingStore creates a new MockPendingStore
func NewMockPendingStore() *MockPendingStore {
	return &MockPendingStore{
		pending: make(map[string]*domain.PendingQuestion),
	}
}

func (m *MockPendingStore) Save(ctx context.Context, q *domain.PendingQuestion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.pending[q.ID]; !exists {
		m.order = append(m.order, q.ID)
	}
	m.pending[q.ID] = q
	return nil
}

func (m *MockPendingStore) Get(ctx context.Context, id string) (*domain.PendingQuestion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.pending[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return q, nil
}

func (m *MockPendingStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockPendingStore) List(ctx context.Context) ([]*domain.PendingQuestion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	questions := make([]*domain.PendingQuestion, 0, len(m.order))
	for _, id := range m.order {
		questions = append(questions, m.pending[id])
	}
	return questions, nil
}
