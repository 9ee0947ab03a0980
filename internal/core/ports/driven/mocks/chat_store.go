package mocks

import (
	"context"
	"sync"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
)

// MockChatStore is a mock implementation of ChatStore for testing
type MockChatStore struct {
	mu    sync.RWMutex
	turns map[string][]*domain.ChatTurn
	logs  []*domain.ChatLogEntry
}

// NewMockChatStore creates a new MockChatStore
func NewMockChatStore() *MockChatStore {
	return &MockChatStore{
		turns: make(map[string][]*domain.ChatTurn),
	}
}

func (m *MockChatStore) AppendTurn(ctx context.Context, turn *domain.ChatTurn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns[turn.UserID] = append(m.turns[turn.UserID], turn)
	return nil
}

func (m *MockChatStore) History(ctx context.Context, userID string) ([]*domain.ChatTurn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	history := make([]*domain.ChatTurn, len(m.turns[userID]))
	copy(history, m.turns[userID])
	return history, nil
}

func (m *MockChatStore) SaveLog(ctx context.Context, entry *domain.ChatLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, entry)
	return nil
}

func (m *MockChatStore) Logs(ctx context.Context) ([]*domain.ChatLogEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	logs := make([]*domain.ChatLogEntry, len(m.logs))
	copy(logs, m.logs)
	return logs, nil
}
