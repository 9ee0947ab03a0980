package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
	"github.com/kita-labs/tanyahr-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.PendingStore = (*PendingStore)(nil)

const pendingPrefix = "unanswered:"

// PendingStore implements driven.PendingStore using Redis
type PendingStore struct {
	client *redis.Client
}

// NewPendingStore creates a new Redis-backed PendingStore
func NewPendingStore(client *redis.Client) *PendingStore {
	return &PendingStore{client: client}
}

// Save stores a pending question
func (s *PendingStore) Save(ctx context.Context, pending *domain.PendingQuestion) error {
	data, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to marshal pending question: %w", err)
	}

	if err := s.client.Set(ctx, pendingPrefix+pending.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save pending question: %w", err)
	}

	return nil
}

// Get retrieves a pending question by ID
func (s *PendingStore) Get(ctx context.Context, id string) (*domain.PendingQuestion, error) {
	data, err := s.client.Get(ctx, pendingPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pending question: %w", err)
	}

	var pending domain.PendingQuestion
	if err := json.Unmarshal(data, &pending); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending question: %w", err)
	}

	return &pending, nil
}

// Delete removes a pending question. Deleting a missing ID is not an error.
func (s *PendingStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, pendingPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete pending question: %w", err)
	}
	return nil
}

// List retrieves all pending questions ordered by ask time
func (s *PendingStore) List(ctx context.Context) ([]*domain.PendingQuestion, error) {
	keys, err := scanKeys(ctx, s.client, pendingPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to scan pending questions: %w", err)
	}

	questions := make([]*domain.PendingQuestion, 0, len(keys))
	for _, key := range keys {
		data, err := s.client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get pending question: %w", err)
		}

		var pending domain.PendingQuestion
		if err := json.Unmarshal(data, &pending); err != nil {
			return nil, fmt.Errorf("failed to unmarshal pending question: %w", err)
		}
		questions = append(questions, &pending)
	}

	sort.SliceStable(questions, func(i, j int) bool {
		if questions[i].AskedAt.Equal(questions[j].AskedAt) {
			return questions[i].ID < questions[j].ID
		}
		return questions[i].AskedAt.Before(questions[j].AskedAt)
	})

	return questions, nil
}
