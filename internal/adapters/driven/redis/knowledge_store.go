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
var _ driven.KnowledgeStore = (*KnowledgeStore)(nil)

const knowledgePrefix = "trainingqa:"

// KnowledgeStore implements driven.KnowledgeStore using Redis.
// Each entry is a JSON value under trainingqa:<id>; listing scans the prefix.
type KnowledgeStore struct {
	client *redis.Client
}

// NewKnowledgeStore creates a new Redis-backed KnowledgeStore
func NewKnowledgeStore(client *redis.Client) *KnowledgeStore {
	return &KnowledgeStore{client: client}
}

// Save stores a knowledge entry
func (s *KnowledgeStore) Save(ctx context.Context, entry *domain.KnowledgeEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal knowledge entry: %w", err)
	}

	if err := s.client.Set(ctx, knowledgePrefix+entry.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save knowledge entry: %w", err)
	}

	return nil
}

// Get retrieves a knowledge entry by ID
func (s *KnowledgeStore) Get(ctx context.Context, id string) (*domain.KnowledgeEntry, error) {
	data, err := s.client.Get(ctx, knowledgePrefix+id).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get knowledge entry: %w", err)
	}

	var entry domain.KnowledgeEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal knowledge entry: %w", err)
	}

	return &entry, nil
}

// Delete removes a knowledge entry. Deleting a missing ID is not an error.
func (s *KnowledgeStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, knowledgePrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete knowledge entry: %w", err)
	}
	return nil
}

// List retrieves all knowledge entries ordered by creation time
func (s *KnowledgeStore) List(ctx context.Context) ([]*domain.KnowledgeEntry, error) {
	keys, err := scanKeys(ctx, s.client, knowledgePrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to scan knowledge entries: %w", err)
	}

	entries := make([]*domain.KnowledgeEntry, 0, len(keys))
	for _, key := range keys {
		data, err := s.client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			// Deleted between scan and read
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get knowledge entry: %w", err)
		}

		var entry domain.KnowledgeEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal knowledge entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	return entries, nil
}
