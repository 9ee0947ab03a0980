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
var _ driven.ChatStore = (*ChatStore)(nil)

const (
	chatHistoryPrefix = "chathistory:"
	chatLogPrefix     = "chatlog:"

	// chatSeqPrefix holds the per-user INCR counter. It lives outside the
	// history prefix so a history scan never picks it up.
	chatSeqPrefix = "chatseq:"
)

// ChatStore implements driven.ChatStore using Redis.
// Transcript turns are keyed chathistory:<userID>:<seq> with a zero-padded
// per-user sequence number, so lexical key order equals insertion order.
type ChatStore struct {
	client *redis.Client
}

// NewChatStore creates a new Redis-backed ChatStore
func NewChatStore(client *redis.Client) *ChatStore {
	return &ChatStore{client: client}
}

// AppendTurn appends a message to a user's transcript
func (s *ChatStore) AppendTurn(ctx context.Context, turn *domain.ChatTurn) error {
	seq, err := s.client.Incr(ctx, chatSeqPrefix+turn.UserID).Result()
	if err != nil {
		return fmt.Errorf("failed to advance chat sequence: %w", err)
	}

	data, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to marshal chat turn: %w", err)
	}

	key := fmt.Sprintf("%s%s:%012d", chatHistoryPrefix, turn.UserID, seq)
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save chat turn: %w", err)
	}

	return nil
}

// History retrieves a user's transcript in insertion order
func (s *ChatStore) History(ctx context.Context, userID string) ([]*domain.ChatTurn, error) {
	keys, err := scanKeys(ctx, s.client, chatHistoryPrefix+userID+":*")
	if err != nil {
		return nil, fmt.Errorf("failed to scan chat history: %w", err)
	}
	sort.Strings(keys)

	turns := make([]*domain.ChatTurn, 0, len(keys))
	for _, key := range keys {
		data, err := s.client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get chat turn: %w", err)
		}

		var turn domain.ChatTurn
		if err := json.Unmarshal(data, &turn); err != nil {
			return nil, fmt.Errorf("failed to unmarshal chat turn: %w", err)
		}
		turns = append(turns, &turn)
	}

	return turns, nil
}

// SaveLog stores one per-interaction log entry
func (s *ChatStore) SaveLog(ctx context.Context, entry *domain.ChatLogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal chat log entry: %w", err)
	}

	if err := s.client.Set(ctx, chatLogPrefix+entry.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save chat log entry: %w", err)
	}

	return nil
}

// Logs retrieves all interaction log entries ordered by time
func (s *ChatStore) Logs(ctx context.Context) ([]*domain.ChatLogEntry, error) {
	keys, err := scanKeys(ctx, s.client, chatLogPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to scan chat logs: %w", err)
	}

	entries := make([]*domain.ChatLogEntry, 0, len(keys))
	for _, key := range keys {
		data, err := s.client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get chat log entry: %w", err)
		}

		var entry domain.ChatLogEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal chat log entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})

	return entries, nil
}
