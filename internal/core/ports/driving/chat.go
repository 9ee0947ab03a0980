package driving

import (
	"context"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
)

// Asker identifies the user submitting a question
type Asker struct {
	ID   string
	Name string
}

// ChatService runs question/answer interactions and exposes the transcripts
// they produce. Each interaction is an independent unit of work; all state
// lives in the external stores.
type ChatService interface {
	// Ask runs one full interaction: retrieve knowledge, assemble the
	// bounded prompt, generate an answer, record the exchange, and escalate
	// to HR review when the answer is a refusal. A generation failure aborts
	// the interaction with nothing persisted.
	Ask(ctx context.Context, asker Asker, message string) (*domain.ChatAnswer, error)

	// History retrieves a user's transcript in insertion order
	History(ctx context.Context, userID string) ([]*domain.ChatTurn, error)

	// Logs retrieves all per-interaction log entries (HR reporting)
	Logs(ctx context.Context) ([]*domain.ChatLogEntry, error)
}
