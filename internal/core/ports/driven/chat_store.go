package driven

import (
	"context"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
)

// ChatStore persists per-message transcripts and the denormalized
// per-interaction log. Both views are written from the same interaction; the
// log is a derived read model, never a second source of truth.
type ChatStore interface {
	// AppendTurn appends a message to a user's transcript. Retrieval order is
	// insertion order, preserved by the store's monotonic key component.
	AppendTurn(ctx context.Context, turn *domain.ChatTurn) error

	// History retrieves a user's transcript in insertion order
	History(ctx context.Context, userID string) ([]*domain.ChatTurn, error)

	// SaveLog stores one per-interaction log entry
	SaveLog(ctx context.Context, entry *domain.ChatLogEntry) error

	// Logs retrieves all interaction log entries ordered by time
	Logs(ctx context.Context) ([]*domain.ChatLogEntry, error)
}
