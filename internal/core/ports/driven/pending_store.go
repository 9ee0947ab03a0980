package driven

import (
	"context"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
)

// PendingStore persists escalated questions awaiting HR review
type PendingStore interface {
	// Save stores a pending question
	Save(ctx context.Context, q *domain.PendingQuestion) error

	// Get retrieves a pending question by ID
	Get(ctx context.Context, id string) (*domain.PendingQuestion, error)

	// Delete removes a pending question. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// List retrieves all pending questions ordered by ask time
	List(ctx context.Context) ([]*domain.PendingQuestion, error)
}
