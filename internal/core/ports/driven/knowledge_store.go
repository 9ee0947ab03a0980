package driven

import (
	"context"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
)

// KnowledgeStore persists curated Q&A entries in the key-prefix store
type KnowledgeStore interface {
	// Save stores a knowledge entry
	Save(ctx context.Context, entry *domain.KnowledgeEntry) error

	// Get retrieves a knowledge entry by ID
	Get(ctx context.Context, id string) (*domain.KnowledgeEntry, error)

	// Delete removes a knowledge entry. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// List retrieves all knowledge entries ordered by creation time
	List(ctx context.Context) ([]*domain.KnowledgeEntry, error)
}
