package driven

import (
	"context"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
)

// DocumentStore persists uploaded documents in the key-prefix store
type DocumentStore interface {
	// Save stores a document
	Save(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Delete removes a document. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// List retrieves all documents ordered by upload time
	List(ctx context.Context) ([]*domain.Document, error)
}
