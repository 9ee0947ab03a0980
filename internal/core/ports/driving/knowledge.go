package driving

import (
	"context"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
)

// CreateKnowledgeRequest represents a request to add a curated Q&A entry
type CreateKnowledgeRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// KnowledgeService manages the curated Q&A knowledge base (HR only)
type KnowledgeService interface {
	// Create adds a new manually curated entry
	Create(ctx context.Context, req CreateKnowledgeRequest) (*domain.KnowledgeEntry, error)

	// List retrieves all entries ordered by creation time
	List(ctx context.Context) ([]*domain.KnowledgeEntry, error)

	// Delete removes an entry
	Delete(ctx context.Context, id string) error
}
