package driving

import (
	"context"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
)

// CreateDocumentRequest carries a document already reduced to plain text.
// PDF/text extraction is an external pre-processing step.
type CreateDocumentRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// DocumentService manages uploaded documents (HR only)
type DocumentService interface {
	// Create stores a new document
	Create(ctx context.Context, uploadedBy string, req CreateDocumentRequest) (*domain.Document, error)

	// List retrieves all documents ordered by upload time
	List(ctx context.Context) ([]*domain.Document, error)

	// Delete removes a document
	Delete(ctx context.Context, id string) error
}
