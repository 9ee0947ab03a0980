package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
	"github.com/kita-labs/tanyahr-core/internal/core/ports/driven"
	"github.com/kita-labs/tanyahr-core/internal/core/ports/driving"
)

// Ensure documentService implements DocumentService
var _ driving.DocumentService = (*documentService)(nil)

// documentService implements the DocumentService interface
type documentService struct {
	documentStore driven.DocumentStore
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(documentStore driven.DocumentStore) driving.DocumentService {
	return &documentService{documentStore: documentStore}
}

// Create stores a new document. Content is optional: a document may be
// registered by name only, in which case the prompt lists it without body.
func (s *documentService) Create(ctx context.Context, uploadedBy string, req driving.CreateDocumentRequest) (*domain.Document, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	doc := &domain.Document{
		ID:         uuid.NewString(),
		Name:       name,
		Content:    req.Content,
		UploadedAt: time.Now(),
		UploadedBy: uploadedBy,
	}

	if err := s.documentStore.Save(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// List retrieves all documents ordered by upload time
func (s *documentService) List(ctx context.Context) ([]*domain.Document, error) {
	return s.documentStore.List(ctx)
}

// Delete removes a document
func (s *documentService) Delete(ctx context.Context, id string) error {
	if _, err := s.documentStore.Get(ctx, id); err != nil {
		return err
	}
	return s.documentStore.Delete(ctx, id)
}
