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

// Ensure knowledgeService implements KnowledgeService
var _ driving.KnowledgeService = (*knowledgeService)(nil)

// knowledgeService implements the KnowledgeService interface
type knowledgeService struct {
	knowledgeStore driven.KnowledgeStore
}

// NewKnowledgeService creates a new KnowledgeService
func NewKnowledgeService(knowledgeStore driven.KnowledgeStore) driving.KnowledgeService {
	return &knowledgeService{knowledgeStore: knowledgeStore}
}

// Create adds a new manually curated entry. Duplicate questions are allowed;
// ranking resolves conflicts at query time.
func (s *knowledgeService) Create(ctx context.Context, req driving.CreateKnowledgeRequest) (*domain.KnowledgeEntry, error) {
	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	if question == "" || answer == "" {
		return nil, domain.ErrInvalidInput
	}

	entry := &domain.KnowledgeEntry{
		ID:        uuid.NewString(),
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now(),
		Origin:    domain.OriginManual,
	}

	if err := s.knowledgeStore.Save(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// List retrieves all entries ordered by creation time
func (s *knowledgeService) List(ctx context.Context) ([]*domain.KnowledgeEntry, error) {
	return s.knowledgeStore.List(ctx)
}

// Delete removes an entry
func (s *knowledgeService) Delete(ctx context.Context, id string) error {
	if _, err := s.knowledgeStore.Get(ctx, id); err != nil {
		return err
	}
	return s.knowledgeStore.Delete(ctx, id)
}
