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

// Ensure reviewService implements ReviewService
var _ driving.ReviewService = (*reviewService)(nil)

// reviewService implements the HR review side of the feedback loop
type reviewService struct {
	pendingStore   driven.PendingStore
	knowledgeStore driven.KnowledgeStore
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	pendingStore driven.PendingStore,
	knowledgeStore driven.KnowledgeStore,
) driving.ReviewService {
	return &reviewService{
		pendingStore:   pendingStore,
		knowledgeStore: knowledgeStore,
	}
}

// Escalate queues a question the chatbot could not answer. Identical
// questions are queued again on every flagged interaction; HR resolves
// duplicates during review.
func (s *reviewService) Escalate(ctx context.Context, question string, asker driving.Asker) (*domain.PendingQuestion, error) {
	if strings.TrimSpace(question) == "" {
		return nil, domain.ErrInvalidInput
	}

	pending := &domain.PendingQuestion{
		ID:        uuid.NewString(),
		Question:  question,
		AskerID:   asker.ID,
		AskerName: asker.Name,
		AskedAt:   time.Now(),
		Status:    domain.PendingOpen,
	}

	if err := s.pendingStore.Save(ctx, pending); err != nil {
		return nil, err
	}

	return pending, nil
}

// List retrieves all pending questions ordered by ask time
func (s *reviewService) List(ctx context.Context) ([]*domain.PendingQuestion, error) {
	return s.pendingStore.List(ctx)
}

// Approve converts a pending question into a knowledge entry and removes it
// from the queue. The entry is written before the pending record is deleted:
// a crash in between leaves a duplicate to clean up, never a lost
// escalation.
func (s *reviewService) Approve(ctx context.Context, pendingID, answer string) (*domain.KnowledgeEntry, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, domain.ErrInvalidInput
	}

	pending, err := s.pendingStore.Get(ctx, pendingID)
	if err != nil {
		return nil, err
	}

	entry := &domain.KnowledgeEntry{
		ID:            uuid.NewString(),
		Question:      pending.Question,
		Answer:        answer,
		CreatedAt:     time.Now(),
		Origin:        domain.OriginFromEscalation,
		OriginalAsker: pending.AskerID,
	}

	if err := s.knowledgeStore.Save(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.pendingStore.Delete(ctx, pendingID); err != nil {
		return nil, err
	}

	return entry, nil
}

// Reject removes a pending question without conversion. Missing IDs are
// reported so HR notices a question resolved elsewhere.
func (s *reviewService) Reject(ctx context.Context, pendingID string) error {
	if _, err := s.pendingStore.Get(ctx, pendingID); err != nil {
		return err
	}
	return s.pendingStore.Delete(ctx, pendingID)
}
