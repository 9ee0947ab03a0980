package driving

import (
	"context"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
)

// ReviewService is the HR side of the feedback loop: escalated questions are
// listed, then either approved (converted into a knowledge entry) or
// rejected (dropped).
type ReviewService interface {
	// Escalate queues a question the chatbot could not answer. Fire and
	// forget: repeated escalations of identical text are not deduplicated.
	Escalate(ctx context.Context, question string, asker Asker) (*domain.PendingQuestion, error)

	// List retrieves all pending questions ordered by ask time
	List(ctx context.Context) ([]*domain.PendingQuestion, error)

	// Approve converts a pending question plus the supplied HR answer into a
	// knowledge entry with origin from_escalation, then removes the pending
	// record. The entry is always created before the pending record is
	// deleted so a crash in between never loses the escalation.
	Approve(ctx context.Context, pendingID, answer string) (*domain.KnowledgeEntry, error)

	// Reject removes a pending question without conversion
	Reject(ctx context.Context, pendingID string) error
}
