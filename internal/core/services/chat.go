package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
	"github.com/kita-labs/tanyahr-core/internal/core/ports/driven"
	"github.com/kita-labs/tanyahr-core/internal/core/ports/driving"
)

// Ensure chatService implements ChatService
var _ driving.ChatService = (*chatService)(nil)

// defaultGenerateTimeout bounds the only long-blocking step of an
// interaction. A timeout surfaces as ErrServiceUnavailable, not a fatal
// error.
const defaultGenerateTimeout = 30 * time.Second

// ChatConfig holds per-deployment chat settings
type ChatConfig struct {
	// Language is the answer language stated in the prompt preamble
	Language string

	// GenerateTimeout caps the generation call
	GenerateTimeout time.Duration
}

// chatService orchestrates one question/answer interaction: retrieval,
// context assembly, generation, classification, persistence, escalation.
// The steps are strictly sequential; the external stores are the only shared
// state between interactions.
type chatService struct {
	knowledgeStore  driven.KnowledgeStore
	documentStore   driven.DocumentStore
	chatStore       driven.ChatStore
	generator       driven.Generator
	review          driving.ReviewService
	language        string
	generateTimeout time.Duration
}

// NewChatService creates a new ChatService
func NewChatService(
	knowledgeStore driven.KnowledgeStore,
	documentStore driven.DocumentStore,
	chatStore driven.ChatStore,
	generator driven.Generator,
	review driving.ReviewService,
	cfg ChatConfig,
) driving.ChatService {
	if cfg.Language == "" {
		cfg.Language = domain.DefaultLanguage
	}
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = defaultGenerateTimeout
	}
	return &chatService{
		knowledgeStore:  knowledgeStore,
		documentStore:   documentStore,
		chatStore:       chatStore,
		generator:       generator,
		review:          review,
		language:        cfg.Language,
		generateTimeout: cfg.GenerateTimeout,
	}
}

// Ask runs one full interaction. A generation failure aborts before any
// persistence: no transcript turns, no log entry, no escalation.
func (s *chatService) Ask(ctx context.Context, asker driving.Asker, message string) (*domain.ChatAnswer, error) {
	if strings.TrimSpace(message) == "" {
		return nil, domain.ErrInvalidInput
	}

	entries, err := s.knowledgeStore.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := MatchKnowledge(message, entries)

	documents, err := s.documentStore.List(ctx)
	if err != nil {
		return nil, err
	}

	prompt := BuildSystemPrompt(s.language, matched, documents)

	genCtx, cancel := context.WithTimeout(ctx, s.generateTimeout)
	defer cancel()

	answer, err := s.generator.Generate(genCtx, prompt, message)
	if err != nil {
		return nil, err
	}

	escalated := domain.IsRefusal(answer)
	sources := sourcesLabel(matched, documents)
	now := time.Now()

	userTurn := &domain.ChatTurn{
		UserID:    asker.ID,
		UserName:  asker.Name,
		Role:      domain.ChatRoleUser,
		Text:      message,
		Timestamp: now,
	}
	if err := s.chatStore.AppendTurn(ctx, userTurn); err != nil {
		return nil, err
	}

	botTurn := &domain.ChatTurn{
		UserID:    asker.ID,
		UserName:  asker.Name,
		Role:      domain.ChatRoleBot,
		Text:      answer,
		Timestamp: now,
		Sources:   sources,
	}
	if err := s.chatStore.AppendTurn(ctx, botTurn); err != nil {
		return nil, err
	}

	// Derived per-interaction view of the same exchange
	logEntry := &domain.ChatLogEntry{
		ID:        uuid.NewString(),
		UserID:    asker.ID,
		UserName:  asker.Name,
		Message:   message,
		Response:  answer,
		Timestamp: now,
	}
	if err := s.chatStore.SaveLog(ctx, logEntry); err != nil {
		return nil, err
	}

	if escalated {
		// Fire and forget; an unreachable queue must not fail the answer
		_, _ = s.review.Escalate(ctx, message, asker)
	}

	return &domain.ChatAnswer{
		Response:  answer,
		Sources:   sources,
		Escalated: escalated,
	}, nil
}

// History retrieves a user's transcript in insertion order
func (s *chatService) History(ctx context.Context, userID string) ([]*domain.ChatTurn, error) {
	return s.chatStore.History(ctx, userID)
}

// Logs retrieves all per-interaction log entries
func (s *chatService) Logs(ctx context.Context) ([]*domain.ChatLogEntry, error) {
	return s.chatStore.Logs(ctx)
}

// sourcesLabel builds the human-readable sources line shown under an answer
func sourcesLabel(matched []*domain.KnowledgeEntry, documents []*domain.Document) string {
	var parts []string

	if len(matched) > 0 {
		parts = append(parts, fmt.Sprintf("%d entri Q&A terkait", len(matched)))
	}

	var names []string
	for _, doc := range documents {
		if doc.HasContent() {
			names = append(names, doc.Name)
		}
	}
	if len(names) > 0 {
		parts = append(parts, "dokumen: "+strings.Join(names, ", "))
	}

	if len(parts) == 0 {
		return ""
	}
	return "Sumber: " + strings.Join(parts, "; ")
}
