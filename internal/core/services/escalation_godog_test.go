package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
	"github.com/kita-labs/tanyahr-core/internal/core/ports/driven/mocks"
	"github.com/kita-labs/tanyahr-core/internal/core/ports/driving"
)

// escalationWorld holds the state shared by the steps of one scenario
type escalationWorld struct {
	knowledge *mocks.MockKnowledgeStore
	pending   *mocks.MockPendingStore
	generator *mocks.MockGenerator

	chat   driving.ChatService
	review driving.ReviewService

	lastAnswer *domain.ChatAnswer
}

func newEscalationWorld() *escalationWorld {
	w := &escalationWorld{
		knowledge: mocks.NewMockKnowledgeStore(),
		pending:   mocks.NewMockPendingStore(),
		generator: mocks.NewMockGenerator(""),
	}
	w.review = NewReviewService(w.pending, w.knowledge)
	w.chat = NewChatService(
		w.knowledge,
		mocks.NewMockDocumentStore(),
		mocks.NewMockChatStore(),
		w.generator,
		w.review,
		ChatConfig{},
	)
	return w
}

func (w *escalationWorld) emptyKnowledgeBase() error {
	entries, err := w.knowledge.List(context.Background())
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := w.knowledge.Delete(context.Background(), entry.ID); err != nil {
			return err
		}
	}
	return nil
}

func (w *escalationWorld) emptyReviewQueue() error {
	queued, err := w.pending.List(context.Background())
	if err != nil {
		return err
	}
	for _, q := range queued {
		if err := w.pending.Delete(context.Background(), q.ID); err != nil {
			return err
		}
	}
	return nil
}

func (w *escalationWorld) generatorAlwaysRefuses() error {
	w.generator.Response = domain.RefusalAnswer
	return nil
}

func (w *escalationWorld) generatorAnswers(answer string) error {
	w.generator.Response = answer
	return nil
}

func (w *escalationWorld) employeeAsks(name, question string) error {
	asker := driving.Asker{ID: strings.ToLower(name), Name: name}
	answer, err := w.chat.Ask(context.Background(), asker, question)
	if err != nil {
		return err
	}
	w.lastAnswer = answer
	return nil
}

func (w *escalationWorld) answerIsEscalated() error {
	if w.lastAnswer == nil {
		return fmt.Errorf("no answer recorded")
	}
	if !w.lastAnswer.Escalated {
		return fmt.Errorf("expected answer to be escalated")
	}
	return nil
}

func (w *escalationWorld) answerIsNotEscalated() error {
	if w.lastAnswer == nil {
		return fmt.Errorf("no answer recorded")
	}
	if w.lastAnswer.Escalated {
		return fmt.Errorf("expected answer not to be escalated")
	}
	return nil
}

func (w *escalationWorld) reviewQueueContains(count int) error {
	queued, err := w.review.List(context.Background())
	if err != nil {
		return err
	}
	if len(queued) != count {
		return fmt.Errorf("review queue has %d questions, want %d", len(queued), count)
	}
	return nil
}

func (w *escalationWorld) queuedQuestionReads(question, askerName string) error {
	queued, err := w.review.List(context.Background())
	if err != nil {
		return err
	}
	if len(queued) == 0 {
		return fmt.Errorf("review queue is empty")
	}
	q := queued[0]
	if q.Question != question {
		return fmt.Errorf("queued question = %q, want %q", q.Question, question)
	}
	if q.AskerName != askerName {
		return fmt.Errorf("queued asker = %q, want %q", q.AskerName, askerName)
	}
	return nil
}

func (w *escalationWorld) hrApprovesWith(answer string) error {
	queued, err := w.review.List(context.Background())
	if err != nil {
		return err
	}
	if len(queued) == 0 {
		return fmt.Errorf("review queue is empty, nothing to approve")
	}
	_, err = w.review.Approve(context.Background(), queued[0].ID, answer)
	return err
}

func (w *escalationWorld) hrRejects() error {
	queued, err := w.review.List(context.Background())
	if err != nil {
		return err
	}
	if len(queued) == 0 {
		return fmt.Errorf("review queue is empty, nothing to reject")
	}
	return w.review.Reject(context.Background(), queued[0].ID)
}

func (w *escalationWorld) knowledgeBaseContainsEntryFor(question string) error {
	entries, err := w.knowledge.List(context.Background())
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Question == question {
			return nil
		}
	}
	return fmt.Errorf("no knowledge entry for %q", question)
}

func (w *escalationWorld) knowledgeBaseContains(count int) error {
	entries, err := w.knowledge.List(context.Background())
	if err != nil {
		return err
	}
	if len(entries) != count {
		return fmt.Errorf("knowledge base has %d entries, want %d", len(entries), count)
	}
	return nil
}

func (w *escalationWorld) entryOriginatesFromEscalationBy(askerName string) error {
	entries, err := w.knowledge.List(context.Background())
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Origin == domain.OriginFromEscalation && entry.OriginalAsker == strings.ToLower(askerName) {
			return nil
		}
	}
	return fmt.Errorf("no entry escalated by %q", askerName)
}

func (w *escalationWorld) promptContains(text string) error {
	prompt := w.generator.LastPrompt()
	if !strings.Contains(prompt, text) {
		return fmt.Errorf("generation prompt does not contain %q", text)
	}
	return nil
}

func InitializeEscalationScenario(sc *godog.ScenarioContext) {
	w := newEscalationWorld()

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*w = *newEscalationWorld()
		return ctx, nil
	})

	sc.Step(`^an empty knowledge base$`, w.emptyKnowledgeBase)
	sc.Step(`^an empty review queue$`, w.emptyReviewQueue)
	sc.Step(`^the generator always refuses$`, w.generatorAlwaysRefuses)
	sc.Step(`^the generator answers "([^"]*)"$`, w.generatorAnswers)
	sc.Step(`^employee "([^"]*)" asks "([^"]*)"$`, w.employeeAsks)
	sc.Step(`^the answer is marked as escalated$`, w.answerIsEscalated)
	sc.Step(`^the answer is not marked as escalated$`, w.answerIsNotEscalated)
	sc.Step(`^the review queue contains (\d+) questions?$`, w.reviewQueueContains)
	sc.Step(`^the queued question reads "([^"]*)" from "([^"]*)"$`, w.queuedQuestionReads)
	sc.Step(`^HR approves the queued question with answer "([^"]*)"$`, w.hrApprovesWith)
	sc.Step(`^HR rejects the queued question$`, w.hrRejects)
	sc.Step(`^the knowledge base contains an entry for "([^"]*)"$`, w.knowledgeBaseContainsEntryFor)
	sc.Step(`^the knowledge base contains (\d+) entries$`, w.knowledgeBaseContains)
	sc.Step(`^that entry originates from an escalation by "([^"]*)"$`, w.entryOriginatesFromEscalationBy)
	sc.Step(`^the generation prompt contains "([^"]*)"$`, w.promptContains)
}

func TestEscalationFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeEscalationScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("feature suite failed")
	}
}
