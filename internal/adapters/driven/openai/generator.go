package openai

import (
	"context"
	"log"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/kita-labs/tanyahr-core/internal/core/domain"
	"github.com/kita-labs/tanyahr-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.Generator = (*Generator)(nil)

// DefaultModel is the chat model used when none is configured
const DefaultModel = openai.GPT4oMini

// citationPattern matches bracketed numeric citations some models emit
// when answering from supplied context, e.g. "lihat dokumen [1]".
var citationPattern = regexp.MustCompile(`\[\d+\]`)

// chatAPI is the slice of the OpenAI client the generator needs
type chatAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator implements driven.Generator against the OpenAI chat completion
// API. A Generator built without an API key is still usable: every call
// fails with ErrServiceMisconfigured so the chat flow degrades instead of
// crashing at startup.
type Generator struct {
	api   chatAPI
	model string
}

// Config holds generator configuration
type Config struct {
	// APIKey authenticates against the OpenAI API. Empty means the
	// generation service is not configured for this deployment.
	APIKey string

	// Model overrides the default chat model
	Model string
}

// NewGenerator creates a new OpenAI-backed Generator
func NewGenerator(cfg Config) *Generator {
	g := &Generator{model: cfg.Model}
	if g.model == "" {
		g.model = DefaultModel
	}
	if cfg.APIKey != "" {
		g.api = openai.NewClient(cfg.APIKey)
	}
	return g
}

// Generate produces an answer for the question under the given system prompt
func (g *Generator) Generate(ctx context.Context, systemPrompt, question string) (string, error) {
	if g.api == nil {
		return "", domain.ErrServiceMisconfigured
	}

	resp, err := g.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	})
	if err != nil {
		log.Printf("chat completion failed: %v", err)
		return "", domain.ErrServiceUnavailable
	}

	if len(resp.Choices) == 0 {
		return "", domain.ErrServiceUnavailable
	}

	return sanitize(resp.Choices[0].Message.Content), nil
}

// Model returns the configured chat model name
func (g *Generator) Model() string {
	return g.model
}

// sanitize strips bracketed citations and surrounding whitespace
func sanitize(answer string) string {
	return strings.TrimSpace(citationPattern.ReplaceAllString(answer, ""))
}
