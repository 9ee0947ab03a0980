package driven

import "context"

// Generator is the opaque text-completion backend. One call carries the full
// system instruction plus a single user message; there is no streaming and no
// multi-turn memory — conversational context is rebuilt per call by the
// prompt assembler.
type Generator interface {
	// Generate produces an answer for the question under the given system
	// prompt. Output is normalized: bracketed citation markers like [1] are
	// stripped and surrounding whitespace trimmed. Returns
	// domain.ErrServiceMisconfigured when no credential is configured and
	// domain.ErrServiceUnavailable when the backend is unreachable, errors,
	// or times out.
	Generate(ctx context.Context, systemPrompt, question string) (string, error)

	// Model returns the model name being used
	Model() string
}
