package mocks

import (
	"context"
	"sync"
)

// MockGenerator is a scriptable Generator for testing. Set Response/Err to
// drive the outcome; recorded calls can be inspected afterwards.
type MockGenerator struct {
	mu       sync.Mutex
	Response string
	Err      error

	// Respond, when set, overrides Response/Err per call
	Respond func(systemPrompt, question string) (string, error)

	Prompts   []string
	Questions []string
}

// NewMockGenerator creates a MockGenerator returning the given response
func NewMockGenerator(response string) *MockGenerator {
	return &MockGenerator{Response: response}
}

func (m *MockGenerator) Generate(ctx context.Context, systemPrompt, question string) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, systemPrompt)
	m.Questions = append(m.Questions, question)
	respond := m.Respond
	response, err := m.Response, m.Err
	m.mu.Unlock()

	if respond != nil {
		return respond(systemPrompt, question)
	}
	if err != nil {
		return "", err
	}
	return response, nil
}

func (m *MockGenerator) Model() string {
	return "mock-model"
}

// LastPrompt returns the system prompt from the most recent call
func (m *MockGenerator) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Prompts) == 0 {
		return ""
	}
	return m.Prompts[len(m.Prompts)-1]
}

// Calls returns how many times Generate was invoked
func (m *MockGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
