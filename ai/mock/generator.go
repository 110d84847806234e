package mock

import (
	"context"
	"sync"
)

// GenerateCall records one GenerateAnswer invocation.
type GenerateCall struct {
	Question  string
	Knowledge string
}

// MockAnswerGenerator is a test double for ai.AnswerGenerator.
// It allows custom behavior injection via function fields.
type MockAnswerGenerator struct {
	// GenerateAnswerFunc is called by GenerateAnswer if set.
	// If nil, the default behavior returns the knowledge context unchanged,
	// acting as an identity rewrite.
	GenerateAnswerFunc func(ctx context.Context, question, knowledge string) (string, error)

	mu    sync.Mutex
	calls []GenerateCall
}

// NewMockAnswerGenerator creates a mock generator with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockGenerator().
func NewMockAnswerGenerator() *MockAnswerGenerator {
	return &MockAnswerGenerator{}
}

// GenerateAnswer records the call and returns the injected or default result.
func (m *MockAnswerGenerator) GenerateAnswer(ctx context.Context, question, knowledge string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, GenerateCall{Question: question, Knowledge: knowledge})
	m.mu.Unlock()

	if m.GenerateAnswerFunc != nil {
		return m.GenerateAnswerFunc(ctx, question, knowledge)
	}

	return knowledge, nil
}

// Calls returns a copy of all recorded invocations.
func (m *MockAnswerGenerator) Calls() []GenerateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]GenerateCall(nil), m.calls...)
}

// CallCount returns the number of recorded invocations.
func (m *MockAnswerGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
