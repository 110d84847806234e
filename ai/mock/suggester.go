package mock

import (
	"context"
	"sync"
)

// SuggestCall records one SuggestFollowUps invocation.
type SuggestCall struct {
	Question       string
	PreviousAnswer string
}

// MockFollowUpSuggester is a test double for ai.FollowUpSuggester.
// It allows custom behavior injection via function fields.
type MockFollowUpSuggester struct {
	// SuggestFollowUpsFunc is called by SuggestFollowUps if set.
	// If nil, the default behavior returns a fixed pair of suggestions.
	SuggestFollowUpsFunc func(ctx context.Context, question, previousAnswer string) ([]string, error)

	mu    sync.Mutex
	calls []SuggestCall
}

// NewMockFollowUpSuggester creates a mock suggester with default behavior.
func NewMockFollowUpSuggester() *MockFollowUpSuggester {
	return &MockFollowUpSuggester{}
}

// SuggestFollowUps records the call and returns the injected or default result.
func (m *MockFollowUpSuggester) SuggestFollowUps(ctx context.Context, question, previousAnswer string) ([]string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, SuggestCall{Question: question, PreviousAnswer: previousAnswer})
	m.mu.Unlock()

	if m.SuggestFollowUpsFunc != nil {
		return m.SuggestFollowUpsFunc(ctx, question, previousAnswer)
	}

	return []string{
		"What courses are offered?",
		"What is the fee structure?",
	}, nil
}

// Calls returns a copy of all recorded invocations.
func (m *MockFollowUpSuggester) Calls() []SuggestCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SuggestCall(nil), m.calls...)
}

// CallCount returns the number of recorded invocations.
func (m *MockFollowUpSuggester) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
