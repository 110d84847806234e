package ai

import "context"

// AnswerGenerator rewrites a canned knowledge context into a direct
// natural-language answer for a question. Implementations must be
// thread-safe for concurrent use.
type AnswerGenerator interface {
	// GenerateAnswer produces an answer to the question grounded in the
	// provided knowledge context. Returns an error when the backing service
	// is unavailable or produces no usable answer; callers treat failures
	// as non-fatal and fall back to the raw context.
	GenerateAnswer(ctx context.Context, question, knowledge string) (string, error)
}

// FollowUpSuggester produces related follow-up questions for a question the
// user just had answered. Implementations must be thread-safe for
// concurrent use.
type FollowUpSuggester interface {
	// SuggestFollowUps returns a short list of follow-up question strings.
	// Failures degrade to an empty suggestion list at the call site.
	SuggestFollowUps(ctx context.Context, question, previousAnswer string) ([]string, error)
}

// Provider aggregates the generative services for convenient initialization
// and lifecycle management.
type Provider interface {
	// AnswerGenerator returns the answer rewriting service.
	// The returned generator is safe for concurrent use.
	AnswerGenerator() AnswerGenerator

	// FollowUpSuggester returns the follow-up suggestion service.
	// The returned suggester is safe for concurrent use.
	FollowUpSuggester() FollowUpSuggester

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
