package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/collegewala/ai"
	"github.com/poiesic/collegewala/core"
	"github.com/poiesic/collegewala/storage"
)

// Tuning constants. The thresholds are hand-tuned and preserved for
// behavioral compatibility; treat them as tunable parameters, not derived
// values.
const (
	// SimilarityThreshold is the minimum corpus score (exclusive) for a
	// corpus candidate to count as a hit.
	SimilarityThreshold = 0.4

	// RelearnCutoff is the corpus score at or above which a generated
	// answer is considered already well-covered and not worth persisting.
	RelearnCutoff = 0.95

	// corpusCandidateLimit is how many scored candidates tier 4 considers.
	corpusCandidateLimit = 3

	// selfHealContextSize is how many corpus answers, in corpus order, feed
	// the last-resort generation context.
	selfHealContextSize = 10
)

// Outcome names the terminal state a query reached.
type Outcome string

const (
	OutcomeClarification Outcome = "clarification"
	OutcomeGreeting      Outcome = "greeting"
	OutcomeKeywordHit    Outcome = "keyword-hit"
	OutcomeCorpusHit     Outcome = "corpus-hit"
	OutcomeSelfHealed    Outcome = "self-healed"
	OutcomeNoMatch       Outcome = "no-match"
)

// Response is the orchestrator's answer to a single query.
type Response struct {
	Answer      string
	Suggestions []string
	Outcome     Outcome
}

// Knowledge provides the memoized corpus and keyword index. Implementations
// build both lazily, at most once per process, and must be safe for
// concurrent first callers.
type Knowledge interface {
	// Corpus returns the full searchable corpus in deterministic order.
	Corpus() ([]core.SearchableItem, error)

	// Lookup returns the best keyword candidate for the query, nil on a miss.
	Lookup(query string) (*core.KeywordMatch, error)
}

// Responder sequences keyword lookup, scored corpus search, last-resort
// generation, and the fixed fallback for a single query. It is the sole
// consumer-facing entry point of the retrieval core.
//
// Every collaborator call is best-effort: failures are caught, logged, and
// degrade to the next tier. Respond never returns an error.
type Responder struct {
	knowledge Knowledge
	generator ai.AnswerGenerator
	suggester ai.FollowUpSuggester
	training  storage.TrainingWriter
	telemetry storage.TelemetryLog
	logger    *slog.Logger
}

// Option configures a Responder.
type Option func(*Responder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Responder) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewResponder creates a new responder.
func NewResponder(
	knowledge Knowledge,
	provider ai.Provider,
	training storage.TrainingWriter,
	telemetry storage.TelemetryLog,
	opts ...Option,
) (*Responder, error) {
	if knowledge == nil {
		return nil, ErrKnowledgeRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}
	if training == nil {
		return nil, ErrTrainingWriterRequired
	}
	if telemetry == nil {
		return nil, ErrTelemetryRequired
	}

	r := &Responder{
		knowledge: knowledge,
		generator: provider.AnswerGenerator(),
		suggester: provider.FollowUpSuggester(),
		training:  training,
		telemetry: telemetry,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Respond answers a single query.
func (r *Responder) Respond(ctx context.Context, query string) *Response {
	return r.RespondWithMonitor(ctx, query, nil)
}

// RespondWithMonitor answers a single query, reporting each stage to the
// monitor.
func (r *Responder) RespondWithMonitor(ctx context.Context, query string, monitor Monitor) *Response {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	// 1. Empty queries get an immediate clarification; no scoring runs.
	if strings.TrimSpace(query) == "" {
		response := &Response{
			Answer:      clarificationAnswer,
			Suggestions: append([]string(nil), clarificationSuggestions...),
			Outcome:     OutcomeClarification,
		}
		monitor.Finish(response)
		return response
	}

	// 2. Greetings bypass all scoring.
	if IsGreeting(query) {
		response := &Response{
			Answer:      greetingAnswer,
			Suggestions: append([]string(nil), greetingSuggestions...),
			Outcome:     OutcomeGreeting,
		}
		monitor.Finish(response)
		return response
	}

	// 3. Keyword index lookup.
	match, err := r.knowledge.Lookup(query)
	if err != nil {
		r.logger.Error("keyword lookup failed", "query", query, "err", err)
	}
	monitor.AfterKeywordLookup(match)
	if match != nil {
		response := r.generateFrom(ctx, query, match.Answer, true)
		response.Outcome = OutcomeKeywordHit
		monitor.Finish(response)
		return response
	}

	// 4. Scored corpus search.
	corpus, err := r.knowledge.Corpus()
	if err != nil {
		r.logger.Error("corpus unavailable", "err", err)
	}
	matches := BestMatches(query, corpus, corpusCandidateLimit)
	monitor.AfterCorpusSearch(matches)
	if len(matches) > 0 && matches[0].Score > SimilarityThreshold {
		best := matches[0]
		// Scores at or above the relearn cutoff are already well-covered;
		// persisting them again would only grow the learned store.
		persist := best.Score < RelearnCutoff
		response := r.generateFrom(ctx, query, best.Item.Answer, persist)
		response.Outcome = OutcomeCorpusHit
		monitor.Finish(response)
		return response
	}

	// 5. Last-resort self-healing generation over general knowledge.
	monitor.SelfHealing()
	if response, ok := r.selfHeal(ctx, query, corpus); ok {
		monitor.Finish(response)
		return response
	}

	// 6. Nothing worked; log and fall back.
	if err := r.telemetry.LogUnansweredQuestion(query); err != nil {
		r.logger.Error("failed to log unanswered question", "query", query, "err", err)
	}
	response := &Response{
		Answer:      fallbackAnswer,
		Suggestions: append([]string(nil), fallbackSuggestions...),
		Outcome:     OutcomeNoMatch,
	}
	monitor.Finish(response)
	return response
}

// generateFrom runs answer generation and follow-up suggestion concurrently
// over the winning canned answer and awaits both. Generator failure falls
// back to the raw canned answer with no suggestions and no persistence;
// suggester failure only empties the suggestion list.
func (r *Responder) generateFrom(ctx context.Context, query, canned string, persist bool) *Response {
	type answerResult struct {
		answer string
		err    error
	}
	type suggestResult struct {
		suggestions []string
		err         error
	}

	answerCh := make(chan answerResult, 1)
	suggestCh := make(chan suggestResult, 1)

	go func() {
		answer, err := r.generator.GenerateAnswer(ctx, query, canned)
		answerCh <- answerResult{answer: answer, err: err}
	}()
	go func() {
		suggestions, err := r.suggester.SuggestFollowUps(ctx, query, canned)
		suggestCh <- suggestResult{suggestions: suggestions, err: err}
	}()

	generated := <-answerCh
	suggested := <-suggestCh

	if generated.err != nil {
		r.logger.Warn("answer generation failed, serving canned answer",
			"query", query, "err", generated.err)
		return &Response{Answer: canned, Suggestions: []string{}}
	}

	suggestions := suggested.suggestions
	if suggested.err != nil {
		r.logger.Warn("follow-up suggestion failed", "query", query, "err", suggested.err)
		suggestions = []string{}
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	if persist {
		if err := r.training.SaveLearnedAnswer(query, generated.answer); err != nil {
			r.logger.Error("failed to persist learned answer", "query", query, "err", err)
		}
	}

	return &Response{Answer: generated.answer, Suggestions: suggestions}
}

// selfHeal asks the generator to answer from general knowledge: the first
// selfHealContextSize corpus answers in corpus order, prefixed with a note
// that no specific match was found.
func (r *Responder) selfHeal(ctx context.Context, query string, corpus []core.SearchableItem) (*Response, bool) {
	limit := selfHealContextSize
	if len(corpus) < limit {
		limit = len(corpus)
	}
	answers := make([]string, 0, limit)
	for _, item := range corpus[:limit] {
		answers = append(answers, item.Answer)
	}

	knowledge := selfHealPreamble + strings.Join(answers, "\n\n")
	answer, err := r.generator.GenerateAnswer(ctx, query, knowledge)
	if err != nil || strings.TrimSpace(answer) == "" {
		r.logger.Warn("self-healing generation failed", "query", query, "err", err)
		return nil, false
	}

	if err := r.training.SaveLearnedAnswer(query, answer); err != nil {
		r.logger.Error("failed to persist learned answer", "query", query, "err", err)
	}

	return &Response{
		Answer:      answer,
		Suggestions: []string{},
		Outcome:     OutcomeSelfHealed,
	}, true
}
