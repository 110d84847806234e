package storage

import "github.com/poiesic/collegewala/core"

// KnowledgeSource provides read access to every input of a corpus or
// keyword-index build. Loads return data in document order so that corpus
// order is deterministic across processes.
type KnowledgeSource interface {
	// LoadLearnedAnswers returns the learned-answers log.
	// A missing store is not an error; it reads as empty.
	LoadLearnedAnswers() ([]core.LearnedAnswer, error)

	// LoadIntents returns the declared intents.
	LoadIntents() ([]core.Intent, error)

	// LoadPrograms returns the program records.
	LoadPrograms() ([]core.Program, error)

	// LoadInternships returns the internship records.
	LoadInternships() ([]core.Internship, error)

	// LoadFAQs returns the FAQ entries in document order.
	LoadFAQs() ([]core.FAQItem, error)

	// LoadKnowledgeTree returns the primary knowledge tree.
	LoadKnowledgeTree() (*core.Node, error)

	// LoadAuxiliaryTree returns the auxiliary knowledge tree.
	LoadAuxiliaryTree() (*core.Node, error)

	// LoadFailedQueries returns the failed-query training set in document
	// order. A missing store is not an error; it reads as empty.
	LoadFailedQueries() ([]core.FailedQueryEntry, error)
}

// TrainingWriter persists newly learned answers. Callers treat failures as
// best-effort: they are logged, never raised past the orchestrator.
type TrainingWriter interface {
	// SaveLearnedAnswer writes a (question, answer) pair to the
	// learned-answers store. An existing entry with the same normalized
	// question is replaced rather than duplicated.
	SaveLearnedAnswer(question, answer string) error
}

// FailedQueryWriter rewrites the failed-query training set. Only the miner
// writes this store, and only as a whole-file replace.
type FailedQueryWriter interface {
	// SaveFailedQueries writes the full training set in slice order.
	SaveFailedQueries(entries []core.FailedQueryEntry) error
}

// AuxiliarySource exposes the auxiliary knowledge store as keyed entries.
// The corpus builder walks the same store as a tree; the miner matches
// against its entries directly.
type AuxiliarySource interface {
	// LoadAuxiliaryEntries returns the auxiliary entries in document order.
	LoadAuxiliaryEntries() ([]core.FailedQueryEntry, error)
}

// FeedbackSource provides read access to the conversation feedback log.
type FeedbackSource interface {
	// LoadFeedback returns all recorded conversations. Unlike the optional
	// stores, a missing or unreadable feedback log is an error: the miner
	// cannot run without its ground truth.
	LoadFeedback() ([]core.FeedbackRecord, error)
}

// TelemetryLog receives best-effort telemetry. Failures are logged by the
// caller and never interrupt a request.
type TelemetryLog interface {
	// LogUnansweredQuestion appends a question no tier could answer.
	LogUnansweredQuestion(question string) error

	// LogFeedback appends a conversation with the user's verdict.
	LogFeedback(history []core.Turn, verdict core.Verdict) error
}
