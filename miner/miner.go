// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package miner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/collegewala/core"
	"github.com/poiesic/collegewala/storage"
)

const (
	// maxCandidates caps how many of the most frequent failed queries a
	// single run considers.
	maxCandidates = 30

	// acceptThreshold is the minimum cosine similarity, exclusive, for an
	// auxiliary answer to be adopted.
	acceptThreshold = 0.2
)

// Store is the slice of storage the miner needs: the auxiliary entries it
// matches against and the training set it extends.
type Store interface {
	storage.AuxiliarySource
	storage.FailedQueryWriter

	// LoadFailedQueries returns the current training set in document order.
	LoadFailedQueries() ([]core.FailedQueryEntry, error)
}

// Report summarizes one mining run.
type Report struct {
	QueriesAnalyzed int
	EntriesAdded    int
	TotalEntries    int
}

// Miner extracts failed conversations from the feedback log and grows the
// failed-query training set with auxiliary answers that score above the
// similarity cutoff. A run is idempotent: questions already in the training
// set are skipped.
type Miner struct {
	feedback storage.FeedbackSource
	store    Store
	pool     *ants.Pool
	progress io.Writer
	logger   *slog.Logger
}

// Option configures a Miner.
type Option func(*Miner) error

// WithPoolSize sets the worker pool size for candidate scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(m *Miner) error {
		if size < 1 {
			size = 1
		}
		if m.pool != nil {
			m.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		m.pool = pool
		return nil
	}
}

// WithProgress sets the writer that receives the human-readable run report.
// Default is io.Discard.
func WithProgress(w io.Writer) Option {
	return func(m *Miner) error {
		if w == nil {
			w = io.Discard
		}
		m.progress = w
		return nil
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Miner) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger.With("component", "miner")
		return nil
	}
}

// NewMiner creates a miner over the given feedback source and training
// store.
func NewMiner(feedback storage.FeedbackSource, store Store, opts ...Option) (*Miner, error) {
	if feedback == nil {
		return nil, ErrFeedbackRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}

	size := runtime.NumCPU() / 2
	if size < 1 {
		size = 1
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}

	m := &Miner{
		feedback: feedback,
		store:    store,
		pool:     pool,
		progress: io.Discard,
		logger:   slog.Default().With("component", "miner"),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			m.pool.Release()
			return nil, err
		}
	}
	return m, nil
}

// Close releases the worker pool.
func (m *Miner) Close() error {
	m.pool.Release()
	return nil
}

// Run executes one mining pass and rewrites the training set. The returned
// report counts unique failed queries seen, entries added this run, and the
// resulting training-set size.
func (m *Miner) Run(ctx context.Context) (*Report, error) {
	fmt.Fprintln(m.progress, "Processing feedback log...")
	records, err := m.feedback.LoadFeedback()
	if err != nil {
		return nil, err
	}
	failed := extractFailedQueries(records)
	fmt.Fprintf(m.progress, "Found %d unique failed queries\n\n", len(failed))

	aux, err := m.store.LoadAuxiliaryEntries()
	if err != nil {
		return nil, err
	}
	corpus := buildMatchCorpus(aux)
	fmt.Fprintf(m.progress, "Built matching corpus with %d entries\n\n", len(corpus))

	existing, err := m.store.LoadFailedQueries()
	if err != nil {
		return nil, err
	}
	existingKeys := make(map[string]struct{}, len(existing))
	for _, entry := range existing {
		existingKeys[core.NormalizeKey(entry.Question)] = struct{}{}
	}

	top := failed
	if len(top) > maxCandidates {
		top = top[:maxCandidates]
	}
	candidates := make([]failedQuery, 0, len(top))
	for _, query := range top {
		if _, ok := existingKeys[query.Question]; ok {
			continue
		}
		candidates = append(candidates, query)
	}

	results := m.scoreCandidates(ctx, candidates, corpus)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	added := make([]core.FailedQueryEntry, 0, len(candidates))
	for i, query := range candidates {
		match, score := results[i].match, results[i].score
		if match == nil || score <= acceptThreshold {
			fmt.Fprintf(m.progress, "Query: %q - no good match found (score: %.1f%%)\n\n",
				query.Question, score*100)
			continue
		}

		added = append(added, core.FailedQueryEntry{
			Question: query.Question,
			Answer:   match.Answer,
			Category: match.Category,
			Tags:     GenerateTags(query.Question),
		})
		fmt.Fprintf(m.progress, "Query: %q\n  Category: %s, Score: %.1f%%\n\n",
			query.Question, match.Category, score*100)
	}

	if err := m.store.SaveFailedQueries(append(existing, added...)); err != nil {
		return nil, err
	}

	report := &Report{
		QueriesAnalyzed: len(failed),
		EntriesAdded:    len(added),
		TotalEntries:    len(existing) + len(added),
	}
	fmt.Fprintf(m.progress, "Summary:\n  Failed queries analyzed: %d\n  New entries added: %d\n  Total training entries: %d\n",
		report.QueriesAnalyzed, report.EntriesAdded, report.TotalEntries)
	m.logger.Info("mining run complete",
		"analyzed", report.QueriesAnalyzed,
		"added", report.EntriesAdded,
		"total", report.TotalEntries)
	return report, nil
}

type matchResult struct {
	match *core.FailedQueryEntry
	score float64
}

// scoreCandidates runs findBestMatch for every candidate on the worker
// pool. Results come back indexed so reporting order stays deterministic.
func (m *Miner) scoreCandidates(ctx context.Context, candidates []failedQuery, corpus []corpusEntry) []matchResult {
	results := make([]matchResult, len(candidates))
	var wg sync.WaitGroup
	for i, query := range candidates {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		task := func() {
			defer wg.Done()
			match, score := findBestMatch(query.Question, corpus)
			results[i] = matchResult{match: match, score: score}
		}
		if err := m.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()
	return results
}
