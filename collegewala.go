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


package collegewala

import (
	"log/slog"
	"sync"

	"github.com/poiesic/collegewala/ai"
	"github.com/poiesic/collegewala/ai/openai"
	"github.com/poiesic/collegewala/core"
	"github.com/poiesic/collegewala/corpus"
	"github.com/poiesic/collegewala/keyword"
	"github.com/poiesic/collegewala/miner"
	"github.com/poiesic/collegewala/search"
	"github.com/poiesic/collegewala/storage/jsonfile"
)

// Assistant is the top-level handle on a knowledge directory. It owns the
// JSON stores, the AI provider, and the lazily built corpus and keyword
// index, and hands out responders and miners wired to them.
type Assistant struct {
	store    *jsonfile.Store
	provider ai.Provider
	logger   *slog.Logger

	buildOnce sync.Once
	buildErr  error
	corpus    []core.SearchableItem
	index     *keyword.Index
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
}

// WithAIConfig sets the AI provider configuration.
func WithAIConfig(config *ai.Config) AssistantOption {
	return func(o *assistantOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider supplies a pre-built AI provider instead of constructing
// one from configuration. The assistant takes ownership and closes it.
func WithAIProvider(provider ai.Provider) AssistantOption {
	return func(o *assistantOptions) {
		o.provider = provider
	}
}

// NewAssistant opens the data directory and wires up the AI provider. The
// corpus and keyword index are built on first use, not here.
func NewAssistant(dataDir string, opts ...AssistantOption) (*Assistant, error) {
	options := &assistantOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	store, err := jsonfile.Open(dataDir)
	if err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	return &Assistant{
		store:    store,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

// Close releases the AI provider.
func (a *Assistant) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
		return err
	}
	return nil
}

// build loads every knowledge store and constructs the corpus and keyword
// index. It runs at most once per Assistant; a rebuild requires a new
// Assistant.
func (a *Assistant) build() error {
	a.buildOnce.Do(func() {
		sources, err := a.loadSources()
		if err != nil {
			a.buildErr = err
			return
		}
		a.corpus = corpus.Build(*sources)
		a.index = keyword.Build(*sources)
		a.logger.Info("knowledge built",
			"corpus_items", len(a.corpus),
			"keywords", a.index.Len())
	})
	return a.buildErr
}

func (a *Assistant) loadSources() (*corpus.Sources, error) {
	learned, err := a.store.LoadLearnedAnswers()
	if err != nil {
		return nil, err
	}
	intents, err := a.store.LoadIntents()
	if err != nil {
		return nil, err
	}
	programs, err := a.store.LoadPrograms()
	if err != nil {
		return nil, err
	}
	internships, err := a.store.LoadInternships()
	if err != nil {
		return nil, err
	}
	faqs, err := a.store.LoadFAQs()
	if err != nil {
		return nil, err
	}
	knowledgeTree, err := a.store.LoadKnowledgeTree()
	if err != nil {
		return nil, err
	}
	auxiliaryTree, err := a.store.LoadAuxiliaryTree()
	if err != nil {
		return nil, err
	}
	failedQueries, err := a.store.LoadFailedQueries()
	if err != nil {
		return nil, err
	}

	return &corpus.Sources{
		LearnedAnswers: learned,
		Intents:        intents,
		Programs:       programs,
		Internships:    internships,
		FAQs:           faqs,
		KnowledgeTree:  knowledgeTree,
		AuxiliaryTree:  auxiliaryTree,
		FailedQueries:  failedQueries,
	}, nil
}

// Corpus returns the searchable corpus, building it on first call.
func (a *Assistant) Corpus() ([]core.SearchableItem, error) {
	if err := a.build(); err != nil {
		return nil, err
	}
	return a.corpus, nil
}

// Lookup returns the best keyword match for a query, building the index on
// first call. A nil match means no keyword matched.
func (a *Assistant) Lookup(query string) (*core.KeywordMatch, error) {
	if err := a.build(); err != nil {
		return nil, err
	}
	return a.index.Lookup(query), nil
}

// KeywordMatches returns up to limit keyword matches for a query, strongest
// first.
func (a *Assistant) KeywordMatches(query string, limit int) ([]core.KeywordMatch, error) {
	if err := a.build(); err != nil {
		return nil, err
	}
	return a.index.FindAll(query, limit), nil
}

// KeywordStats reports the shape of the keyword index.
func (a *Assistant) KeywordStats() (*keyword.Stats, error) {
	if err := a.build(); err != nil {
		return nil, err
	}
	stats := a.index.Stats()
	return &stats, nil
}

// RecordFeedback appends a conversation with the user's verdict to the
// feedback log.
func (a *Assistant) RecordFeedback(history []core.Turn, verdict core.Verdict) error {
	return a.store.LogFeedback(history, verdict)
}

// NewResponder returns a responder backed by this assistant's knowledge,
// stores, and AI provider.
func (a *Assistant) NewResponder(opts ...search.Option) (*search.Responder, error) {
	return search.NewResponder(a, a.provider, a.store, a.store, opts...)
}

// NewMiner returns a self-training miner over this assistant's stores.
func (a *Assistant) NewMiner(opts ...miner.Option) (*miner.Miner, error) {
	return miner.NewMiner(a.store, a.store, opts...)
}
