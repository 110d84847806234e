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


package jsonfile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/poiesic/collegewala/core"
	"github.com/poiesic/collegewala/storage"
)

// Store reads and rewrites the JSON stores inside a single data directory.
// It implements every storage contract. Reads are safe for concurrent use;
// writers perform unsynchronized read-modify-write and must not run
// concurrently with another writer of the same file.
type Store struct {
	dir    string
	logger *slog.Logger
}

// Open validates the data directory and returns a store rooted at it.
func Open(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrUnreadableStore, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", storage.ErrUnreadableStore, dir)
	}
	return &Store{
		dir:    dir,
		logger: slog.Default().With("component", "jsonfile-store"),
	}, nil
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

// read loads a store file. When optional is true a missing file reads as
// absent (nil bytes, no error).
func (s *Store) read(name string, optional bool) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if optional && os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrUnreadableStore, name, err)
	}
	return data, nil
}

// write atomically replaces a store file via a temp file and rename.
func (s *Store) write(name string, data []byte) error {
	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", storage.ErrWriteFailed, name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", storage.ErrWriteFailed, name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", storage.ErrWriteFailed, name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", storage.ErrWriteFailed, name, err)
	}
	return nil
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", storage.ErrWriteFailed, name, err)
	}
	return s.write(name, data)
}

// LoadPrograms reads the program records.
func (s *Store) LoadPrograms() ([]core.Program, error) {
	data, err := s.read(programsFile, false)
	if err != nil {
		return nil, err
	}
	var wrapper struct {
		Programs []core.Program `json:"programs"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrMalformedStore, programsFile, err)
	}
	return wrapper.Programs, nil
}

// LoadInternships reads the internship records.
func (s *Store) LoadInternships() ([]core.Internship, error) {
	data, err := s.read(internshipsFile, false)
	if err != nil {
		return nil, err
	}
	var wrapper struct {
		Internships []core.Internship `json:"internships"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrMalformedStore, internshipsFile, err)
	}
	return wrapper.Internships, nil
}

// LoadIntents reads the declared intents.
func (s *Store) LoadIntents() ([]core.Intent, error) {
	data, err := s.read(intentsFile, false)
	if err != nil {
		return nil, err
	}
	var wrapper struct {
		Intents []core.Intent `json:"intents"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrMalformedStore, intentsFile, err)
	}
	return wrapper.Intents, nil
}

// LoadFAQs reads the FAQ store, an object keyed by question, preserving
// document order. Entries whose value is not a record are skipped.
func (s *Store) LoadFAQs() ([]core.FAQItem, error) {
	root, err := s.readTree(faqFile, false)
	if err != nil {
		return nil, err
	}
	if root.Kind != core.NodeRecord {
		return nil, fmt.Errorf("%w: %s: expected a top-level object", storage.ErrMalformedStore, faqFile)
	}

	faqs := make([]core.FAQItem, 0, len(root.Fields))
	for _, field := range root.Fields {
		if field.Value.Kind != core.NodeRecord {
			s.logger.Warn("skipping malformed faq entry", "question", field.Key)
			continue
		}
		faqs = append(faqs, core.FAQItem{
			Question: field.Key,
			Answer:   fieldText(field.Value, "answer"),
			Category: fieldText(field.Value, "category"),
			Tags:     fieldStrings(field.Value, "tags"),
		})
	}
	return faqs, nil
}

// LoadLearnedAnswers reads the learned-answers log. Missing reads as empty.
func (s *Store) LoadLearnedAnswers() ([]core.LearnedAnswer, error) {
	data, err := s.read(learnedFile, true)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var learned []core.LearnedAnswer
	if err := json.Unmarshal(data, &learned); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrMalformedStore, learnedFile, err)
	}
	return learned, nil
}

// LoadKnowledgeTree reads the primary knowledge tree.
func (s *Store) LoadKnowledgeTree() (*core.Node, error) {
	return s.readTree(knowledgeFile, false)
}

// LoadAuxiliaryTree reads the auxiliary knowledge tree.
func (s *Store) LoadAuxiliaryTree() (*core.Node, error) {
	return s.readTree(auxiliaryFile, false)
}

// LoadFailedQueries reads the failed-query training set, an object keyed by
// question, preserving document order. Missing reads as empty; entries
// whose value is not a record are skipped.
func (s *Store) LoadFailedQueries() ([]core.FailedQueryEntry, error) {
	data, err := s.read(failedQueriesFile, true)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var root core.Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrMalformedStore, failedQueriesFile, err)
	}
	if root.Kind != core.NodeRecord {
		return nil, fmt.Errorf("%w: %s: expected a top-level object", storage.ErrMalformedStore, failedQueriesFile)
	}

	entries := make([]core.FailedQueryEntry, 0, len(root.Fields))
	for _, field := range root.Fields {
		if field.Value.Kind != core.NodeRecord {
			s.logger.Warn("skipping malformed failed-query entry", "question", field.Key)
			continue
		}
		entries = append(entries, core.FailedQueryEntry{
			Question: field.Key,
			Answer:   fieldText(field.Value, "answer"),
			Category: fieldText(field.Value, "category"),
			Tags:     fieldStrings(field.Value, "tags"),
		})
	}
	return entries, nil
}

// LoadAuxiliaryEntries reads the auxiliary store as keyed entries, one per
// top-level question, preserving document order. Entries whose value is not
// a record are skipped.
func (s *Store) LoadAuxiliaryEntries() ([]core.FailedQueryEntry, error) {
	root, err := s.readTree(auxiliaryFile, false)
	if err != nil {
		return nil, err
	}
	if root.Kind != core.NodeRecord {
		return nil, fmt.Errorf("%w: %s: expected a top-level object", storage.ErrMalformedStore, auxiliaryFile)
	}

	entries := make([]core.FailedQueryEntry, 0, len(root.Fields))
	for _, field := range root.Fields {
		if field.Value.Kind != core.NodeRecord {
			s.logger.Warn("skipping malformed auxiliary entry", "question", field.Key)
			continue
		}
		entries = append(entries, core.FailedQueryEntry{
			Question: field.Key,
			Answer:   fieldText(field.Value, "answer"),
			Category: fieldText(field.Value, "category"),
			Tags:     fieldStrings(field.Value, "tags"),
		})
	}
	return entries, nil
}

// LoadFeedback reads the conversation feedback log. The miner depends on
// this store, so missing or malformed files are errors.
func (s *Store) LoadFeedback() ([]core.FeedbackRecord, error) {
	data, err := s.read(feedbackFile, false)
	if err != nil {
		return nil, err
	}
	var records []core.FeedbackRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrMalformedStore, feedbackFile, err)
	}
	return records, nil
}

// SaveLearnedAnswer writes a learned (question, answer) pair. An existing
// entry with the same normalized question is replaced, not duplicated.
func (s *Store) SaveLearnedAnswer(question, answer string) error {
	learned, err := s.LoadLearnedAnswers()
	if err != nil {
		return err
	}

	key := core.NormalizeKey(question)
	replaced := false
	for i := range learned {
		if core.NormalizeKey(learned[i].Question) == key {
			learned[i].Answer = answer
			replaced = true
			break
		}
	}
	if !replaced {
		learned = append(learned, core.LearnedAnswer{Question: question, Answer: answer})
	}

	return s.writeJSON(learnedFile, learned)
}

// SaveFailedQueries rewrites the failed-query training set in slice order.
func (s *Store) SaveFailedQueries(entries []core.FailedQueryEntry) error {
	pairs := make([]orderedPair, 0, len(entries))
	for _, entry := range entries {
		pairs = append(pairs, orderedPair{
			Key: entry.Question,
			Value: failedQueryValue{
				Answer:   entry.Answer,
				Category: entry.Category,
				Tags:     entry.Tags,
			},
		})
	}

	data, err := marshalOrderedObject(pairs)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", storage.ErrWriteFailed, failedQueriesFile, err)
	}
	return s.write(failedQueriesFile, data)
}

type failedQueryValue struct {
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

type unansweredEntry struct {
	Question  string `json:"question"`
	Timestamp string `json:"timestamp"`
}

// LogUnansweredQuestion appends a question that no tier could answer.
func (s *Store) LogUnansweredQuestion(question string) error {
	data, err := s.read(unansweredFile, true)
	if err != nil {
		return err
	}

	var entries []unansweredEntry
	if data != nil {
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("%w: %s: %w", storage.ErrMalformedStore, unansweredFile, err)
		}
	}

	entries = append(entries, unansweredEntry{
		Question:  question,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	return s.writeJSON(unansweredFile, entries)
}

// LogFeedback appends a conversation with the user's verdict.
func (s *Store) LogFeedback(history []core.Turn, verdict core.Verdict) error {
	if err := core.ValidateVerdict(verdict); err != nil {
		return err
	}

	data, err := s.read(feedbackFile, true)
	if err != nil {
		return err
	}

	var records []core.FeedbackRecord
	if data != nil {
		if err := json.Unmarshal(data, &records); err != nil {
			return fmt.Errorf("%w: %s: %w", storage.ErrMalformedStore, feedbackFile, err)
		}
	}

	records = append(records, core.FeedbackRecord{
		History:   history,
		Feedback:  verdict,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	return s.writeJSON(feedbackFile, records)
}

func (s *Store) readTree(name string, optional bool) (*core.Node, error) {
	data, err := s.read(name, optional)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var root core.Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrMalformedStore, name, err)
	}
	return &root, nil
}

func fieldText(record *core.Node, key string) string {
	field := record.Field(key)
	if field == nil {
		return ""
	}
	text, _ := field.ScalarText()
	return text
}

func fieldStrings(record *core.Node, key string) []string {
	field := record.Field(key)
	if field == nil || field.Kind != core.NodeList {
		return nil
	}
	values := make([]string, 0, len(field.List))
	for _, elem := range field.List {
		if text, ok := elem.ScalarText(); ok {
			values = append(values, text)
		}
	}
	return values
}
