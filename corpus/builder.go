package corpus

import (
	"strings"

	"github.com/poiesic/collegewala/core"
)

// Per-source priority weights. Learned answers rank highest so that a
// previously generated answer beats the canned record it came from.
const (
	PriorityLearned    = 10
	PriorityProgram    = 9
	PriorityInternship = 9
	PriorityIntent     = 8
	PriorityFailed     = 7
	PriorityFAQ        = 6
	PriorityKnowledge  = 5
)

// Sources holds every structured and semi-structured input of a corpus
// build. Nil trees and empty slices are valid and contribute nothing.
type Sources struct {
	LearnedAnswers []core.LearnedAnswer
	Intents        []core.Intent
	Programs       []core.Program
	Internships    []core.Internship
	FAQs           []core.FAQItem
	KnowledgeTree  *core.Node
	AuxiliaryTree  *core.Node
	FailedQueries  []core.FailedQueryEntry
}

// Build normalizes all sources into the searchable corpus. The output order
// is deterministic: learned answers, intents, programs, internships, FAQs,
// knowledge tree, auxiliary tree, failed queries, each in source order.
func Build(sources Sources) []core.SearchableItem {
	var items []core.SearchableItem

	for _, learned := range sources.LearnedAnswers {
		items = appendItem(items, core.SearchableItem{
			Text:     strings.ToLower(learned.Question),
			Answer:   learned.Answer,
			Source:   core.SourceLearned,
			Keywords: core.UniqueTokens(learned.Question),
			Priority: PriorityLearned,
		})
	}

	for _, intent := range sources.Intents {
		text := intent.Intent + " " + strings.Join(intent.Keywords, " ") + " " + strings.Join(intent.Questions, " ")
		items = appendItem(items, core.SearchableItem{
			Text:     strings.ToLower(text),
			Answer:   intent.Answer,
			Source:   core.SourceIntent,
			Keywords: lowerAll(intent.Keywords),
			Priority: PriorityIntent,
		})
	}

	for _, program := range sources.Programs {
		items = appendItem(items, core.SearchableItem{
			Text:     strings.ToLower(programText(program)),
			Answer:   FormatProgramAnswer(program),
			Source:   core.SourceProgram,
			Keywords: programKeywords(program),
			Priority: PriorityProgram,
		})
	}

	for _, internship := range sources.Internships {
		text := internship.Name + " " + strings.Join(internship.Domains, " ")
		items = appendItem(items, core.SearchableItem{
			Text:     strings.ToLower(text),
			Answer:   FormatInternshipAnswer(internship),
			Source:   core.SourceInternship,
			Keywords: internshipKeywords(internship),
			Priority: PriorityInternship,
		})
	}

	for _, faq := range sources.FAQs {
		items = appendItem(items, core.SearchableItem{
			Text:     strings.ToLower(faq.Question + " " + strings.Join(faq.Tags, " ")),
			Answer:   faq.Answer,
			Source:   core.SourceFAQ,
			Keywords: lowerAll(faq.Tags),
			Priority: PriorityFAQ,
		})
	}

	items = appendTree(items, sources.KnowledgeTree, core.SourceKnowledge)
	items = appendTree(items, sources.AuxiliaryTree, core.SourceAuxiliary)

	for _, failed := range sources.FailedQueries {
		text := strings.ToLower(failed.Question + " " + strings.Join(failed.Tags, " "))
		items = appendItem(items, core.SearchableItem{
			Text:     text,
			Answer:   failed.Answer,
			Source:   core.SourceFailed,
			Keywords: core.UniqueTokens(text),
			Priority: PriorityFailed,
		})
	}

	return items
}

// appendItem enforces the corpus invariant: items with empty derived text or
// an empty answer never enter the corpus.
func appendItem(items []core.SearchableItem, item core.SearchableItem) []core.SearchableItem {
	if strings.TrimSpace(item.Text) == "" || item.Answer == "" {
		return items
	}
	return append(items, item)
}

func appendTree(items []core.SearchableItem, tree *core.Node, source core.SourceType) []core.SearchableItem {
	for _, extracted := range Extract(tree) {
		text := strings.ToLower(extracted.Text)
		items = appendItem(items, core.SearchableItem{
			Text:     text,
			Answer:   extracted.Answer,
			Source:   source,
			Keywords: core.UniqueTokens(text),
			Priority: PriorityKnowledge,
		})
	}
	return items
}

func programText(p core.Program) string {
	return p.Name + " " + p.Degree + " " + p.Specialization + " " +
		strings.Join(p.Specializations, " ") + " " + strings.Join(p.CoreSubjects, " ")
}

// ProgramKeywords returns the deduplicated, lower-cased keyword set of a
// program: name, degree, specializations, and core subjects.
func ProgramKeywords(p core.Program) []string {
	return programKeywords(p)
}

func programKeywords(p core.Program) []string {
	keywords := make([]string, 0, 3+len(p.Specializations)+len(p.CoreSubjects))
	keywords = append(keywords, strings.ToLower(p.Name), strings.ToLower(p.Degree), strings.ToLower(p.Specialization))
	for _, s := range p.Specializations {
		keywords = append(keywords, strings.ToLower(s))
	}
	for _, s := range p.CoreSubjects {
		keywords = append(keywords, strings.ToLower(s))
	}
	return dedup(keywords)
}

// InternshipKeywords returns the deduplicated, lower-cased keyword set of an
// internship: name and domains.
func InternshipKeywords(i core.Internship) []string {
	return internshipKeywords(i)
}

func internshipKeywords(i core.Internship) []string {
	keywords := make([]string, 0, 1+len(i.Domains))
	keywords = append(keywords, strings.ToLower(i.Name))
	for _, d := range i.Domains {
		keywords = append(keywords, strings.ToLower(d))
	}
	return dedup(keywords)
}

func lowerAll(values []string) []string {
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(v)
	}
	return lowered
}

// dedup removes duplicates preserving first-seen order.
func dedup(values []string) []string {
	seen := make(map[string]bool, len(values))
	unique := values[:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			unique = append(unique, v)
		}
	}
	return unique
}
