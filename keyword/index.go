package keyword

import (
	"strings"

	"github.com/poiesic/collegewala/core"
	"github.com/poiesic/collegewala/corpus"
)

// Fixed per-source confidence weights. These are trust priors, not learned
// values: intents are authored for exactly this purpose and rank highest.
const (
	ConfidenceIntent     = 0.95
	ConfidenceProgram    = 0.92
	ConfidenceInternship = 0.92
	ConfidenceFAQ        = 0.90
)

// substringFactor discounts matches found by substring scan rather than an
// exact key hit.
const substringFactor = 0.7

// broadSubstringFactor is the softer discount used by FindAll, which also
// accepts the query token containing the indexed keyword.
const broadSubstringFactor = 0.6

// Index maps normalized keywords to candidate answers with fixed per-source
// confidences. One keyword may carry candidates from several sources; no
// deduplication happens at build time.
//
// Lookup falls back to scanning every registered keyword for substring
// matches when a token has no exact key. The scan is linear in the index
// size; at the few hundred keywords these sources produce that is cheaper
// than maintaining an n-gram structure.
type Index struct {
	entries map[string][]core.KeywordMatch
	keys    []string // registration order, for deterministic scans
}

// Build registers every declared keyword of the intent, FAQ, program, and
// internship sources. Knowledge trees and the learned/failed-query logs do
// not feed the index; they are served by corpus scoring only.
func Build(sources corpus.Sources) *Index {
	idx := &Index{entries: make(map[string][]core.KeywordMatch)}

	for _, intent := range sources.Intents {
		related := lowerAll(intent.Keywords)
		for _, kw := range intent.Keywords {
			idx.add(kw, core.KeywordMatch{
				Answer:          intent.Answer,
				Source:          core.SourceIntent,
				Confidence:      ConfidenceIntent,
				RelatedKeywords: related,
			})
		}
	}

	for _, faq := range sources.FAQs {
		related := lowerAll(faq.Tags)
		for _, tag := range faq.Tags {
			idx.add(tag, core.KeywordMatch{
				Answer:          faq.Answer,
				Source:          core.SourceFAQ,
				Confidence:      ConfidenceFAQ,
				RelatedKeywords: related,
			})
		}
	}

	for _, program := range sources.Programs {
		keywords := corpus.ProgramKeywords(program)
		answer := corpus.FormatProgramAnswer(program)
		for _, kw := range keywords {
			idx.add(kw, core.KeywordMatch{
				Answer:          answer,
				Source:          core.SourceProgram,
				Confidence:      ConfidenceProgram,
				RelatedKeywords: keywords,
			})
		}
	}

	for _, internship := range sources.Internships {
		keywords := corpus.InternshipKeywords(internship)
		answer := corpus.FormatInternshipAnswer(internship)
		for _, kw := range keywords {
			idx.add(kw, core.KeywordMatch{
				Answer:          answer,
				Source:          core.SourceInternship,
				Confidence:      ConfidenceInternship,
				RelatedKeywords: keywords,
			})
		}
	}

	return idx
}

func (idx *Index) add(keyword string, match core.KeywordMatch) {
	clean := core.NormalizeKey(keyword)
	if clean == "" || match.Answer == "" {
		return
	}
	match.Keyword = clean
	if _, exists := idx.entries[clean]; !exists {
		idx.keys = append(idx.keys, clean)
	}
	idx.entries[clean] = append(idx.entries[clean], match)
}

// Len reports the number of distinct registered keywords.
func (idx *Index) Len() int {
	return len(idx.keys)
}

type scoredMatch struct {
	match core.KeywordMatch
	score float64
}

// Lookup returns the single best keyword candidate for a query, or nil when
// no token matches anything.
//
// Each query token contributes additively: an exact key hit adds the full
// confidence of every candidate under that key; only when a token has no
// exact key does the substring scan run, adding confidence scaled by 0.7 for
// every registered keyword containing the token. Candidates are aggregated
// by answer text, and ties keep the first-encountered candidate.
func (idx *Index) Lookup(query string) *core.KeywordMatch {
	tokens := core.Tokens(strings.TrimSpace(query))

	var ordered []*scoredMatch
	byAnswer := make(map[string]*scoredMatch)

	accumulate := func(match core.KeywordMatch, score float64) {
		if existing, ok := byAnswer[match.Answer]; ok {
			existing.score += score
			return
		}
		entry := &scoredMatch{match: match, score: score}
		byAnswer[match.Answer] = entry
		ordered = append(ordered, entry)
	}

	for _, token := range tokens {
		if direct, ok := idx.entries[token]; ok {
			for _, match := range direct {
				accumulate(match, match.Confidence)
			}
			continue
		}
		for _, key := range idx.keys {
			if strings.Contains(key, token) {
				for _, match := range idx.entries[key] {
					accumulate(match, match.Confidence*substringFactor)
				}
			}
		}
	}

	if len(ordered) == 0 {
		return nil
	}

	best := ordered[0]
	for _, candidate := range ordered[1:] {
		if candidate.score > best.score {
			best = candidate
		}
	}
	result := best.match
	return &result
}

// FindAll returns up to limit candidates ranked by aggregated score. Unlike
// Lookup, the fallback scan also accepts a query token that contains the
// indexed keyword, discounted by 0.6.
func (idx *Index) FindAll(query string, limit int) []core.KeywordMatch {
	tokens := core.Tokens(strings.TrimSpace(query))

	var ordered []*scoredMatch
	byAnswer := make(map[string]*scoredMatch)

	accumulate := func(match core.KeywordMatch, score float64) {
		if existing, ok := byAnswer[match.Answer]; ok {
			existing.score += score
			return
		}
		entry := &scoredMatch{match: match, score: score}
		byAnswer[match.Answer] = entry
		ordered = append(ordered, entry)
	}

	for _, token := range tokens {
		if direct, ok := idx.entries[token]; ok {
			for _, match := range direct {
				accumulate(match, match.Confidence)
			}
			continue
		}
		for _, key := range idx.keys {
			if strings.Contains(key, token) || strings.Contains(token, key) {
				for _, match := range idx.entries[key] {
					accumulate(match, match.Confidence*broadSubstringFactor)
				}
			}
		}
	}

	sortStableByScore(ordered)
	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}

	matches := make([]core.KeywordMatch, len(ordered))
	for i, entry := range ordered {
		matches[i] = entry.match
	}
	return matches
}

func lowerAll(values []string) []string {
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(v)
	}
	return lowered
}
