package miner

import (
	"math"
	"regexp"
	"strings"

	"github.com/poiesic/collegewala/core"
)

// stopWords is the English stop-word list shared by query preprocessing and
// tag generation.
var stopWords = func() map[string]struct{} {
	words := []string{
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself",
		"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
		"what", "which", "who", "whom", "this", "that", "these", "those",
		"am", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "having", "do", "does", "did", "doing",
		"a", "an", "the", "and", "but", "if", "or", "because", "as",
		"until", "while", "of", "at", "by", "for", "with", "about",
		"against", "between", "into", "through", "during", "before",
		"after", "above", "below", "to", "from", "up", "down", "in",
		"out", "on", "off", "over", "under", "again", "further", "then",
		"once", "here", "there", "when", "where", "why", "how",
		"all", "any", "both", "each", "few", "more", "most", "other",
		"some", "such", "no", "nor", "not", "only", "own", "same",
		"so", "than", "too", "very", "s", "t", "can", "will", "just",
		"don", "should", "now",
	}
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}()

var nonWord = regexp.MustCompile(`[^\w\s]`)

// preprocess lowercases text, strips punctuation and drops stop words.
func preprocess(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), "")
	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, word := range fields {
		if _, stop := stopWords[word]; stop {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// vectorize counts token occurrences over a shared vocabulary.
func vectorize(tokens []string, vocabulary map[string]int) []float64 {
	vector := make([]float64, len(vocabulary))
	for _, token := range tokens {
		if i, ok := vocabulary[token]; ok {
			vector[i]++
		}
	}
	return vector
}

// cosineSimilarity returns the cosine of the angle between two count
// vectors. A zero-magnitude vector on either side scores 0.
func cosineSimilarity(a, b []float64) float64 {
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// corpusEntry is an auxiliary entry with its searchable text pre-tokenized.
type corpusEntry struct {
	entry  core.FailedQueryEntry
	tokens []string
}

// buildMatchCorpus tokenizes auxiliary entries for matching. An entry's
// searchable text is its question followed by its tags.
func buildMatchCorpus(entries []core.FailedQueryEntry) []corpusEntry {
	corpus := make([]corpusEntry, 0, len(entries))
	for _, entry := range entries {
		text := entry.Question
		if len(entry.Tags) > 0 {
			text += " " + strings.Join(entry.Tags, " ")
		}
		corpus = append(corpus, corpusEntry{entry: entry, tokens: preprocess(text)})
	}
	return corpus
}

// findBestMatch scores a query against every corpus entry and returns the
// highest-scoring one. Each pair is scored over the union vocabulary of the
// two token lists; ties keep the earlier entry.
func findBestMatch(query string, corpus []corpusEntry) (*core.FailedQueryEntry, float64) {
	queryTokens := preprocess(query)

	bestScore := -1.0
	var best *core.FailedQueryEntry
	for i := range corpus {
		vocabulary := make(map[string]int, len(queryTokens)+len(corpus[i].tokens))
		for _, token := range queryTokens {
			if _, ok := vocabulary[token]; !ok {
				vocabulary[token] = len(vocabulary)
			}
		}
		for _, token := range corpus[i].tokens {
			if _, ok := vocabulary[token]; !ok {
				vocabulary[token] = len(vocabulary)
			}
		}

		score := cosineSimilarity(
			vectorize(queryTokens, vocabulary),
			vectorize(corpus[i].tokens, vocabulary),
		)
		if score > bestScore {
			bestScore = score
			best = &corpus[i].entry
		}
	}
	return best, bestScore
}
