package search

import (
	"math"
	"sort"
	"strings"

	"github.com/poiesic/collegewala/core"
)

// Scoring weights. A token in the item text scores lower than an exact
// keyword hit; partial keyword containment sits in between and only counts
// for tokens longer than two characters to keep short tokens from matching
// everything.
const (
	textMatchScore       = 2.0
	exactKeywordScore    = 3.0
	partialKeywordScore  = 1.5
	minPartialTokenChars = 2
	priorityWeight       = 0.5
)

// Match pairs a corpus item with its relevance score for a query.
type Match struct {
	Item  core.SearchableItem
	Score float64
}

// Score computes the graded lexical similarity between a query and a corpus
// item. Each query token adds 2 when it occurs as a substring of the item
// text, 3 when it is exactly one of the keywords, and 1.5 for every keyword
// containing it (tokens longer than two characters only; this stacks with
// the exact bonus). The item priority enters as a static prior, and the sum
// is normalized by 1+ln(wordcount) to penalize long, diffuse text blocks.
// Zero means no lexical overlap.
func Score(query string, item core.SearchableItem) float64 {
	var score float64

	for _, word := range core.Tokens(query) {
		if strings.Contains(item.Text, word) {
			score += textMatchScore
		}
		for _, keyword := range item.Keywords {
			if keyword == word {
				score += exactKeywordScore
				break
			}
		}
		if len(word) > minPartialTokenChars {
			for _, keyword := range item.Keywords {
				if strings.Contains(keyword, word) {
					score += partialKeywordScore
				}
			}
		}
	}

	score += float64(item.Priority) * priorityWeight

	words := len(strings.Fields(item.Text))
	if words < 1 {
		words = 1
	}
	return score / (1 + math.Log(float64(words)))
}

// BestMatches scores the whole corpus against the query and returns up to
// limit matches with a non-zero score, best first. Ordering is stable:
// equal scores keep corpus order.
func BestMatches(query string, corpus []core.SearchableItem, limit int) []Match {
	matches := make([]Match, 0, limit)
	for _, item := range corpus {
		if score := Score(query, item); score > 0 {
			matches = append(matches, Match{Item: item, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
