package miner

import (
	"sort"
	"strings"

	"github.com/poiesic/collegewala/core"
)

// failureSignatures are fragments of the apologies the responder emits when
// no tier produced an answer. A bot turn containing any of them marks the
// nearest preceding user turn as a failed query. Matching is
// case-insensitive.
var failureSignatures = []string{
	"i'm sorry, i couldn't find an answer to your question",
	"couldn't find specific information",
	"i don't have specific information",
	"i don't have information about",
	"not available in provided context",
}

func isFailedResponse(text string) bool {
	lowered := strings.ToLower(text)
	for _, signature := range failureSignatures {
		if strings.Contains(lowered, signature) {
			return true
		}
	}
	return false
}

// failedQuery is a normalized user question with its failure count.
type failedQuery struct {
	Question string
	Count    int
}

// extractFailedQueries scans recorded conversations for bot turns that
// carry a failure signature, attributes each to the nearest preceding user
// turn, and aggregates by normalized question. The result is sorted by
// count descending; equal counts keep first-seen order.
func extractFailedQueries(records []core.FeedbackRecord) []failedQuery {
	counts := make(map[string]int)
	var order []string

	for _, record := range records {
		for i, turn := range record.History {
			if turn.Role != core.RoleBot || !isFailedResponse(turn.Text) {
				continue
			}

			var question string
			for j := i - 1; j >= 0; j-- {
				if record.History[j].Role == core.RoleUser {
					question = record.History[j].Text
					break
				}
			}
			if question == "" {
				continue
			}

			key := core.NormalizeKey(question)
			if _, ok := counts[key]; !ok {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	queries := make([]failedQuery, 0, len(order))
	for _, key := range order {
		queries = append(queries, failedQuery{Question: key, Count: counts[key]})
	}
	sort.SliceStable(queries, func(i, j int) bool {
		return queries[i].Count > queries[j].Count
	})
	return queries
}
