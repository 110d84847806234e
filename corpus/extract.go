package corpus

import (
	"strings"

	"github.com/poiesic/collegewala/core"
)

// searchableKeys is the whitelist of record fields whose scalar values feed
// an item's searchable text. Every scalar field, whitelisted or not, still
// feeds the item's answer.
var searchableKeys = map[string]bool{
	"name":           true,
	"code":           true,
	"description":    true,
	"eligibility":    true,
	"duration":       true,
	"duration_years": true,
	"overview":       true,
	"mission":        true,
	"vision":         true,
	"facilities":     true,
	"activities":     true,
}

// Extracted is one item pulled out of a knowledge tree before lower-casing.
type Extracted struct {
	Text   string
	Answer string
}

// Extract walks a knowledge tree and collects searchable items.
//
// At a list it recurses element-wise. At a record exposing both "q" and "a"
// fields it emits exactly one question/answer item and stops descending.
// At any other record it aggregates whitelisted scalar fields into the text,
// joins every scalar field as "key: value" pairs into the answer, emits one
// item when the text is non-empty, and then still recurses into every child
// value, so a parent and its children can both contribute items.
func Extract(node *core.Node) []Extracted {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case core.NodeList:
		var results []Extracted
		for _, elem := range node.List {
			results = append(results, Extract(elem)...)
		}
		return results

	case core.NodeRecord:
		if question, answer, ok := qaLeaf(node); ok {
			return []Extracted{{Text: question, Answer: answer}}
		}

		var results []Extracted
		var textParts, answerParts []string
		for _, field := range node.Fields {
			if scalar, ok := field.Value.ScalarText(); ok {
				if searchableKeys[field.Key] {
					textParts = append(textParts, scalar)
				}
				answerParts = append(answerParts, field.Key+": "+scalar)
			}
		}

		if len(textParts) > 0 {
			results = append(results, Extracted{
				Text:   strings.Join(textParts, " "),
				Answer: strings.Join(answerParts, ", "),
			})
		}

		for _, field := range node.Fields {
			results = append(results, Extract(field.Value)...)
		}
		return results

	default:
		// Scalars contribute only through their parent record.
		return nil
	}
}

func qaLeaf(node *core.Node) (question, answer string, ok bool) {
	q := node.Field("q")
	a := node.Field("a")
	if q == nil || a == nil {
		return "", "", false
	}
	question, _ = q.ScalarText()
	answer, _ = a.ScalarText()
	return question, answer, true
}
