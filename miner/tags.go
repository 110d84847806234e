package miner

import "strings"

const maxTags = 8

// GenerateTags derives index tags for a mined question: its first three
// content tokens plus intent markers read off the raw question words.
func GenerateTags(question string) []string {
	tags := make([]string, 0, maxTags)
	seen := make(map[string]struct{}, maxTags)
	add := func(tag string) {
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	tokens := preprocess(question)
	for _, token := range tokens[:min(3, len(tokens))] {
		add(token)
	}

	words := strings.Fields(strings.ToLower(question))
	has := func(target string) bool {
		for _, word := range words {
			if word == target {
				return true
			}
		}
		return false
	}
	if has("what") || has("tell") {
		add("information")
	}
	if has("how") {
		add("process")
	}
	if has("where") {
		add("location")
	}
	if has("how") && has("many") {
		add("quantity")
	}

	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}
