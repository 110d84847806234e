package search

import (
	"testing"

	"github.com/poiesic/collegewala/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("text and exact keyword add up", func(t *testing.T) {
		item := core.SearchableItem{Text: "ai", Keywords: []string{"ai"}}
		// 2 for the text hit, 3 for the exact keyword, word count 1.
		assert.InDelta(t, 5.0, Score("ai", item), 1e-9)
	})

	t.Run("exact bonus counts once per token", func(t *testing.T) {
		item := core.SearchableItem{Text: "campus", Keywords: []string{"fees", "fees"}}
		// 3 for the first exact hit only; the containment pass still counts
		// both keywords at 1.5 each.
		assert.InDelta(t, 3+1.5+1.5, Score("fees", item), 1e-9)
	})

	t.Run("partial keyword hits stack with the exact bonus", func(t *testing.T) {
		item := core.SearchableItem{Text: "campus", Keywords: []string{"fees", "fees structure"}}
		// exact on "fees" (3) plus containment in both keywords (1.5 each).
		assert.InDelta(t, 6.0, Score("fees", item), 1e-9)
	})

	t.Run("short tokens never collect partial scores", func(t *testing.T) {
		item := core.SearchableItem{Text: "campus", Keywords: []string{"mbark"}}
		// "mb" is contained in "mbark" but is only two characters long.
		assert.InDelta(t, 0.0, Score("mb", item), 1e-9)
	})

	t.Run("priority enters as a static prior", func(t *testing.T) {
		item := core.SearchableItem{Text: "hostel", Keywords: nil, Priority: 10}
		// 2 for the text hit plus 10*0.5.
		assert.InDelta(t, 7.0, Score("hostel", item), 1e-9)
	})

	t.Run("longer text is penalized", func(t *testing.T) {
		short := core.SearchableItem{Text: "hostel"}
		long := core.SearchableItem{Text: "hostel rooms with wifi and a vegetarian mess on campus"}
		assert.Greater(t, Score("hostel", short), Score("hostel", long))
	})

	t.Run("no overlap and no priority scores zero", func(t *testing.T) {
		item := core.SearchableItem{Text: "library timings", Keywords: []string{"library"}}
		assert.Zero(t, Score("astronomy", item))
	})
}

func TestBestMatches(t *testing.T) {
	corpus := []core.SearchableItem{
		{Text: "library timings", Answer: "first", Keywords: []string{"library"}, Priority: 5},
		{Text: "hostel rooms", Answer: "second", Keywords: []string{"hostel"}, Priority: 5},
		{Text: "hostel fees", Answer: "third", Keywords: []string{"hostel", "fees"}, Priority: 10},
	}

	t.Run("filters, ranks, limits", func(t *testing.T) {
		matches := BestMatches("hostel", corpus, 2)
		require.Len(t, matches, 2)
		assert.Equal(t, "third", matches[0].Item.Answer)
		assert.Equal(t, "second", matches[1].Item.Answer)
	})

	t.Run("every scored item has positive score", func(t *testing.T) {
		for _, match := range BestMatches("hostel fees library", corpus, 0) {
			assert.Greater(t, match.Score, 0.0)
		}
	})

	t.Run("equal scores keep corpus order", func(t *testing.T) {
		pair := []core.SearchableItem{
			{Text: "hostel", Answer: "a", Priority: 5},
			{Text: "hostel", Answer: "b", Priority: 5},
		}
		matches := BestMatches("hostel", pair, 0)
		require.Len(t, matches, 2)
		assert.Equal(t, "a", matches[0].Item.Answer)
	})

	t.Run("empty corpus", func(t *testing.T) {
		assert.Empty(t, BestMatches("anything", nil, 3))
	})
}
