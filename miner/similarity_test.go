package miner

import (
	"testing"

	"github.com/poiesic/collegewala/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocess(t *testing.T) {
	t.Run("lowercases, strips punctuation, drops stop words", func(t *testing.T) {
		tokens := preprocess("What are the Hostel FEES, exactly?!")
		assert.Equal(t, []string{"hostel", "fees", "exactly"}, tokens)
	})

	t.Run("all stop words", func(t *testing.T) {
		assert.Empty(t, preprocess("what is the"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, preprocess(""))
	})
}

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors score 1", func(t *testing.T) {
		a := []float64{1, 2, 3}
		assert.InDelta(t, 1.0, cosineSimilarity(a, a), 1e-9)
	})

	t.Run("orthogonal vectors score 0", func(t *testing.T) {
		assert.InDelta(t, 0.0, cosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-9)
	})

	t.Run("zero vector scores 0", func(t *testing.T) {
		assert.Zero(t, cosineSimilarity([]float64{0, 0}, []float64{1, 1}))
	})
}

func TestFindBestMatch(t *testing.T) {
	corpus := buildMatchCorpus([]core.FailedQueryEntry{
		{Question: "What sports facilities does the college have?", Answer: "Gym and grounds.", Category: "facilities", Tags: []string{"sports", "gym"}},
		{Question: "What medical facilities are available?", Answer: "A medical centre.", Category: "facilities", Tags: []string{"medical", "health"}},
	})

	t.Run("picks the closest entry", func(t *testing.T) {
		match, score := findBestMatch("tell me about sports and gym facilities", corpus)
		require.NotNil(t, match)
		assert.Equal(t, "Gym and grounds.", match.Answer)
		assert.Greater(t, score, 0.2)
	})

	t.Run("unrelated query scores low", func(t *testing.T) {
		_, score := findBestMatch("scholarship deadlines", corpus)
		assert.LessOrEqual(t, score, 0.2)
	})

	t.Run("empty corpus", func(t *testing.T) {
		match, score := findBestMatch("anything", nil)
		assert.Nil(t, match)
		assert.Equal(t, -1.0, score)
	})

	t.Run("tags count toward the match", func(t *testing.T) {
		match, _ := findBestMatch("gym", corpus)
		require.NotNil(t, match)
		assert.Equal(t, "Gym and grounds.", match.Answer)
	})
}
