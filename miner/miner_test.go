package miner

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/poiesic/collegewala/core"
	"github.com/poiesic/collegewala/storage/jsonfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const failedBotReply = "I'm sorry, I couldn't find an answer to your question."

func fixtureStore(t *testing.T, feedback string) *jsonfile.Store {
	t.Helper()
	store, err := jsonfile.NewFixtureStore(t.TempDir(), jsonfile.Fixtures{
		"feedback.json": feedback,
		"ext.json": `{
			"What sports facilities does the college have?": {
				"answer": "The campus has a cricket ground, courts, and a gym.",
				"category": "facilities",
				"tags": ["sports", "gym", "grounds"]
			},
			"What medical facilities are available on campus?": {
				"answer": "A medical centre with a resident doctor is open round the clock.",
				"category": "facilities",
				"tags": ["medical", "health", "doctor"]
			}
		}`,
		"failed_queries_training.json": `{}`,
	})
	require.NoError(t, err)
	return store
}

func feedbackWith(turns ...core.Turn) string {
	records := []core.FeedbackRecord{{History: turns, Feedback: core.VerdictBad}}
	data, _ := json.Marshal(records)
	return string(data)
}

func TestNewMiner(t *testing.T) {
	store := fixtureStore(t, `[]`)

	t.Run("valid configuration", func(t *testing.T) {
		m, err := NewMiner(store, store)
		require.NoError(t, err)
		defer m.Close()
		assert.NotNil(t, m)
	})

	t.Run("nil feedback source", func(t *testing.T) {
		_, err := NewMiner(nil, store)
		assert.Equal(t, ErrFeedbackRequired, err)
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := NewMiner(store, nil)
		assert.Equal(t, ErrStoreRequired, err)
	})
}

func TestExtractFailedQueries(t *testing.T) {
	records := []core.FeedbackRecord{
		{History: []core.Turn{
			{Role: core.RoleUser, Text: "Tell me about sports facilities"},
			{Role: core.RoleBot, Text: failedBotReply},
			{Role: core.RoleUser, Text: "what about the gym?"},
			{Role: core.RoleBot, Text: "The gym is in the indoor complex."},
		}},
		{History: []core.Turn{
			{Role: core.RoleUser, Text: "TELL ME ABOUT SPORTS FACILITIES"},
			{Role: core.RoleBot, Text: failedBotReply},
		}},
		{History: []core.Turn{
			{Role: core.RoleUser, Text: "medical help?"},
			{Role: core.RoleBot, Text: "Sorry, I don't have specific information on that."},
		}},
	}

	queries := extractFailedQueries(records)
	require.Len(t, queries, 2)
	// Aggregated case-insensitively and sorted by count descending.
	assert.Equal(t, "tell me about sports facilities", queries[0].Question)
	assert.Equal(t, 2, queries[0].Count)
	assert.Equal(t, "medical help?", queries[1].Question)
	assert.Equal(t, 1, queries[1].Count)
}

func TestExtractFailedQueriesEdgeCases(t *testing.T) {
	t.Run("bot failure with no preceding user turn is skipped", func(t *testing.T) {
		records := []core.FeedbackRecord{
			{History: []core.Turn{{Role: core.RoleBot, Text: failedBotReply}}},
		}
		assert.Empty(t, extractFailedQueries(records))
	})

	t.Run("empty history", func(t *testing.T) {
		assert.Empty(t, extractFailedQueries([]core.FeedbackRecord{{History: nil}}))
	})

	t.Run("walks back past intervening bot turns", func(t *testing.T) {
		records := []core.FeedbackRecord{
			{History: []core.Turn{
				{Role: core.RoleUser, Text: "sports?"},
				{Role: core.RoleBot, Text: "Let me check."},
				{Role: core.RoleBot, Text: failedBotReply},
			}},
		}
		queries := extractFailedQueries(records)
		require.Len(t, queries, 1)
		assert.Equal(t, "sports?", queries[0].Question)
	})
}

func TestRun(t *testing.T) {
	feedback := feedbackWith(
		core.Turn{Role: core.RoleUser, Text: "what sports and gym facilities are there?"},
		core.Turn{Role: core.RoleBot, Text: failedBotReply},
	)
	store := fixtureStore(t, feedback)

	var progress bytes.Buffer
	m, err := NewMiner(store, store, WithProgress(&progress), WithPoolSize(2))
	require.NoError(t, err)
	defer m.Close()

	report, err := m.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.QueriesAnalyzed)
	assert.Equal(t, 1, report.EntriesAdded)
	assert.Equal(t, 1, report.TotalEntries)

	entries, err := store.LoadFailedQueries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "what sports and gym facilities are there?", entries[0].Question)
	assert.Equal(t, "The campus has a cricket ground, courts, and a gym.", entries[0].Answer)
	assert.Equal(t, "facilities", entries[0].Category)
	assert.NotEmpty(t, entries[0].Tags)

	assert.Contains(t, progress.String(), "Found 1 unique failed queries")
	assert.Contains(t, progress.String(), "Summary:")

	t.Run("second run is idempotent", func(t *testing.T) {
		second, err := m.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, second.EntriesAdded)
		assert.Equal(t, 1, second.TotalEntries)

		entries, err := store.LoadFailedQueries()
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestRunRejectsWeakMatches(t *testing.T) {
	feedback := feedbackWith(
		core.Turn{Role: core.RoleUser, Text: "scholarship deadlines?"},
		core.Turn{Role: core.RoleBot, Text: failedBotReply},
	)
	store := fixtureStore(t, feedback)

	var progress bytes.Buffer
	m, err := NewMiner(store, store, WithProgress(&progress))
	require.NoError(t, err)
	defer m.Close()

	report, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.QueriesAnalyzed)
	assert.Equal(t, 0, report.EntriesAdded)
	assert.Contains(t, progress.String(), "no good match found")
}

func TestRunCancelledContext(t *testing.T) {
	store := fixtureStore(t, `[]`)
	m, err := NewMiner(store, store)
	require.NoError(t, err)
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
