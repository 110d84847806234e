package collegewala

import (
	"context"
	"sync"
	"testing"

	"github.com/poiesic/collegewala/ai/mock"
	"github.com/poiesic/collegewala/core"
	"github.com/poiesic/collegewala/corpus"
	"github.com/poiesic/collegewala/storage/jsonfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := jsonfile.NewFixtureStore(dir, jsonfile.Fixtures{
		"programs.json": `{"programs": [{
			"id": "mba",
			"name": "MBA",
			"degree": "MBA",
			"specialization": "General Management",
			"duration": "2 years",
			"seats": "60",
			"fees": "INR 2,40,000",
			"eligibility": "Any bachelor's degree",
			"description": "Two-year residential MBA."
		}]}`,
		"internships.json": `{"internships": []}`,
		"intents.json": `{"intents": [{
			"intent": "hostel_facilities",
			"keywords": ["hostel", "accommodation"],
			"answer": "Twin-sharing hostel rooms are available.",
			"questions": ["Is hostel available?"]
		}]}`,
		"faq.json":     `{}`,
		"college.json": `{"college": {"name": "Collegewala Institute", "overview": "An autonomous institute."}}`,
		"ext.json":     `{}`,
	})
	require.NoError(t, err)
	return dir
}

func TestNewAssistant(t *testing.T) {
	t.Run("missing data directory", func(t *testing.T) {
		_, err := NewAssistant(t.TempDir() + "/nope")
		assert.Error(t, err)
	})

	t.Run("with injected provider", func(t *testing.T) {
		assistant, err := NewAssistant(fixtureDir(t), WithAIProvider(mock.NewMockProvider()))
		require.NoError(t, err)
		defer assistant.Close()
		assert.NotNil(t, assistant)
	})
}

func TestAssistantKnowledge(t *testing.T) {
	assistant, err := NewAssistant(fixtureDir(t), WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	defer assistant.Close()

	t.Run("corpus is built lazily and served", func(t *testing.T) {
		items, err := assistant.Corpus()
		require.NoError(t, err)
		require.NotEmpty(t, items)
		assert.Equal(t, core.SourceIntent, items[0].Source)
	})

	t.Run("lookup hits declared keywords", func(t *testing.T) {
		match, err := assistant.Lookup("hostel")
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "Twin-sharing hostel rooms are available.", match.Answer)
	})

	t.Run("find all ranks candidates", func(t *testing.T) {
		matches, err := assistant.KeywordMatches("hostel mba", 5)
		require.NoError(t, err)
		assert.Len(t, matches, 2)
	})

	t.Run("stats reflect the index", func(t *testing.T) {
		stats, err := assistant.KeywordStats()
		require.NoError(t, err)
		assert.Greater(t, stats.TotalKeywords, 0)
	})

	t.Run("concurrent first callers share one build", func(t *testing.T) {
		fresh, err := NewAssistant(fixtureDir(t), WithAIProvider(mock.NewMockProvider()))
		require.NoError(t, err)
		defer fresh.Close()

		var wg sync.WaitGroup
		results := make([][]core.SearchableItem, 8)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				items, err := fresh.Corpus()
				assert.NoError(t, err)
				results[i] = items
			}()
		}
		wg.Wait()

		for _, items := range results[1:] {
			assert.Len(t, items, len(results[0]))
		}
	})
}

func TestAssistantResponderEndToEnd(t *testing.T) {
	provider := mock.NewMockProvider().(*mock.MockProvider)
	assistant, err := NewAssistant(fixtureDir(t), WithAIProvider(provider))
	require.NoError(t, err)
	defer assistant.Close()

	responder, err := assistant.NewResponder()
	require.NoError(t, err)

	response := responder.Respond(context.Background(), "mba")

	// The keyword tier fires on the program name, and the identity mock
	// generator returns the formatted program block it was given.
	wantProgram := core.Program{
		ID:             "mba",
		Name:           "MBA",
		Degree:         "MBA",
		Specialization: "General Management",
		Duration:       "2 years",
		Seats:          "60",
		Fees:           "INR 2,40,000",
		Eligibility:    "Any bachelor's degree",
		Description:    "Two-year residential MBA.",
	}
	assert.Equal(t, corpus.FormatProgramAnswer(wantProgram), response.Answer)
	assert.NotEmpty(t, response.Suggestions)

	calls := provider.GetMockGenerator().Calls()
	require.NotEmpty(t, calls)
	assert.Equal(t, "mba", calls[0].Question)
}

func TestAssistantRecordFeedback(t *testing.T) {
	dir := fixtureDir(t)
	assistant, err := NewAssistant(dir, WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	defer assistant.Close()

	history := []core.Turn{
		{Role: core.RoleUser, Text: "hostel?"},
		{Role: core.RoleBot, Text: "Twin-sharing hostel rooms are available."},
	}
	require.NoError(t, assistant.RecordFeedback(history, core.VerdictGood))
	assert.ErrorIs(t, assistant.RecordFeedback(history, core.Verdict("meh")), core.ErrInvalidVerdict)

	store, err := jsonfile.Open(dir)
	require.NoError(t, err)
	records, err := store.LoadFeedback()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, core.VerdictGood, records[0].Feedback)
}
