package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFailedQueryEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		entry := &FailedQueryEntry{Question: "What are the fees?", Answer: "INR 1,85,000 per year."}
		assert.NoError(t, ValidateFailedQueryEntry(entry))
	})

	t.Run("nil entry", func(t *testing.T) {
		err := ValidateFailedQueryEntry(nil)
		assert.ErrorIs(t, err, ErrInvalidEntry)
	})

	t.Run("whitespace question", func(t *testing.T) {
		entry := &FailedQueryEntry{Question: "   ", Answer: "x"}
		err := ValidateFailedQueryEntry(entry)
		assert.ErrorIs(t, err, ErrInvalidEntry)
		assert.ErrorIs(t, err, ErrEmptyQuestion)
	})

	t.Run("empty answer", func(t *testing.T) {
		entry := &FailedQueryEntry{Question: "q", Answer: ""}
		err := ValidateFailedQueryEntry(entry)
		assert.ErrorIs(t, err, ErrEmptyAnswer)
	})

	t.Run("empty category and tags are fine", func(t *testing.T) {
		entry := &FailedQueryEntry{Question: "q", Answer: "a"}
		assert.NoError(t, ValidateFailedQueryEntry(entry))
	})
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole(RoleUser))
	assert.NoError(t, ValidateRole(RoleBot))
	assert.ErrorIs(t, ValidateRole(Role("admin")), ErrInvalidRole)
}

func TestValidateVerdict(t *testing.T) {
	assert.NoError(t, ValidateVerdict(VerdictGood))
	assert.NoError(t, ValidateVerdict(VerdictBad))
	assert.ErrorIs(t, ValidateVerdict(Verdict("meh")), ErrInvalidVerdict)
}
