package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		topics []Topic
	}{
		{"contact", "How do I contact the admissions office?", []Topic{TopicContact}},
		{"location", "Where is the campus situated?", []Topic{TopicLocation}},
		{"website", "Can I apply online through the portal?", []Topic{TopicWebsite}},
		{"greeting", "Good morning!", []Topic{TopicGreeting}},
		{"multiple topics in fixed order", "hello, what is the phone number and address?", []Topic{TopicContact, TopicLocation, TopicGreeting}},
		{"no topic", "What are the MBA fees?", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.topics, Classify(tt.query))
		})
	}
}

func TestIsGreeting(t *testing.T) {
	assert.True(t, IsGreeting("Hi there"))
	assert.True(t, IsGreeting("GOOD EVENING"))
	// Containment fires inside longer words.
	assert.True(t, IsGreeting("which"))
	assert.False(t, IsGreeting("What are the fees?"))
}
