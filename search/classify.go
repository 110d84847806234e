package search

import "strings"

// Topic is a coarse query category detected by phrase containment.
type Topic string

const (
	TopicContact  Topic = "contact"
	TopicLocation Topic = "location"
	TopicWebsite  Topic = "website"
	TopicGreeting Topic = "greeting"
)

// topicPhrases maps each topic to the phrases that signal it. Detection is
// substring containment over the lower-cased query, so "hi" also fires
// inside longer words; the phrases are chosen so that is acceptable.
var topicPhrases = map[Topic][]string{
	TopicContact:  {"contact", "phone", "number", "call", "email", "reach", "reach out", "telephone", "call college", "speak"},
	TopicLocation: {"location", "address", "where", "situated", "city", "area", "direction", "route", "reach college", "campus location"},
	TopicWebsite:  {"website", "url", "web", "online", "portal", "apply online"},
	TopicGreeting: {"hello", "hi", "hey", "greetings", "good morning", "good afternoon", "good evening"},
}

// topicOrder fixes the order topics are reported in.
var topicOrder = []Topic{TopicContact, TopicLocation, TopicWebsite, TopicGreeting}

// Classify reports every topic whose phrases occur in the query.
func Classify(query string) []Topic {
	queryLower := strings.ToLower(strings.TrimSpace(query))

	var topics []Topic
	for _, topic := range topicOrder {
		for _, phrase := range topicPhrases[topic] {
			if strings.Contains(queryLower, phrase) {
				topics = append(topics, topic)
				break
			}
		}
	}
	return topics
}

// IsGreeting reports whether the query contains a greeting phrase.
func IsGreeting(query string) bool {
	for _, topic := range Classify(query) {
		if topic == TopicGreeting {
			return true
		}
	}
	return false
}
