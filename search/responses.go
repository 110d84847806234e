package search

// Canned responses for the short-circuit and terminal tiers. The wording is
// part of the product surface and must not drift.

const clarificationAnswer = "Please ask a question about admissions, courses, fees, placement, or any other college information. How can I help you today?"

var clarificationSuggestions = []string{
	"What courses are offered?",
	"How much are the fees?",
	"What's the placement rate?",
	"How can I contact the college?",
}

const greetingAnswer = "Hello! I'm Collegewala chatbot. I'm here to help you with any questions about our college - admissions, courses, fees, placements, facilities, and much more. What would you like to know?"

var greetingSuggestions = []string{
	"What courses are offered?",
	"How can I apply for admission?",
	"Is hostel facility available?",
	"What is the fee structure?",
}

const fallbackAnswer = "I'm sorry, I don't have specific information about that question. However, I can help you with admissions, courses, fees, placements, facilities, and more! Our admissions team is also available at +91-80-6751-2100 or admissions@collegewala.edu to answer any detailed questions. Would you like to know about any of these popular topics instead?"

var fallbackSuggestions = []string{
	"What courses are offered?",
	"How can I apply for admission?",
	"What is the fee structure?",
	"Where is the college located?",
	"How do I contact the college?",
}

const selfHealPreamble = "Could not find a specific answer. Attempt to answer the user's question based on the following general knowledge of the college:\n"
