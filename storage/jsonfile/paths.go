package jsonfile

// Store file names inside the data directory. All are single JSON documents
// read and rewritten whole.
const (
	programsFile      = "programs.json"
	internshipsFile   = "internships.json"
	intentsFile       = "intents.json"
	faqFile           = "faq.json"
	knowledgeFile     = "college.json"
	auxiliaryFile     = "ext.json"
	learnedFile       = "learned_answers.json"
	failedQueriesFile = "failed_queries_training.json"
	feedbackFile      = "feedback.json"
	unansweredFile    = "unanswered_questions.json"
)
