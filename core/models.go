package core

// SourceType identifies which knowledge source a searchable item or keyword
// match was derived from.
type SourceType string

const (
	// SourceLearned is an answer previously produced by the generator and
	// persisted for reuse.
	SourceLearned SourceType = "learned"
	// SourceIntent is a hand-authored intent with declared keywords.
	SourceIntent SourceType = "intent"
	// SourceProgram is an academic program record.
	SourceProgram SourceType = "program"
	// SourceInternship is an internship record.
	SourceInternship SourceType = "internship"
	// SourceFAQ is a frequently-asked-question entry.
	SourceFAQ SourceType = "faq"
	// SourceKnowledge is an item extracted from the primary knowledge tree.
	SourceKnowledge SourceType = "knowledge-tree"
	// SourceAuxiliary is an item extracted from the auxiliary knowledge tree.
	SourceAuxiliary SourceType = "auxiliary-tree"
	// SourceFailed is a previously failed query recovered by the miner.
	SourceFailed SourceType = "failed-query"
)

// SearchableItem is one element of the retrieval corpus. Items are immutable
// once built; the corpus is rebuilt only by starting a new process.
type SearchableItem struct {
	Text     string     // normalized, lower-cased searchable text
	Answer   string     // canned response handed to the generator as context
	Source   SourceType // which knowledge source produced the item
	Keywords []string   // normalized tokens used for exact keyword scoring
	Priority int        // static per-source weight, 5-10
}

// KeywordMatch is one candidate answer registered in the keyword index.
type KeywordMatch struct {
	Keyword         string
	Answer          string
	Source          SourceType
	Confidence      float64 // fixed per-source trust weight, 0.90-0.95
	RelatedKeywords []string
}

// Intent is a hand-authored question category with declared trigger keywords.
type Intent struct {
	Intent    string   `json:"intent"`
	Keywords  []string `json:"keywords"`
	Answer    string   `json:"answer"`
	Questions []string `json:"questions"`
}

// FAQItem is a single FAQ entry. The question doubles as the store key.
type FAQItem struct {
	Question string
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// LearnedAnswer is a generator-produced answer persisted for reuse.
type LearnedAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Program is an academic program record. Missing fields decode to their zero
// values; downstream formatting substitutes empty strings, never fails.
type Program struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	Degree                  string   `json:"degree"`
	Specialization          string   `json:"specialization"`
	Duration                string   `json:"duration"`
	Seats                   string   `json:"seats"`
	Fees                    string   `json:"fees"`
	Eligibility             string   `json:"eligibility"`
	Admission               string   `json:"admission"`
	CoreSubjects            []string `json:"coreSubjects"`
	Specializations         []string `json:"specializations"`
	PlacementRate           string   `json:"placementRate"`
	AveragePackage          string   `json:"averagePackage"`
	HighestPackage          string   `json:"highestPackage"`
	RecruiterCompanies      []string `json:"recruiterCompanies"`
	InternshipOpportunities []string `json:"internshipOpportunities"`
	Facilities              []string `json:"facilities"`
	Description             string   `json:"description"`
}

// Internship is an internship program record.
type Internship struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Duration           string   `json:"duration"`
	Timeline           string   `json:"timeline"`
	Stipend            string   `json:"stipend"`
	Eligibility        string   `json:"eligibility"`
	Domains            []string `json:"domains"`
	PartnerCompanies   []string `json:"partnerCompanies"`
	Benefits           []string `json:"benefits"`
	ApplicationProcess string   `json:"applicationProcess"`
	Description        string   `json:"description"`
}

// FailedQueryEntry is a mined (question, answer) pair written back to the
// failed-query training store. Entries are keyed by the normalized question.
type FailedQueryEntry struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Role tags a conversation turn as belonging to the user or the bot.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is one message in a recorded conversation.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Verdict is the user's judgement of a conversation.
type Verdict string

const (
	VerdictGood Verdict = "good"
	VerdictBad  Verdict = "bad"
)

// FeedbackRecord is one logged conversation with its verdict. The miner scans
// these for failure signatures.
type FeedbackRecord struct {
	History   []Turn  `json:"history"`
	Feedback  Verdict `json:"feedback"`
	Timestamp string  `json:"timestamp,omitempty"`
}
