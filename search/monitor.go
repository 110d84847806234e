package search

import (
	"github.com/poiesic/collegewala/core"
)

// Monitor receives callbacks at each stage of query handling. Implementations
// are used for diagnostics and testing; all methods may be called from the
// goroutine running Respond and must not block.
type Monitor interface {
	// Start is called once with the raw query.
	Start(query string)

	// AfterKeywordLookup reports the keyword index result, nil on a miss.
	AfterKeywordLookup(match *core.KeywordMatch)

	// AfterCorpusSearch reports the scored corpus candidates.
	AfterCorpusSearch(matches []Match)

	// SelfHealing signals entry into the last-resort generation tier.
	SelfHealing()

	// Finish is called once with the final response.
	Finish(response *Response)
}

// noopMonitor is used when the caller does not provide a monitor.
type noopMonitor struct{}

func (n *noopMonitor) Start(string)                         {}
func (n *noopMonitor) AfterKeywordLookup(*core.KeywordMatch) {}
func (n *noopMonitor) AfterCorpusSearch([]Match)            {}
func (n *noopMonitor) SelfHealing()                         {}
func (n *noopMonitor) Finish(*Response)                     {}
