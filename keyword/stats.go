package keyword

import (
	"sort"

	"github.com/poiesic/collegewala/core"
)

// sampleSize caps the number of keywords shown in Stats.
const sampleSize = 20

// Stats summarizes the content of an index for diagnostics.
type Stats struct {
	TotalKeywords  int
	BySource       map[core.SourceType]int
	SampleKeywords []string
}

// Stats reports the total keyword count, candidate counts per source, and a
// registration-ordered sample of keywords.
func (idx *Index) Stats() Stats {
	stats := Stats{
		TotalKeywords: len(idx.keys),
		BySource:      make(map[core.SourceType]int),
	}

	for _, matches := range idx.entries {
		for _, match := range matches {
			stats.BySource[match.Source]++
		}
	}

	sample := idx.keys
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}
	stats.SampleKeywords = append([]string(nil), sample...)

	return stats
}

func sortStableByScore(entries []*scoredMatch) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})
}
