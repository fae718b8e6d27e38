package scheduler

import (
	"github.com/nyayak/docket/internal/domain"
)

// Overlap is a pair of adjacent events whose time ranges collide:
// A ends after B starts.
type Overlap struct {
	A domain.Event
	B domain.Event
}

// DetectOverlaps scans a start-sorted schedule for colliding adjacent
// pairs. Adjacent comparison suffices on a sorted schedule; this is not a
// full pairwise interval scan. The result feeds the standing conflict
// warning list and triggers reflow.
func DetectOverlaps(sorted []domain.Event) []Overlap {
	var overlaps []Overlap
	for i := 0; i+1 < len(sorted); i++ {
		a, b := sorted[i], sorted[i+1]
		if a.End.After(b.Start) {
			overlaps = append(overlaps, Overlap{A: a, B: b})
		}
	}
	return overlaps
}
