package scheduler

import (
	"time"

	"github.com/nyayak/docket/internal/domain"
)

// Urgency thresholds, in minutes until the event starts.
const (
	criticalWithinMin  = 60
	importantWithinMin = 180
)

// Classify maps an event and the current wall-clock time to an urgency
// tier. It is a pure function and must be re-evaluated on every query:
// urgency changes with the passage of time even when no event data does.
//
// Rules, first match wins:
//  1. Deadlines are always Critical.
//  2. Starting within 60 minutes is Critical.
//  3. Starting within 180 minutes, or any Meeting, is Important.
//  4. Everything else is Normal.
func Classify(e domain.Event, now time.Time) domain.PriorityTier {
	mins := e.MinutesUntil(now)
	if e.Kind == domain.KindDeadline || mins <= criticalWithinMin {
		return domain.PriorityCritical
	}
	if mins <= importantWithinMin || e.Kind == domain.KindMeeting {
		return domain.PriorityImportant
	}
	return domain.PriorityNormal
}
