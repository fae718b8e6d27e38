package domain

type EventKind string

const (
	KindCourt    EventKind = "Court"
	KindMeeting  EventKind = "Meeting"
	KindDeadline EventKind = "Deadline"
	KindPersonal EventKind = "Personal"
)

// ValidEventKinds is the canonical set of accepted event kind strings.
var ValidEventKinds = map[string]bool{
	"Court": true, "Meeting": true, "Deadline": true, "Personal": true,
}

type PriorityTier string

const (
	PriorityCritical  PriorityTier = "Critical"
	PriorityImportant PriorityTier = "Important"
	PriorityNormal    PriorityTier = "Normal"
)

// TierRank returns a sort rank for a priority tier (lower = more urgent).
func TierRank(t PriorityTier) int {
	switch t {
	case PriorityCritical:
		return 0
	case PriorityImportant:
		return 1
	default:
		return 2
	}
}

type RepeatPolicy string

const (
	RepeatNone    RepeatPolicy = "none"
	RepeatWeekly4 RepeatPolicy = "weekly-4"
)

// ValidRepeatPolicies is the canonical set of accepted repeat policy strings.
var ValidRepeatPolicies = map[string]bool{
	"none": true, "weekly-4": true,
}
