package contract

import "time"

// CreateEventRequest is the inbound creation payload accepted from
// external collaborators (manual add or promotion from a case file).
type CreateEventRequest struct {
	Title string
	Kind  string
	// Date is "2006-01-02"; Time is "15:04". Together they name the
	// requested start in the operator's local day.
	Date            string
	Time            string
	DurationMinutes int
	Location        string
	CaseReference   string
	Client          string
	OpposingCounsel string
	Courtroom       string
	DistanceKm      float64
	// Repeat is "none" or "weekly-4". weekly-4 adds four copies, each
	// exactly seven days after the previous one.
	Repeat    string
	Documents []string
	Notes     string
}

// CreateEventResult reports what was actually scheduled after reflow.
type CreateEventResult struct {
	Created []EventView
	// SlotAdjusted is set when the event could not keep its requested
	// start and reflow moved it.
	SlotAdjusted bool
	Conflicts    []string
}

// EventView is an event projected for presentation, with the derived
// priority tier attached per query. The tier is never persisted.
type EventView struct {
	ID              string
	Title           string
	Kind            string
	Start           time.Time
	End             time.Time
	Location        string
	CaseReference   string
	Client          string
	OpposingCounsel string
	Courtroom       string
	Documents       []string
	Notes           string
	DistanceKm      float64
	Checklist       map[string]bool
	MissingDocs     bool
	TightDeadline   bool
	AggressiveOpp   bool

	Priority      string
	LeaveBy       time.Time
	TravelMinutes int
}

// WorkloadView summarizes a day's load for presentation.
type WorkloadView struct {
	Hearings  int
	Meetings  int
	Deadlines int
	Minutes   int
	Score     int
}

// DayViewResponse is the presentation query surface for one calendar day.
type DayViewResponse struct {
	Date      time.Time
	Events    []EventView
	Conflicts []string
	Upcoming  *EventView
	Current   *EventView
	Countdown string
	Workload  WorkloadView
}

// DayGroup is one day's slice of a week or month view.
type DayGroup struct {
	Date   time.Time
	Events []EventView
}

// WeekViewResponse groups a Monday-start week plus the court/office/client
// time mix across it.
type WeekViewResponse struct {
	Days      []DayGroup
	CourtPct  int
	OfficePct int
	ClientPct int
}

// MonthViewResponse groups one bucket per day of the month.
type MonthViewResponse struct {
	Year  int
	Month time.Month
	Days  []DayGroup
}

// SlotSuggestion is a proposed interval for a new event. OutsideWindow
// marks the best-effort fallback when the working window is exhausted.
type SlotSuggestion struct {
	Start         time.Time
	End           time.Time
	OutsideWindow bool
}
