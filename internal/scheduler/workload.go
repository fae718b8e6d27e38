package scheduler

import (
	"math"

	"github.com/nyayak/docket/internal/domain"
)

// fullDayMin is the scheduled-minutes mark treated as a 100% load.
const fullDayMin = 480.0

// Workload summarizes a schedule's composition and load.
type Workload struct {
	Hearings  int
	Meetings  int
	Deadlines int
	Minutes   int
	// Score is scheduled minutes as a percentage of an eight-hour day,
	// capped at 100.
	Score int
}

// ComputeWorkload tallies event counts and total scheduled minutes.
func ComputeWorkload(events []domain.Event) Workload {
	var w Workload
	for _, e := range events {
		switch e.Kind {
		case domain.KindCourt:
			w.Hearings++
		case domain.KindMeeting:
			w.Meetings++
		case domain.KindDeadline:
			w.Deadlines++
		}
		w.Minutes += int(e.Duration().Minutes())
	}
	w.Score = int(math.Min(100, math.Round(float64(w.Minutes)/fullDayMin*100)))
	return w
}

// WeekMix is the split of docket time between court appearances, office
// work (deadlines), and client meetings, as whole percentages.
type WeekMix struct {
	CourtPct  int
	OfficePct int
	ClientPct int
}

// ComputeWeekMix derives the court/office/client split from event counts.
func ComputeWeekMix(events []domain.Event) WeekMix {
	var court, office, client int
	for _, e := range events {
		switch e.Kind {
		case domain.KindCourt:
			court++
		case domain.KindDeadline:
			office++
		case domain.KindMeeting:
			client++
		}
	}
	total := court + office + client
	if total < 1 {
		total = 1
	}
	return WeekMix{
		CourtPct:  int(math.Round(float64(court) / float64(total) * 100)),
		OfficePct: int(math.Round(float64(office) / float64(total) * 100)),
		ClientPct: int(math.Round(float64(client) / float64(total) * 100)),
	}
}
