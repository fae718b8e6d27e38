package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/nyayak/docket/internal/contract"
	"github.com/stretchr/testify/assert"
)

func sampleView(title string, h, m int) contract.EventView {
	start := time.Date(2026, 3, 10, h, m, 0, 0, time.UTC)
	return contract.EventView{
		ID:       "id-" + title,
		Title:    title,
		Kind:     "Court",
		Start:    start,
		End:      start.Add(time.Hour),
		Priority: "Important",
	}
}

func TestFormatDayView_EmptyDay(t *testing.T) {
	out := FormatDayView(&contract.DayViewResponse{
		Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.Contains(t, out, "No events scheduled")
}

func TestFormatDayView_ListsEventsAndConflicts(t *testing.T) {
	hearing := sampleView("Bail hearing", 10, 0)
	hearing.LeaveBy = time.Date(2026, 3, 10, 9, 20, 0, 0, time.UTC)
	hearing.TravelMinutes = 20

	out := FormatDayView(&contract.DayViewResponse{
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Events:    []contract.EventView{hearing, sampleView("Mediation", 14, 0)},
		Conflicts: []string{"Bail hearing overlaps Mediation"},
		Workload:  contract.WorkloadView{Hearings: 2, Minutes: 120, Score: 25},
	})

	assert.Contains(t, out, "Bail hearing")
	assert.Contains(t, out, "10:00–11:00")
	assert.Contains(t, out, "leave by 09:20")
	assert.Contains(t, out, "overlaps Mediation")
	assert.Contains(t, out, "load 25%")
}

func TestFormatWeekView_MixLine(t *testing.T) {
	out := FormatWeekView(&contract.WeekViewResponse{
		Days: []contract.DayGroup{
			{Date: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)},
			{Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Events: []contract.EventView{sampleView("Hearing", 10, 0)}},
		},
		CourtPct: 50, OfficePct: 25, ClientPct: 25,
	})
	assert.Contains(t, out, "Hearing")
	assert.Contains(t, out, "court 50%")
	assert.Contains(t, out, "—")
}

func TestFormatSlot_FallbackNote(t *testing.T) {
	slot := &contract.SlotSuggestion{
		Start:         time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		End:           time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		OutsideWindow: true,
	}
	out := FormatSlot(slot)
	assert.Contains(t, out, "09:00–09:30")
	assert.Contains(t, out, "fully booked")

	slot.OutsideWindow = false
	assert.NotContains(t, FormatSlot(slot), "fully booked")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable([]string{"A", "TITLE"}, [][]string{
		{"1", "short"},
		{"22", "a longer cell"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], "short")
	assert.Contains(t, lines[3], "a longer cell")
}
