package formatter

import (
	"fmt"
	"strings"

	"github.com/nyayak/docket/internal/contract"
	"github.com/nyayak/docket/internal/domain"
)

const clockLayout = "15:04"

func eventRow(v contract.EventView) []string {
	span := fmt.Sprintf("%s–%s", v.Start.Format(clockLayout), v.End.Format(clockLayout))
	detail := v.Location
	if v.CaseReference != "" {
		detail = strings.TrimSpace(detail + " " + StyleDim.Render(v.CaseReference))
	}
	return []string{
		span,
		KindColor(domain.EventKind(v.Kind)).Render(v.Kind),
		StyleBold.Render(v.Title),
		PriorityIndicator(domain.PriorityTier(v.Priority)),
		detail,
	}
}

// FormatDayView renders the full single-day dashboard.
func FormatDayView(resp *contract.DayViewResponse) string {
	var b strings.Builder

	b.WriteString(Header("Docket · " + resp.Date.Format("Mon 02 Jan 2006")))
	b.WriteString("\n")

	if len(resp.Events) == 0 {
		b.WriteString(StyleDim.Render("No events scheduled.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(resp.Events))
	for _, v := range resp.Events {
		rows = append(rows, eventRow(v))
	}
	b.WriteString(RenderTable([]string{"TIME", "KIND", "TITLE", "PRIORITY", "WHERE"}, rows))

	for _, v := range resp.Events {
		if !v.LeaveBy.IsZero() {
			b.WriteString(fmt.Sprintf("%s leave by %s for %s (%d min travel)\n",
				StyleBlue.Render("→"), v.LeaveBy.Format(clockLayout), v.Title, v.TravelMinutes))
		}
	}

	if len(resp.Conflicts) > 0 {
		b.WriteString("\n" + Header("Conflicts") + "\n")
		for _, c := range resp.Conflicts {
			b.WriteString(StyleRed.Render("⚠ "+c) + "\n")
		}
	}

	if resp.Current != nil {
		b.WriteString("\n" + StyleGreen.Render("▶ in progress: "+resp.Current.Title) + "\n")
	}
	if resp.Upcoming != nil {
		b.WriteString(fmt.Sprintf("\n%s %s %s\n",
			StyleYellow.Render("next:"), resp.Upcoming.Title, StyleDim.Render("in "+resp.Countdown)))
	}

	b.WriteString("\n" + FormatWorkload(resp.Workload))
	return b.String()
}

// FormatWorkload renders the day's load summary with a score meter.
func FormatWorkload(w contract.WorkloadView) string {
	meter := renderMeter(w.Score)
	return fmt.Sprintf("%s  %s\n%s\n",
		StyleDim.Render(fmt.Sprintf("%d hearings · %d meetings · %d deadlines · %dm booked",
			w.Hearings, w.Meetings, w.Deadlines, w.Minutes)),
		fmt.Sprintf("load %d%%", w.Score),
		meter)
}

func renderMeter(score int) string {
	const width = 25
	filled := score * width / 100
	if filled > width {
		filled = width
	}
	style := StyleGreen
	switch {
	case score >= 80:
		style = StyleRed
	case score >= 50:
		style = StyleYellow
	}
	return style.Render(strings.Repeat("█", filled)) + StyleDim.Render(strings.Repeat("░", width-filled))
}

// FormatWeekView renders seven day groups plus the time mix.
func FormatWeekView(resp *contract.WeekViewResponse) string {
	var b strings.Builder
	if len(resp.Days) > 0 {
		last := resp.Days[len(resp.Days)-1]
		b.WriteString(Header(fmt.Sprintf("Week of %s – %s",
			resp.Days[0].Date.Format("02 Jan"), last.Date.Format("02 Jan 2006"))))
		b.WriteString("\n")
	}

	for _, day := range resp.Days {
		b.WriteString(StyleBold.Render(day.Date.Format("Mon 02")) + "\n")
		if len(day.Events) == 0 {
			b.WriteString(StyleDim.Render("  —") + "\n")
			continue
		}
		for _, v := range day.Events {
			b.WriteString(fmt.Sprintf("  %s–%s  %s %s\n",
				v.Start.Format(clockLayout), v.End.Format(clockLayout),
				KindColor(domain.EventKind(v.Kind)).Render(v.Kind),
				v.Title))
		}
	}

	b.WriteString(fmt.Sprintf("\n%s court %d%% · office %d%% · client %d%%\n",
		StyleDim.Render("mix:"), resp.CourtPct, resp.OfficePct, resp.ClientPct))
	return b.String()
}

// FormatMonthView renders one line per non-empty day of the month.
func FormatMonthView(resp *contract.MonthViewResponse) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s %d", resp.Month, resp.Year)))
	b.WriteString("\n")

	busy := 0
	for _, day := range resp.Days {
		if len(day.Events) == 0 {
			continue
		}
		busy++
		titles := make([]string, 0, len(day.Events))
		for _, v := range day.Events {
			titles = append(titles, v.Title)
		}
		b.WriteString(fmt.Sprintf("%s  %s\n",
			StyleBold.Render(day.Date.Format("02 Mon")), strings.Join(titles, StyleDim.Render(" · "))))
	}
	if busy == 0 {
		b.WriteString(StyleDim.Render("No events this month.") + "\n")
	}
	return b.String()
}

// FormatCreateResult summarizes what was scheduled after reflow.
func FormatCreateResult(result *contract.CreateEventResult) string {
	var b strings.Builder
	for _, v := range result.Created {
		b.WriteString(fmt.Sprintf("%s %s %s–%s %s\n",
			StyleGreen.Render("✓"),
			v.Start.Format("02 Jan"),
			v.Start.Format(clockLayout), v.End.Format(clockLayout),
			StyleBold.Render(v.Title)))
	}
	if result.SlotAdjusted {
		b.WriteString(StyleYellow.Render("requested time was occupied; moved to the next free slot") + "\n")
	}
	for _, c := range result.Conflicts {
		b.WriteString(StyleRed.Render("⚠ "+c+" (resolved by reflow)") + "\n")
	}
	return b.String()
}

// FormatSlot renders a slot suggestion.
func FormatSlot(slot *contract.SlotSuggestion) string {
	line := fmt.Sprintf("%s %s–%s",
		slot.Start.Format("Mon 02 Jan"),
		slot.Start.Format(clockLayout), slot.End.Format(clockLayout))
	if slot.OutsideWindow {
		return StyleYellow.Render(line) + StyleDim.Render("  (day fully booked; best-effort slot)") + "\n"
	}
	return StyleGreen.Render(line) + "\n"
}

// FormatChecklist renders a toggle outcome.
func FormatChecklist(item string, value bool) string {
	if value {
		return StyleGreen.Render("☑ "+item) + "\n"
	}
	return StyleDim.Render("☐ "+item) + "\n"
}
