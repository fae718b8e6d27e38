package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nyayak/docket/internal/cli/formatter"
	"github.com/nyayak/docket/internal/contract"
)

// docketHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func docketHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateDate requires a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateClock requires an HH:MM time string.
func validateClock(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("use HH:MM format")
	}
	return nil
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// addFormNeeded reports whether the request is missing fields the form
// must collect.
func addFormNeeded(req contract.CreateEventRequest) bool {
	return req.Date == "" || req.Time == ""
}

// newAddForm builds the interactive event form. Fields already supplied
// via flags keep their values as defaults; durationStr carries the
// duration as text until the form completes.
func newAddForm(req *contract.CreateEventRequest, durationStr *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("Court", "Court"),
					huh.NewOption("Meeting", "Meeting"),
					huh.NewOption("Deadline", "Deadline"),
					huh.NewOption("Personal", "Personal"),
				).
				Value(&req.Kind),
			huh.NewInput().
				Title("Date").
				Placeholder("2026-03-10").
				Value(&req.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Start Time").
				Placeholder("10:30").
				Value(&req.Time).
				Validate(validateClock),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("60").
				Value(durationStr).
				Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Location (blank for none)").
				Value(&req.Location),
			huh.NewInput().
				Title("Client (blank for none)").
				Value(&req.Client),
		),
	).WithTheme(docketHuhTheme()).WithShowHelp(false)
}

// promptAddForm fills the missing request fields interactively.
func promptAddForm(req *contract.CreateEventRequest) error {
	durationStr := strconv.Itoa(req.DurationMinutes)
	if err := newAddForm(req, &durationStr).Run(); err != nil {
		return err
	}
	if durationStr != "" {
		req.DurationMinutes, _ = strconv.Atoi(durationStr)
	}
	return nil
}
