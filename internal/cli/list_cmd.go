package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nyayak/docket/internal/cli/formatter"
	"github.com/nyayak/docket/internal/contract"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var view string
	var dateStr string
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the docket for a day, week or month",
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().UTC()
			if dateStr != "" {
				parsed, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
				date = parsed
			}

			ctx := context.Background()
			switch view {
			case "day":
				resp, err := app.Docket.GetDayView(ctx, date)
				if err != nil {
					return err
				}
				resp.Events = filterViews(resp.Events, query)
				fmt.Print(formatter.FormatDayView(resp))
			case "week":
				resp, err := app.Docket.GetWeekView(ctx, date)
				if err != nil {
					return err
				}
				for i := range resp.Days {
					resp.Days[i].Events = filterViews(resp.Days[i].Events, query)
				}
				fmt.Print(formatter.FormatWeekView(resp))
			case "month":
				resp, err := app.Docket.GetMonthView(ctx, date.Year(), date.Month())
				if err != nil {
					return err
				}
				for i := range resp.Days {
					resp.Days[i].Events = filterViews(resp.Days[i].Events, query)
				}
				fmt.Print(formatter.FormatMonthView(resp))
			default:
				return fmt.Errorf("unknown view %q (want day, week or month)", view)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", "day", "Projection: day, week or month")
	cmd.Flags().StringVar(&dateStr, "date", "", "Anchor date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&query, "query", "", "Filter events by title, client, case reference, location or kind")

	return cmd
}

// filterViews narrows events by a case-insensitive substring over title,
// client, case reference, location and kind.
func filterViews(events []contract.EventView, query string) []contract.EventView {
	if query == "" {
		return events
	}
	needle := strings.ToLower(query)
	var out []contract.EventView
	for _, v := range events {
		haystack := strings.ToLower(strings.Join([]string{
			v.Title, v.Client, v.CaseReference, v.Location, v.Kind,
		}, " "))
		if strings.Contains(haystack, needle) {
			out = append(out, v)
		}
	}
	return out
}
