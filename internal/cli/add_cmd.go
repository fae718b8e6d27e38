package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/nyayak/docket/internal/cli/formatter"
	"github.com/nyayak/docket/internal/contract"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var req contract.CreateEventRequest

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Schedule a new event",
		Long: `Schedule a new event. The requested start is rounded to the nearest
quarter hour; if it collides with the existing docket, reflow moves it
forward past the collision plus the configured buffer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Title = args[0]

			if addFormNeeded(req) {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return errors.New("--date and --time are required outside an interactive terminal")
				}
				if err := promptAddForm(&req); err != nil {
					return err
				}
			}

			result, err := app.Docket.Create(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatCreateResult(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Kind, "kind", "Meeting", "Event kind: Court, Meeting, Deadline or Personal")
	cmd.Flags().StringVar(&req.Date, "date", "", "Start date (YYYY-MM-DD, prompted when omitted)")
	cmd.Flags().StringVar(&req.Time, "time", "", "Start time (HH:MM, prompted when omitted)")
	cmd.Flags().IntVar(&req.DurationMinutes, "duration", 60, "Duration in minutes")
	cmd.Flags().StringVar(&req.Location, "location", "", "Venue")
	cmd.Flags().StringVar(&req.CaseReference, "case", "", "Case reference")
	cmd.Flags().StringVar(&req.Client, "client", "", "Client name")
	cmd.Flags().StringVar(&req.OpposingCounsel, "opposing", "", "Opposing counsel")
	cmd.Flags().StringVar(&req.Courtroom, "courtroom", "", "Courtroom")
	cmd.Flags().Float64Var(&req.DistanceKm, "distance", 0, "Travel distance in km")
	cmd.Flags().StringVar(&req.Repeat, "repeat", "", `Repeat policy ("weekly-4" adds four weekly copies)`)
	cmd.Flags().StringSliceVar(&req.Documents, "doc", nil, "Attach a document reference (repeatable)")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Free-form notes")

	return cmd
}
