package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nyayak/docket/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDelayCmd(app *App) *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "delay EVENT_ID",
		Short: "Extend an event and push its followers forward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Docket.Delay(context.Background(), args[0], minutes); err != nil {
				return err
			}
			fmt.Printf("delayed %s by %d minutes; downstream events reflowed\n", args[0], minutes)
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "by", 15, "Delay in minutes")
	return cmd
}

func newReorderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder EVENT_ID POSITION",
		Short: "Move an event to a new position in the day's order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parsing position: %w", err)
			}
			if err := app.Docket.Reorder(context.Background(), args[0], position); err != nil {
				return err
			}
			fmt.Printf("moved %s to position %d\n", args[0], position)
			return nil
		},
	}
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove EVENT_ID",
		Short: "Remove an event from the docket",
		Long: `Remove an event. Remaining events keep their scheduled times; the
gap left behind is not compacted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Docket.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", args[0])
			return nil
		},
	}
	return cmd
}

func newSlotCmd(app *App) *cobra.Command {
	var dateStr string
	var minutes int

	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Suggest the first free slot on a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now().UTC()
			if dateStr != "" {
				parsed, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
				day = parsed
			}

			slot, err := app.Docket.SuggestSlot(context.Background(), day, minutes)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSlot(slot))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Day to search (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&minutes, "duration", 30, "Required duration in minutes")
	return cmd
}

func newBufferCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buffer [MINUTES]",
		Short: "Show or set the reflow gap between events",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 0 {
				minutes, err := app.Docket.Buffer(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("buffer: %d minutes\n", minutes)
				return nil
			}

			minutes, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing minutes: %w", err)
			}
			if err := app.Docket.SetBuffer(ctx, minutes); err != nil {
				return err
			}
			fmt.Printf("buffer set to %d minutes; applies on the next recompute\n", minutes)
			return nil
		},
	}
	return cmd
}

func newCheckCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check EVENT_ID ITEM",
		Short: "Toggle a preparation checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := app.Docket.ToggleChecklist(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatChecklist(args[1], value))
			return nil
		},
	}
	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the docket as an iCalendar (.ics) file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				return app.Docket.Export(context.Background(), os.Stdout)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			defer f.Close()

			if err := app.Docket.Export(context.Background(), f); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	return cmd
}
