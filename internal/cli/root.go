package cli

import (
	"github.com/nyayak/docket/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service surface used by CLI commands.
type App struct {
	Docket service.DocketService

	// IsInteractive reports whether stdin is a terminal; the watch
	// command refuses to start without one. Nil means non-interactive.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "docket" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "docket",
		Short:         "Court docket scheduler for a small legal practice",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newDelayCmd(app),
		newReorderCmd(app),
		newRemoveCmd(app),
		newSlotCmd(app),
		newBufferCmd(app),
		newCheckCmd(app),
		newExportCmd(app),
		newWatchCmd(app),
	)

	return root
}
