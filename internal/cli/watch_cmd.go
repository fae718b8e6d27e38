package cli

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nyayak/docket/internal/cli/formatter"
	"github.com/nyayak/docket/internal/contract"
	"github.com/spf13/cobra"
)

const watchRefresh = 30 * time.Second

func newWatchCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live view of today's docket, refreshed every 30 seconds",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return errors.New("watch needs an interactive terminal")
			}
			model := newWatchModel(app)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
	return cmd
}

type watchTickMsg time.Time

type watchViewMsg struct {
	view *contract.DayViewResponse
	err  error
}

type watchModel struct {
	app  *App
	view *contract.DayViewResponse
	err  error
}

func newWatchModel(app *App) watchModel {
	return watchModel{app: app}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.fetch, watchTick())
}

func watchTick() tea.Cmd {
	return tea.Tick(watchRefresh, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) fetch() tea.Msg {
	view, err := m.app.Docket.GetDayView(context.Background(), time.Now().UTC())
	return watchViewMsg{view: view, err: err}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, m.fetch
		}
	case watchTickMsg:
		return m, tea.Batch(m.fetch, watchTick())
	case watchViewMsg:
		m.view = msg.view
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("error: "+m.err.Error()) + "\n"
	}
	if m.view == nil {
		return formatter.StyleDim.Render("loading docket…") + "\n"
	}
	return formatter.FormatDayView(m.view) + "\n" +
		formatter.StyleDim.Render("q quit · r refresh") + "\n"
}
