package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/routinify/internal/app"
	"github.com/runoshun/routinify/internal/tui"
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// It is the same as running routinify without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface with the task tree and timer.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}

// launchTUI runs the TUI until the user quits.
func launchTUI(c *app.Container) error {
	model, err := tui.New(c)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
