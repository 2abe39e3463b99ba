// Package cli provides the command-line interface for routinify.
package cli

import (
	"fmt"

	"github.com/runoshun/routinify/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup   = "setup"
	groupTask    = "task"
	groupRoutine = "routine"
	groupTimer   = "timer"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for routinify.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "routinify",
		Short: "To-do tree with routines and a Pomodoro timer",
		Long: `routinify keeps a nested to-do list next to a Pomodoro timer.

Routines are reusable groups of steps. The work routine is inserted when
the list is empty or after a long pause, and the break routine appears
whenever a break starts.

Run without arguments to open the interactive TUI.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			c.SetLogScope(cmd.Name())
			if c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupRoutine, Title: "Routines:"},
		&cobra.Group{ID: groupTimer, Title: "Timer:"},
	)

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupSetup

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupSetup

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	checkCmd := newCheckCommand(c)
	checkCmd.GroupID = groupTask

	renameCmd := newRenameCommand(c)
	renameCmd.GroupID = groupTask

	upCmd := newMoveCommand(c, moveUp)
	upCmd.GroupID = groupTask

	downCmd := newMoveCommand(c, moveDown)
	downCmd.GroupID = groupTask

	indentCmd := newIndentCommand(c, 1)
	indentCmd.GroupID = groupTask

	outdentCmd := newIndentCommand(c, -1)
	outdentCmd.GroupID = groupTask

	focusCmd := newFocusCommand(c)
	focusCmd.GroupID = groupTask

	summaryCmd := newSummaryCommand(c)
	summaryCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	// Routine commands
	routineCmd := newRoutineCommand(c)
	routineCmd.GroupID = groupRoutine

	// Timer commands
	timerCmd := newTimerCommand(c)
	timerCmd.GroupID = groupTimer

	historyCmd := newHistoryCommand(c)
	historyCmd.GroupID = groupTimer

	root.AddCommand(
		configCmd,
		exportCmd,
		importCmd,
		addCmd,
		listCmd,
		rmCmd,
		checkCmd,
		renameCmd,
		upCmd,
		downCmd,
		indentCmd,
		outdentCmd,
		focusCmd,
		summaryCmd,
		tuiCmd,
		routineCmd,
		timerCmd,
		historyCmd,
	)

	return root
}

// openSession loads the task session for commands that read or change tasks.
func openSession(c *app.Container) error {
	if _, err := c.Session(); err != nil {
		return fmt.Errorf("open tasks: %w", err)
	}
	return nil
}
