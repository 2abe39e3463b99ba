package cli

import (
	"fmt"
	"strings"

	"github.com/runoshun/routinify/internal/app"
	"github.com/runoshun/routinify/internal/usecase"
	"github.com/spf13/cobra"
)

// newRoutineCommand creates the routine command.
func newRoutineCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Insert, remove and define routines",
		Long: `Routines are reusable groups of steps. Inserting a routine adds a root
task named "<name> routine" at the top of the list with the steps as subtasks.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newRoutineAddCommand(c))
	cmd.AddCommand(newRoutineRmCommand(c))
	cmd.AddCommand(newRoutineListCommand(c))
	cmd.AddCommand(newRoutineDefineCommand(c))

	return cmd
}

// newRoutineAddCommand creates the routine add subcommand.
func newRoutineAddCommand(c *app.Container) *cobra.Command {
	var unique bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Insert a routine at the top of the list",
		Long: `Insert a routine at the top of the list.

With --unique, any existing copy of the routine is removed first.
An unknown name inserts only the root task.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openSession(c); err != nil {
				return err
			}

			action := usecase.RoutineAdd
			if unique {
				action = usecase.RoutineAddUnique
			}
			out, err := c.ApplyRoutineUseCase().Execute(cmd.Context(), usecase.ApplyRoutineInput{
				Name:   args[0],
				Action: action,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Removed > 0 {
				_, _ = fmt.Fprintf(w, "Removed %d task(s) of the previous copy\n", out.Removed)
			}
			_, _ = fmt.Fprintf(w, "Added %d task(s)\n", len(out.Added))
			if !out.Known {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: routine %q has no steps\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "Replace any existing copy of the routine")

	return cmd
}

// newRoutineRmCommand creates the routine rm subcommand.
func newRoutineRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove every copy of a routine from the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openSession(c); err != nil {
				return err
			}

			out, err := c.ApplyRoutineUseCase().Execute(cmd.Context(), usecase.ApplyRoutineInput{
				Name:   args[0],
				Action: usecase.RoutineRemove,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d task(s)\n", out.Removed)
			return nil
		},
	}
}

// newRoutineListCommand creates the routine list subcommand.
func newRoutineListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List known routines and their steps",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.Session()
			if err != nil {
				return fmt.Errorf("open tasks: %w", err)
			}

			w := cmd.OutOrStdout()
			for _, name := range session.RoutineNames() {
				_, _ = fmt.Fprintln(w, styleHeading.Render(name))
				for _, step := range session.RoutineSteps(name) {
					_, _ = fmt.Fprintf(w, "  - %s\n", step)
				}
			}
			return nil
		},
	}
}

// newRoutineDefineCommand creates the routine define subcommand.
func newRoutineDefineCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "define <name> [step...]",
		Short: "Save a routine to the routine file",
		Long: `Save a routine with the given steps to routines.yaml.
Built-in routines can be overridden. Giving no steps deletes the saved
definition, restoring the built-in one if there is one.

Examples:
  routinify routine define gym "Warm up" "Lift" "Stretch"
  routinify routine define gym`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.RoutineStore == nil {
				return fmt.Errorf("no routine file configured")
			}

			out, err := c.DefineRoutineUseCase().Execute(cmd.Context(), usecase.DefineRoutineInput{
				Name:  args[0],
				Steps: args[1:],
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Removed {
				_, _ = fmt.Fprintf(w, "Removed routine %q\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(w, "Saved routine %q: %s\n", args[0], strings.Join(out.Steps, ", "))
			return nil
		},
	}
}
