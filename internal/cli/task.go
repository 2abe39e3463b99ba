package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/routinify/internal/app"
	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/infra/prompt"
	"github.com/runoshun/routinify/internal/usecase"
	"github.com/spf13/cobra"
)

// promptTextFunc asks for task text when none is given on the command line.
var promptTextFunc = prompt.Text

// newAddCommand creates the add command for adding tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Indent int
		Top    bool
	}

	cmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Add a task",
		Long: `Add a task to the end of the list.

The indentation level is clamped so that the task always has a parent:
at most one level deeper than the task before it.

Examples:
  # Add a root task
  routinify add Write report

  # Add a subtask under the last task
  routinify add --indent 1 Outline sections

  # Add a task at the top of the list
  routinify add --top Call the bank

  # Prompt for the text
  routinify add`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openSession(c); err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				var err error
				if text, err = promptTextFunc("New task", "What needs doing?"); err != nil {
					return err
				}
			}

			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Text:   text,
				Indent: opts.Indent,
				Above:  opts.Top,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", out.Task.Text, out.Task.ShortID())
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Indent, "indent", "i", 0, "Indentation level (clamped to a valid level)")
	cmd.Flags().BoolVar(&opts.Top, "top", false, "Insert at the top of the list as a root task")

	return cmd
}

// newListCommand creates the ls command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		All bool
		IDs bool
	}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List tasks",
		Long: `List open tasks as a tree. The number in front of each task is its
position, which other commands accept as a task reference.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := openSession(c); err != nil {
				return err
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{
				IncludeCompleted: opts.All,
			})
			if err != nil {
				return err
			}

			p := newTreePrinter(cmd.OutOrStdout(), opts.IDs)
			p.printList(out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Also show completed tasks")
	cmd.Flags().BoolVar(&opts.IDs, "ids", false, "Show short task IDs")

	return cmd
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <task>",
		Short: "Delete a task and its subtasks",
		Long: `Delete a task together with all of its subtasks.

Deleting a task with subtasks asks for confirmation unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openSession(c); err != nil {
				return err
			}

			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{
				Ref:     args[0],
				Confirm: prompt.NewConfirmer(yes),
			})
			if errors.Is(err, domain.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q (%d task(s))\n", out.Task.Text, out.Removed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete subtasks without asking")

	return cmd
}

// newCheckCommand creates the check command for toggling tasks.
func newCheckCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "check <task>",
		Aliases: []string{"toggle"},
		Short:   "Check or uncheck a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openSession(c); err != nil {
				return err
			}

			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{Ref: args[0]})
			if err != nil {
				return err
			}

			verb := "Unchecked"
			if out.Task.Checked {
				verb = "Checked"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %q\n", verb, out.Task.Text)
			return nil
		},
	}
}

// newRenameCommand creates the rename command for replacing a task's text.
func newRenameCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <task> <text...>",
		Short: "Replace the text of a task",
		Long: `Replace the text of a task. Its position, level and check state stay the same.

Examples:
  routinify rename 3 Write the summary`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openSession(c); err != nil {
				return err
			}

			out, err := c.RenameTaskUseCase().Execute(cmd.Context(), usecase.RenameTaskInput{
				Ref:  args[0],
				Text: strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", out.Previous, out.Task.Text)
			return nil
		},
	}
}

// Move command names.
const (
	moveUp   = "up"
	moveDown = "down"
)

// newMoveCommand creates the up or down command for reordering tasks.
func newMoveCommand(c *app.Container, name string) *cobra.Command {
	var steps int

	dir := usecase.MoveUp
	if name == moveDown {
		dir = usecase.MoveDown
	}

	cmd := &cobra.Command{
		Use:   name + " <task>",
		Short: fmt.Sprintf("Move a task %s among its siblings", name),
		Long: fmt.Sprintf(`Move a task %s past its neighbouring sibling.
Subtasks move with their parent.`, name),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openSession(c); err != nil {
				return err
			}

			out, err := c.MoveTaskUseCase().Execute(cmd.Context(), usecase.MoveTaskInput{
				Ref:       args[0],
				Direction: dir,
				Steps:     steps,
			})
			if err != nil {
				return err
			}

			if out.Moved == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%q has no sibling to move %s past\n", out.Task.Text, dir)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved %q %s by %d\n", out.Task.Text, dir, out.Moved)
			return nil
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of siblings to move past")

	return cmd
}

// newIndentCommand creates the indent or outdent command.
func newIndentCommand(c *app.Container, delta int) *cobra.Command {
	use, short := "indent", "Nest a task under its previous sibling"
	if delta < 0 {
		use, short = "outdent", "Move a task one level up the tree"
	}

	return &cobra.Command{
		Use:   use + " <task>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openSession(c); err != nil {
				return err
			}

			out, err := c.IndentTaskUseCase().Execute(cmd.Context(), usecase.IndentTaskInput{
				Ref:   args[0],
				Delta: delta,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%q is at level %d\n", out.Task.Text, out.Level)
			return nil
		},
	}
}

// newFocusCommand creates the focus command for the session focus line.
func newFocusCommand(c *app.Container) *cobra.Command {
	var clearFocus bool

	cmd := &cobra.Command{
		Use:   "focus [text...]",
		Short: "Show or set the session focus",
		Long: `Show the session focus line, or replace it with the given text.
Use --clear to remove it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openSession(c); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(args) == 0 && !clearFocus {
				out, err := c.ShowSummaryUseCase().Execute(cmd.Context(), usecase.ShowSummaryInput{})
				if err != nil {
					return err
				}
				if out.Focus == "" {
					_, _ = fmt.Fprintln(w, "No focus set")
					return nil
				}
				_, _ = fmt.Fprintln(w, out.Focus)
				return nil
			}

			focus := strings.Join(args, " ")
			if _, err := c.SetFocusUseCase().Execute(cmd.Context(), usecase.SetFocusInput{Focus: focus}); err != nil {
				return err
			}
			if clearFocus {
				_, _ = fmt.Fprintln(w, "Focus cleared")
				return nil
			}
			_, _ = fmt.Fprintf(w, "Focus: %s\n", domain.NormalizeText(focus))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearFocus, "clear", false, "Remove the focus line")

	return cmd
}

// newSummaryCommand creates the summary command showing what to do next.
func newSummaryCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the focus and the next task",
		Long: `Show the focus line and the path from the first open task down to
its first open subtask at each level.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := openSession(c); err != nil {
				return err
			}

			out, err := c.ShowSummaryUseCase().Execute(cmd.Context(), usecase.ShowSummaryInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Focus != "" {
				_, _ = fmt.Fprintf(w, "Focus: %s\n", out.Focus)
			}
			if len(out.Path) == 0 {
				_, _ = fmt.Fprintln(w, "Nothing to do")
				return nil
			}
			parts := make([]string, 0, len(out.Path))
			for _, t := range out.Path {
				parts = append(parts, t.Text)
			}
			_, _ = fmt.Fprintf(w, "Next: %s\n", strings.Join(parts, " › "))
			return nil
		},
	}
}
