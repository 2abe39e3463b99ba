package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/routinify/internal/app"
	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/infra/prompt"
	"github.com/runoshun/routinify/internal/usecase"
	"github.com/spf13/cobra"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list to a JSON file",
		Long: `Write the task list and focus to routinify-tasks-v<version>.json.
The file can be loaded again with 'routinify import'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := openSession(c); err != nil {
				return err
			}

			out, err := c.ExportTasksUseCase().Execute(cmd.Context(), usecase.ExportTasksInput{Dir: dir})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d task(s) to %s\n", out.Count, out.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Destination directory (default: current directory)")

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the task list with an exported file",
		Long: `Replace the task list and focus with the contents of an exported file.

Replacing a non-empty list asks for confirmation unless --yes is given.
Files written by an unsupported version are rejected without changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openSession(c); err != nil {
				return err
			}

			out, err := c.ImportTasksUseCase().Execute(cmd.Context(), usecase.ImportTasksInput{
				Path:    args[0],
				Confirm: prompt.NewConfirmer(yes),
			})
			if errors.Is(err, domain.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Imported %d task(s)\n", out.Count)
			if out.Focus != "" {
				_, _ = fmt.Fprintf(w, "Focus: %s\n", out.Focus)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Replace the current list without asking")

	return cmd
}
