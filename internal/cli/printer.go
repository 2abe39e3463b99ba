package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/usecase"
)

// Printer styles. lipgloss drops colors when output is not a terminal.
var (
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#636E72"))
	styleRoutine = lipgloss.NewStyle().Foreground(lipgloss.Color("#A29BFE"))
	styleDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("#636E72")).Strikethrough(true)
	styleHeading = lipgloss.NewStyle().Bold(true)
)

// treePrinter writes task rows as an indented tree.
// Fields are ordered to minimize memory padding.
type treePrinter struct {
	w       io.Writer
	showIDs bool
}

func newTreePrinter(w io.Writer, showIDs bool) *treePrinter {
	return &treePrinter{w: w, showIDs: showIDs}
}

// printList writes the focus line, the open tasks and, when present, the
// completed tasks.
func (p *treePrinter) printList(out *usecase.ListTasksOutput) {
	if out.Focus != "" {
		_, _ = fmt.Fprintf(p.w, "%s %s\n\n", styleHeading.Render("Focus:"), out.Focus)
	}

	if len(out.Active) == 0 {
		_, _ = fmt.Fprintln(p.w, styleMuted.Render("No open tasks"))
	}
	for _, row := range out.Active {
		p.printRow(row)
	}

	if len(out.Completed) > 0 {
		_, _ = fmt.Fprintf(p.w, "\n%s\n", styleHeading.Render(fmt.Sprintf("Completed (%d)", len(out.Completed))))
		for _, row := range out.Completed {
			p.printRow(row)
		}
	}
}

// printRow writes one task line: position, optional ID, indentation, box and text.
func (p *treePrinter) printRow(row usecase.TaskRow) {
	var b strings.Builder
	fmt.Fprintf(&b, "%3d ", row.Position)
	if p.showIDs {
		b.WriteString(styleMuted.Render(row.Task.ShortID()) + " ")
	}
	b.WriteString(strings.Repeat("  ", row.Task.IndentationLevel))

	box := "[ ]"
	text := row.Task.Text
	switch {
	case row.Task.Checked:
		box = "[x]"
		text = styleDone.Render(text)
	case row.Task.Type != domain.DefaultTaskType:
		text = styleRoutine.Render(text)
	}
	b.WriteString(box + " " + text)

	_, _ = fmt.Fprintln(p.w, b.String())
}
