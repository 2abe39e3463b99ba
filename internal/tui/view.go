package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/usecase"
)

// View renders the TUI.
func (m *Model) View() string {
	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeConfirm, ModeInputTask, ModeInputFocus, ModeInputRename:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// contentWidth returns the usable width inside the app padding.
func (m *Model) contentWidth() int {
	return max(m.width-6, 40)
}

// viewMain renders the timer, summary and task list.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewTimer())
	b.WriteString("\n\n")

	if summary := m.viewSummary(); summary != "" {
		b.WriteString(summary)
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	} else if m.notice != "" {
		b.WriteString(m.styles.NoticeMsg.Render(m.notice) + "\n\n")
	}

	b.WriteString(m.viewTaskList())

	switch m.mode {
	case ModeNormal, ModeHelp:
		// No overlay for these modes
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModeInputTask:
		b.WriteString("\n")
		b.WriteString(m.viewInput("◆ New Task", "Text"))
	case ModeInputFocus:
		b.WriteString("\n")
		b.WriteString(m.viewInput("◆ Focus", "Focus"))
	case ModeInputRename:
		b.WriteString("\n")
		b.WriteString(m.viewInput("◆ Rename", "Text"))
	}

	b.WriteString("\n")
	b.WriteString(NewStatusLine(m.contentWidth(), &m.styles).Render(m.GetStatusInfo()))

	return b.String()
}

// viewHeader renders the title on the left and the clock on the right.
func (m *Model) viewHeader() string {
	timer := m.session.Timer()
	phase := timer.Phase()

	title := m.styles.HeaderText.Render("Routinify")
	clock := m.styles.PhaseStyle(phase.Name).Render(domain.FormatTime(timer.Remaining()))
	label := lipgloss.NewStyle().Foreground(Colors.Muted).Render(string(phase.Name) + " ")
	right := label + clock

	spacing := max(m.contentWidth()-lipgloss.Width(title)-lipgloss.Width(right), 1)
	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + right)
}

// viewTimer renders the phase progress bar and the session summary.
func (m *Model) viewTimer() string {
	timer := m.session.Timer()
	snap := timer.Snapshot()

	var percent float64
	if snap.Duration > 0 {
		percent = float64(snap.Duration-snap.Remaining) / float64(snap.Duration)
	}
	summary := domain.SessionSummary(snap.Phase.Name, snap.WorkSessionCount, snap.Running)
	return m.progress.ViewAs(percent) + "\n" + m.styles.TimerSummary.Render(summary)
}

// viewSummary renders the focus line and the path to the current top task.
func (m *Model) viewSummary() string {
	var lines []string
	if m.focus != "" {
		lines = append(lines, m.styles.Focus.Render("Focus: "+m.focus))
	}
	if len(m.path) > 0 {
		parts := make([]string, 0, len(m.path))
		for _, t := range m.path {
			parts = append(parts, t.Text)
		}
		crumb := runewidth.Truncate(strings.Join(parts, " › "), m.contentWidth(), "…")
		lines = append(lines, m.styles.Breadcrumb.Render(crumb))
	}
	return strings.Join(lines, "\n")
}

// viewTaskList renders active tasks, followed by completed tasks when shown.
func (m *Model) viewTaskList() string {
	if len(m.active) == 0 && (!m.showCompleted || len(m.completed) == 0) {
		return m.viewEmptyState()
	}

	var b strings.Builder
	for i, row := range m.active {
		b.WriteString(m.renderTaskItem(row, i == m.cursor))
		b.WriteString("\n")
	}

	if m.showCompleted && len(m.completed) > 0 {
		b.WriteString(m.viewGroupHeader(fmt.Sprintf("Completed (%d)", len(m.completed))))
		b.WriteString("\n")
		for i, row := range m.completed {
			b.WriteString(m.renderTaskItem(row, len(m.active)+i == m.cursor))
			b.WriteString("\n")
		}
	}

	return m.styles.TaskList.Render(b.String())
}

// viewGroupHeader renders a labelled separator line.
func (m *Model) viewGroupHeader(label string) string {
	text := m.styles.GroupHeaderLabel.Render(label)
	line := strings.Repeat("─", max(m.contentWidth()-lipgloss.Width(text)-1, 0))
	return text + " " + m.styles.GroupHeaderLine.Render(line)
}

// viewEmptyState renders a friendly empty state message.
func (m *Model) viewEmptyState() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("  Nothing to do\n\n"))
	b.WriteString(m.styles.Footer.Render("  Press "))
	b.WriteString(m.styles.FooterKey.Render("n"))
	b.WriteString(m.styles.Footer.Render(" to add a task or "))
	b.WriteString(m.styles.FooterKey.Render("w"))
	b.WriteString(m.styles.Footer.Render(" for the work routine"))
	b.WriteString("\n")
	return b.String()
}

// renderTaskItem renders a single task row.
// Format: "> 3   ○ Check emails" (indicator shown only when selected)
func (m *Model) renderTaskItem(row usecase.TaskRow, selected bool) string {
	indicator := " "
	if selected {
		indicator = m.styles.CursorSelected.Render(">")
	}

	pos := fmt.Sprintf("%3d", row.Position)
	indent := strings.Repeat("  ", row.Task.IndentationLevel)
	prefix := fmt.Sprintf("%s %s %s%s ", indicator, pos, indent, CheckIcon(row.Task.Checked))

	avail := max(m.contentWidth()-lipgloss.Width(prefix), 8)
	text := runewidth.Truncate(row.Task.Text, avail, "…")

	var style lipgloss.Style
	switch {
	case selected:
		style = m.styles.TaskTitleSelected
	case row.Task.Checked:
		style = m.styles.TaskChecked
	case row.Task.Type != domain.DefaultTaskType:
		style = m.styles.TaskRoutine
	default:
		style = m.styles.TaskTitle
	}
	return prefix + style.Render(text)
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	if m.confirmAction == ConfirmNone {
		return ""
	}

	target := "task"
	var subtasks int
	m.session.View(func(list *domain.TodoList) {
		if t, ok := list.Get(m.confirmID); ok {
			target = fmt.Sprintf("%q", runewidth.Truncate(t.Text, 40, "…"))
		}
		subtasks = len(list.AllChildren(m.confirmID))
	})

	color := Colors.Error
	title := m.styles.DialogTitle.Foreground(color).Render(fmt.Sprintf("Delete %s?", target))
	prompt := m.styles.DialogPrompt.Render(fmt.Sprintf("Its %d subtasks will be deleted too.", subtasks))

	yesBtn := m.styles.HelpKey.Render("[ y ] Confirm")
	noBtn := m.styles.Footer.Render("[ n ] Cancel")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left, yesBtn, "  ", noBtn)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		prompt,
		"",
		buttons,
	)

	return m.styles.Dialog.BorderForeground(color).Render(content)
}

// viewInput renders a single-line input dialog.
func (m *Model) viewInput(heading, label string) string {
	title := m.styles.DialogTitle.Render(heading)
	field := m.styles.InputPrompt.Render(label)
	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" save  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" cancel")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		field,
		m.input.View(),
		"",
		hint,
	)
	return m.styles.Dialog.Render(content)
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")

	h := m.help
	h.ShowAll = true
	content := h.View(m.keys)

	return m.styles.Dialog.
		BorderForeground(Colors.Primary).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", content))
}
