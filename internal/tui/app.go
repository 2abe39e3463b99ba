package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/routinify/internal/app"
	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	session   *usecase.Session
	ticks     *tickScheduler
	err       error

	// State (slices - contain pointers)
	active    []usecase.TaskRow
	completed []usecase.TaskRow
	path      []domain.Task

	// Components (structs with pointers)
	keys     KeyMap
	styles   Styles
	help     help.Model
	progress progress.Model

	// Input state (large structs)
	input textinput.Model

	// Strings
	focus     string
	notice    string
	confirmID string
	renameID  string
	selectID  string

	// Numeric state (smaller types last)
	mode           Mode
	confirmAction  ConfirmAction
	insertPos      InsertPosition
	width          int
	height         int
	cursor         int
	completedCount int
	showCompleted  bool
}

// New creates a new TUI Model with the given container.
// The container's scheduler is replaced so that timer ticks arrive as
// bubbletea messages; New must run before anything opens the session.
func New(c *app.Container) (*Model, error) {
	ticks := &tickScheduler{}
	c.Scheduler = ticks
	session, err := c.Session()
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	ti := textinput.New()
	ti.CharLimit = 500

	return &Model{
		container: c,
		session:   session,
		ticks:     ticks,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		input:     ti,
		mode:      ModeNormal,
		width:     80,
	}, nil
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.applyStartupRoutine(),
		tea.SetWindowTitle(m.session.Title()),
	)
}

// applyStartupRoutine returns a command that runs the startup routine check.
func (m *Model) applyStartupRoutine() tea.Cmd {
	return func() tea.Msg {
		added, err := m.session.ApplyStartupRoutine()
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStartupApplied{Added: len(added)}
	}
}

// loadTasks returns a command that reads the task list.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{
			IncludeCompleted: true,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Focus: out.Focus, Active: out.Active, Completed: out.Completed}
	}
}

// rows returns the rows the cursor can select, in display order.
func (m *Model) rows() []usecase.TaskRow {
	if !m.showCompleted {
		return m.active
	}
	rows := make([]usecase.TaskRow, 0, len(m.active)+len(m.completed))
	rows = append(rows, m.active...)
	return append(rows, m.completed...)
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	t := rows[m.cursor].Task
	return &t
}

// setRows replaces the visible rows and keeps the cursor on selectID when it
// is still visible.
func (m *Model) setRows(active, completed []usecase.TaskRow) {
	m.active = active
	m.completed = completed
	m.completedCount = len(completed)

	rows := m.rows()
	if m.selectID != "" {
		for i, r := range rows {
			if r.Task.ID == m.selectID {
				m.cursor = i
				break
			}
		}
		m.selectID = ""
	}
	m.clampCursor()

	m.path = nil
	m.session.View(func(list *domain.TodoList) {
		m.path = list.FirstTaskSummary()
	})
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectedRef returns the task reference for the selected row.
func (m *Model) selectedRef() (string, bool) {
	t := m.SelectedTask()
	if t == nil {
		return "", false
	}
	return t.ID, true
}

// addTask returns a command that adds a task.
func (m *Model) addTask(text string, pos InsertPosition) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
			Text:  text,
			Above: pos == InsertTop,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksChanged{Select: out.Task.ID}
	}
}

// toggleTask returns a command that checks or unchecks a task.
func (m *Model) toggleTask(ref string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{Ref: ref})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksChanged{Select: out.Task.ID}
	}
}

// deleteTask returns a command that deletes a task with its subtasks.
// Confirmation has already happened in the dialog.
func (m *Model) deleteTask(ref string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{
			Ref:     ref,
			Confirm: domain.AlwaysConfirm,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksChanged{Notice: fmt.Sprintf("Deleted %d task(s)", out.Removed)}
	}
}

// moveTask returns a command that swaps a task with its neighbouring sibling.
func (m *Model) moveTask(ref string, dir usecase.MoveDirection) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.MoveTaskUseCase().Execute(context.Background(), usecase.MoveTaskInput{
			Ref:       ref,
			Direction: dir,
			Steps:     1,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksChanged{Select: out.Task.ID}
	}
}

// indentTask returns a command that shifts a task subtree by delta levels.
func (m *Model) indentTask(ref string, delta int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.IndentTaskUseCase().Execute(context.Background(), usecase.IndentTaskInput{
			Ref:   ref,
			Delta: delta,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksChanged{Select: out.Task.ID}
	}
}

// renameTask returns a command that replaces a task's text.
func (m *Model) renameTask(ref, text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.RenameTaskUseCase().Execute(context.Background(), usecase.RenameTaskInput{Ref: ref, Text: text})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksChanged{Select: out.Task.ID}
	}
}

// setFocus returns a command that replaces the focus line.
func (m *Model) setFocus(focus string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.container.SetFocusUseCase().Execute(context.Background(), usecase.SetFocusInput{Focus: focus}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksChanged{}
	}
}

// applyRoutine returns a command that inserts a fresh copy of a routine.
func (m *Model) applyRoutine(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ApplyRoutineUseCase().Execute(context.Background(), usecase.ApplyRoutineInput{
			Name:   name,
			Action: usecase.RoutineAddUnique,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksChanged{Notice: fmt.Sprintf("Added %s (%d tasks)", domain.RoutineTitle(name), len(out.Added))}
	}
}

// exportTasks returns a command that writes the task list to the working directory.
func (m *Model) exportTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ExportTasksUseCase().Execute(context.Background(), usecase.ExportTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgExported{Path: out.Path, Count: out.Count}
	}
}

// endSession returns a command that stops the timer and saves before quitting.
func (m *Model) endSession() tea.Cmd {
	return func() tea.Msg {
		if err := m.session.End(); err != nil {
			m.container.Logger.Error("tui", fmt.Sprintf("end session: %v", err))
		}
		return MsgQuit{}
	}
}

// hasSubtasks reports whether the task has any descendants.
func (m *Model) hasSubtasks(id string) bool {
	var found bool
	m.session.View(func(list *domain.TodoList) {
		found = len(list.AllChildren(id)) > 0
	})
	return found
}
