package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(msg.Width-8, 10)
		return m, nil

	case MsgStartupApplied:
		if msg.Added > 0 {
			m.notice = fmt.Sprintf("Added %d routine tasks", msg.Added)
		}
		return m, m.loadTasks()

	case MsgTasksLoaded:
		m.focus = msg.Focus
		m.setRows(msg.Active, msg.Completed)
		return m, tea.SetWindowTitle(m.session.Title())

	case MsgTasksChanged:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.selectID = msg.Select
		if msg.Notice != "" {
			m.notice = msg.Notice
		}
		return m, m.loadTasks()

	case MsgTimerTick:
		return m, m.handleTimerTick(msg)

	case MsgExported:
		m.notice = fmt.Sprintf("Exported %d tasks to %s", msg.Count, msg.Path)
		return m, nil

	case MsgError:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.err = msg.Err
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil

	case MsgQuit:
		return m, tea.Quit
	}

	return m, nil
}

// handleTimerTick advances the timer one second. A phase change rewrites the
// break routine, so the list is reloaded.
func (m *Model) handleTimerTick(msg MsgTimerTick) tea.Cmd {
	timer := m.session.Timer()
	before := timer.Phase().Name
	next := m.ticks.fire(msg.Gen)

	cmds := []tea.Cmd{next, tea.SetWindowTitle(m.session.Title())}
	if timer.Phase().Name != before {
		cmds = append(cmds, m.loadTasks())
	}
	return tea.Batch(cmds...)
}

// timerChanged returns the commands to run after a direct timer operation.
func (m *Model) timerChanged() tea.Cmd {
	return tea.Batch(m.ticks.next(), tea.SetWindowTitle(m.session.Title()))
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error and notice on any key press
	m.err = nil
	m.notice = ""

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeInputTask:
		return m.handleInputTaskMode(msg)
	case ModeInputFocus:
		return m.handleInputFocusMode(msg)
	case ModeInputRename:
		return m.handleInputRenameMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	timer := m.session.Timer()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.endSession()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m.startTaskInput(InsertEnd)

	case key.Matches(msg, m.keys.NewTop):
		return m.startTaskInput(InsertTop)

	case key.Matches(msg, m.keys.Focus):
		m.mode = ModeInputFocus
		m.input.Reset()
		m.input.Placeholder = "What is this session about?"
		m.input.SetValue(m.focus)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Timer):
		timer.Toggle()
		return m, m.timerChanged()

	case key.Matches(msg, m.keys.Reset):
		timer.Reset()
		return m, m.timerChanged()

	case key.Matches(msg, m.keys.Work):
		return m, m.switchPhase(domain.PhaseWork)

	case key.Matches(msg, m.keys.ShortBreak):
		return m, m.switchPhase(domain.PhaseShortBreak)

	case key.Matches(msg, m.keys.LongBreak):
		return m, m.switchPhase(domain.PhaseLongBreak)

	case key.Matches(msg, m.keys.Routine):
		return m, m.applyRoutine(domain.RoutineWork)

	case key.Matches(msg, m.keys.ToggleCompleted):
		m.showCompleted = !m.showCompleted
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m, m.exportTasks()
	}

	ref, ok := m.selectedRef()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleTask(ref)

	case key.Matches(msg, m.keys.Delete):
		if m.hasSubtasks(ref) {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmDelete
			m.confirmID = ref
			return m, nil
		}
		return m, m.deleteTask(ref)

	case key.Matches(msg, m.keys.MoveUp):
		return m, m.moveTask(ref, usecase.MoveUp)

	case key.Matches(msg, m.keys.MoveDown):
		return m, m.moveTask(ref, usecase.MoveDown)

	case key.Matches(msg, m.keys.Rename):
		m.mode = ModeInputRename
		m.renameID = ref
		m.input.Reset()
		m.input.Placeholder = "Task text"
		m.input.SetValue(m.SelectedTask().Text)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Indent):
		return m, m.indentTask(ref, 1)

	case key.Matches(msg, m.keys.Outdent):
		return m, m.indentTask(ref, -1)
	}

	return m, nil
}

// switchPhase jumps to the named phase with a full duration and keeps the
// countdown running if it was.
func (m *Model) switchPhase(name domain.PhaseName) tea.Cmd {
	if err := m.session.Timer().SwitchPhaseByName(name); err != nil {
		m.err = err
		return nil
	}
	return m.timerChanged()
}

// startTaskInput opens the task text input.
func (m *Model) startTaskInput(pos InsertPosition) (tea.Model, tea.Cmd) {
	m.mode = ModeInputTask
	m.insertPos = pos
	m.input.Reset()
	m.input.Placeholder = "Task text"
	return m, m.input.Focus()
}

// handleConfirmMode handles keys in confirm mode.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		switch m.confirmAction {
		case ConfirmNone:
			// Nothing to confirm
		case ConfirmDelete:
			return m, m.deleteTask(m.confirmID)
		}
	}

	return m, nil
}

// handleInputTaskMode handles keys in task text input mode.
func (m *Model) handleInputTaskMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		text := domain.NormalizeText(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.input.Blur()
		return m, m.addTask(text, m.insertPos)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleInputFocusMode handles keys in focus input mode.
func (m *Model) handleInputFocusMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.input.Blur()
		return m, m.setFocus(m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleInputRenameMode handles keys in rename input mode.
func (m *Model) handleInputRenameMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		text := domain.NormalizeText(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.input.Blur()
		return m, m.renameTask(m.renameID, text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}
