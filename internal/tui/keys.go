package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Task management
	Toggle   key.Binding // Check or uncheck task
	New      key.Binding // Add task at the end
	NewTop   key.Binding // Add task at the top
	Delete   key.Binding // Delete task with subtasks
	MoveUp   key.Binding // Swap with previous sibling
	MoveDown key.Binding // Swap with next sibling
	Indent   key.Binding // Indent subtree
	Outdent  key.Binding // Outdent subtree
	Focus    key.Binding // Edit focus line
	Rename   key.Binding // Edit task text

	// Timer
	Timer      key.Binding // Start/stop countdown
	Reset      key.Binding // Restart current phase
	Work       key.Binding // Switch to work phase
	ShortBreak key.Binding // Switch to short break
	LongBreak  key.Binding // Switch to long break

	// Routines
	Routine key.Binding // Insert work routine

	// View
	ToggleCompleted key.Binding // Show or hide completed tasks
	Export          key.Binding // Export tasks to a file
	Help            key.Binding // Show help

	// General
	Quit    key.Binding // Quit application
	Escape  key.Binding // Cancel/back
	Enter   key.Binding // Submit input
	Confirm key.Binding // Confirm action (in confirm mode)
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "check"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		NewTop: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "new at top"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "move down"),
		),
		Indent: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "indent"),
		),
		Outdent: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "outdent"),
		),
		Focus: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "focus"),
		),
		Rename: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rename"),
		),
		Timer: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start/stop"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Work: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "work"),
		),
		ShortBreak: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "short break"),
		),
		LongBreak: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "long break"),
		),
		Routine: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "work routine"),
		),
		ToggleCompleted: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "completed"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// ShortHelp returns keybindings to show in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.New, k.Delete, k.Timer, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown, k.Indent, k.Outdent},
		{k.Toggle, k.New, k.NewTop, k.Delete, k.Rename, k.Focus},
		{k.Timer, k.Reset, k.Work, k.ShortBreak, k.LongBreak},
		{k.Routine, k.ToggleCompleted, k.Export, k.Help, k.Quit},
	}
}
