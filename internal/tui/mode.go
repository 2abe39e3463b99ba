// Package tui provides the terminal user interface for routinify.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal     Mode = iota // Default navigation mode
	ModeConfirm                // Confirmation dialog mode
	ModeInputTask              // Task text input mode
	ModeInputFocus             // Focus line input mode
	ModeInputRename            // Task rename input mode
	ModeHelp                   // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeConfirm:
		return "confirm"
	case ModeInputTask:
		return "input_task"
	case ModeInputFocus:
		return "input_focus"
	case ModeInputRename:
		return "input_rename"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInputTask, ModeInputFocus, ModeInputRename:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Delete task with subtasks
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		return "delete"
	}
	return ""
}

// InsertPosition selects where a new task goes.
type InsertPosition int

const (
	InsertEnd InsertPosition = iota // Append as a root at the end
	InsertTop                       // Insert as a root at the top
)
