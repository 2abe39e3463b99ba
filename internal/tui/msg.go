package tui

import "github.com/runoshun/routinify/internal/usecase"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the task list has been read from the session.
type MsgTasksLoaded struct {
	Focus     string
	Active    []usecase.TaskRow
	Completed []usecase.TaskRow
}

func (MsgTasksLoaded) sealed() {}

// MsgTasksChanged is sent after a mutation so the list is reloaded.
// Select, when set, is the ID the cursor should follow.
type MsgTasksChanged struct {
	Select string
	Notice string
}

func (MsgTasksChanged) sealed() {}

// MsgStartupApplied is sent when the startup routine check has run.
type MsgStartupApplied struct {
	Added int
}

func (MsgStartupApplied) sealed() {}

// MsgTimerTick is sent once per scheduled timer second.
// Gen identifies the scheduling generation it belongs to.
type MsgTimerTick struct {
	Gen uint64
}

func (MsgTimerTick) sealed() {}

// MsgExported is sent when the task list has been written to a file.
type MsgExported struct {
	Path  string
	Count int
}

func (MsgExported) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error.
type MsgClearError struct{}

func (MsgClearError) sealed() {}

// MsgQuit is sent once the session has been closed.
type MsgQuit struct{}

func (MsgQuit) sealed() {}
