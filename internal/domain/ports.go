package domain

import (
	"context"
	"time"
)

// Confirmer asks the user a yes/no question before a destructive change.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(message string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(message string) (bool, error) {
	return f(message)
}

// AlwaysConfirm accepts every question. Used when the caller already asked
// the user (e.g. a TUI confirm dialog or a --yes flag).
var AlwaysConfirm Confirmer = ConfirmFunc(func(string) (bool, error) { return true, nil })

// NeverConfirm declines every question.
var NeverConfirm Confirmer = ConfirmFunc(func(string) (bool, error) { return false, nil })

// Scheduler runs fn every period until the returned stop function is called.
// Stop must not block waiting for an in-flight fn.
type Scheduler interface {
	Every(period time.Duration, fn func()) (stop func())
}

// Notifier plays the cue for a phase that is about to start.
type Notifier interface {
	Notify(next Phase)
}

// Logger writes diagnostic messages.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// EnvelopeStore persists the session envelope text.
type EnvelopeStore interface {
	// Read returns the stored text, or "" when nothing has been saved yet.
	Read() (string, error)
	// Write replaces the stored text.
	Write(data []byte) error
}

// RuntimeState holds timestamps kept between runs, in Unix milliseconds.
type RuntimeState struct {
	LastExitTime int64 `toml:"last_exit_time"`
	LastLoadTime int64 `toml:"last_load_time"`
}

// RuntimeStore persists RuntimeState.
type RuntimeStore interface {
	// LoadRuntime returns the stored state, or a zero state when none exists.
	LoadRuntime() (*RuntimeState, error)
	SaveRuntime(state *RuntimeState) error
}

// PhaseRecord is one completed timer phase.
// Fields are ordered to minimize memory padding.
type PhaseRecord struct {
	EndedAt          time.Time
	Phase            PhaseName
	Next             PhaseName
	Focus            string
	TopTask          string
	ID               int64
	DurationSeconds  int
	WorkSessionCount int
}

// PhaseHistory records completed phases.
type PhaseHistory interface {
	Record(ctx context.Context, rec PhaseRecord) error
	// List returns records that ended at or after since, newest first.
	// A non-positive limit means no limit.
	List(ctx context.Context, since time.Time, limit int) ([]PhaseRecord, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration merged over defaults.
	Load() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// ConfigPath returns the path of the config file.
	ConfigPath() string
	// InitConfig writes the default config file.
	// Returns ErrConfigExists when the file is already present.
	InitConfig() error
}

// RoutineStore loads and saves user-defined routines.
type RoutineStore interface {
	// LoadRoutines returns routines by name, or an empty map when no file exists.
	LoadRoutines() (map[string][]string, error)
	// SaveRoutines replaces the user-defined routines.
	SaveRoutines(routines map[string][]string) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
