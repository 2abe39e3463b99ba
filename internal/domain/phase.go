package domain

import (
	"fmt"
	"strings"
)

// PhaseName identifies a timer phase.
type PhaseName string

// Timer phases.
const (
	PhaseWork       PhaseName = "Work"
	PhaseShortBreak PhaseName = "Short Break"
	PhaseLongBreak  PhaseName = "Long Break"
)

// Default phase lengths.
const (
	DefaultWorkMinutes       = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
	DefaultLongBreakEvery    = 4
)

// Phase is a named timer interval.
// Fields are ordered to minimize memory padding.
type Phase struct {
	Name            PhaseName
	DurationMinutes int
}

// DurationSeconds returns the phase length in seconds.
func (p Phase) DurationSeconds() int {
	return p.DurationMinutes * 60
}

// IsBreak reports whether the phase is a short or long break.
func (p Phase) IsBreak() bool {
	return p.Name == PhaseShortBreak || p.Name == PhaseLongBreak
}

// PhaseSet is the set of phases a timer cycles through.
type PhaseSet struct {
	Work           Phase
	ShortBreak     Phase
	LongBreak      Phase
	LongBreakEvery int // Completed work sessions before a long break
}

// DefaultPhaseSet returns the standard 25/5/15 cycle with a long break every
// fourth work session.
func DefaultPhaseSet() PhaseSet {
	return PhaseSet{
		Work:           Phase{Name: PhaseWork, DurationMinutes: DefaultWorkMinutes},
		ShortBreak:     Phase{Name: PhaseShortBreak, DurationMinutes: DefaultShortBreakMinutes},
		LongBreak:      Phase{Name: PhaseLongBreak, DurationMinutes: DefaultLongBreakMinutes},
		LongBreakEvery: DefaultLongBreakEvery,
	}
}

// ByName returns the phase with the given name.
func (s PhaseSet) ByName(name PhaseName) (Phase, error) {
	switch name {
	case PhaseWork:
		return s.Work, nil
	case PhaseShortBreak:
		return s.ShortBreak, nil
	case PhaseLongBreak:
		return s.LongBreak, nil
	}
	return Phase{}, fmt.Errorf("%w: %q", ErrUnknownPhase, name)
}

// ParsePhaseName accepts a phase name or a short alias such as "work",
// "short" or "long-break".
func ParsePhaseName(s string) (PhaseName, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "work", "w":
		return PhaseWork, nil
	case "short", "short break", "short-break", "break", "s":
		return PhaseShortBreak, nil
	case "long", "long break", "long-break", "l":
		return PhaseLongBreak, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPhase, s)
}

// FormatTime renders seconds as zero-padded mm:ss.
// Negative values render as 00:00.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

var ordinals = []string{
	"first", "second", "third", "fourth", "fifth", "sixth", "seventh",
	"eighth", "ninth", "tenth", "eleventh", "twelfth", "thirteenth",
	"fourteenth", "fifteenth", "sixteenth", "seventeenth", "eighteenth",
	"nineteenth", "twentieth",
}

// NumberPrefix returns the ordinal word for the zero-based index n.
func NumberPrefix(n int) string {
	if n >= 0 && n < len(ordinals) {
		return ordinals[n]
	}
	return fmt.Sprintf("%dth", n+1)
}

// SessionSummary describes the current phase for display.
func SessionSummary(phase PhaseName, workSessionCount int, running bool) string {
	if !running {
		return "timer paused"
	}
	switch phase {
	case PhaseWork:
		return NumberPrefix(workSessionCount) + " work session"
	case PhaseShortBreak:
		if workSessionCount > 0 {
			return NumberPrefix(workSessionCount-1) + " break"
		}
		return "break"
	case PhaseLongBreak:
		return "enjoy your long break!"
	}
	return ""
}
