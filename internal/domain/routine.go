package domain

import (
	"maps"
	"slices"
	"strings"
)

// Built-in routine names.
const (
	RoutineWork  = "work"
	RoutineBreak = "break"
	RoutineStudy = "study"
)

// routineTagPrefix prefixes the type tag of every task created from a routine.
const routineTagPrefix = "routine-"

// RoutineTag returns the type tag shared by all tasks of the named routine.
func RoutineTag(name string) string {
	return routineTagPrefix + name
}

// RoutineTitle returns the text of the routine's root task.
func RoutineTitle(name string) string {
	return name + " routine"
}

// DefaultRoutines returns the built-in routine definitions.
// The returned map is a fresh copy.
func DefaultRoutines() map[string][]string {
	return map[string][]string{
		RoutineWork: {
			"Review today's calendar",
			"Check emails",
			"Check messages",
			"Review task list",
			"Pick the top three priorities",
			"Set session focus",
			"Close distractions",
			"Start the timer",
		},
		RoutineBreak: {
			"Stand up and stretch",
			"Drink water",
			"Rest your eyes",
			"Take a short walk",
		},
		RoutineStudy: {
			"Read chapter",
			"Take notes",
			"Practice exercises",
		},
	}
}

// MergeRoutines returns base with every routine in override added or replaced.
func MergeRoutines(base, override map[string][]string) map[string][]string {
	out := make(map[string][]string, len(base)+len(override))
	for name, steps := range base {
		out[name] = slices.Clone(steps)
	}
	for name, steps := range override {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out[name] = slices.Clone(steps)
	}
	return out
}

// Routines inserts and removes named checklists in a TodoList.
type Routines struct {
	list  *TodoList
	steps map[string][]string
}

// NewRoutines creates a Routines bound to list.
// A nil steps map uses DefaultRoutines.
func NewRoutines(list *TodoList, steps map[string][]string) *Routines {
	if steps == nil {
		steps = DefaultRoutines()
	}
	return &Routines{list: list, steps: steps}
}

// Names returns the known routine names in sorted order.
func (r *Routines) Names() []string {
	return slices.Sorted(maps.Keys(r.steps))
}

// Steps returns the step texts of the named routine.
// Unknown names have no steps.
func (r *Routines) Steps(name string) []string {
	return slices.Clone(r.steps[name])
}

// Known reports whether the routine is defined.
func (r *Routines) Known(name string) bool {
	_, ok := r.steps[name]
	return ok
}

// AddTemplate prepends the routine as a root with its steps as children.
// An unknown name inserts only the root.
func (r *Routines) AddTemplate(name string) []Task {
	tag := RoutineTag(name)
	records := []TaskRecord{{Text: RoutineTitle(name), Type: tag}}
	for _, step := range r.steps[name] {
		records = append(records, TaskRecord{Text: step, Type: tag, IndentationLevel: 1})
	}
	return r.list.PrependGroup(records...)
}

// RemoveTemplate removes every task of the routine and returns the count.
func (r *Routines) RemoveTemplate(name string) int {
	return r.list.RemoveType(RoutineTag(name))
}

// AddUniqueTemplate replaces any existing instance of the routine with a
// fresh one at the front of the list.
func (r *Routines) AddUniqueTemplate(name string) []Task {
	r.RemoveTemplate(name)
	return r.AddTemplate(name)
}
