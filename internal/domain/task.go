// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultTaskType is the type tag of tasks created by the user.
const DefaultTaskType = "user"

// Task is one entry of the ordered task sequence.
// The tree structure is implied by IndentationLevel: a task's parent is the
// nearest preceding task whose level is exactly one less.
// Fields are ordered to minimize memory padding.
type Task struct {
	ID               string // Opaque identifier, regenerated on every load
	Text             string // Display text
	Type             string // Tag used for bulk removal ("user", "routine-work", ...)
	IndentationLevel int    // Depth in the tree, 0 for roots
	Checked          bool   // Completion flag
}

// TaskRecord is the persisted form of a Task. IDs are not persisted.
// Fields are ordered to minimize memory padding.
type TaskRecord struct {
	Text             string `json:"text"`
	Type             string `json:"type"`
	IndentationLevel int    `json:"indentationLevel"`
	Checked          bool   `json:"checked"`
}

// NewTaskID returns a fresh opaque task identifier.
func NewTaskID() string {
	return uuid.NewString()
}

// newTask builds a task from a record, filling in defaults.
func newTask(r TaskRecord) *Task {
	typ := r.Type
	if typ == "" {
		typ = DefaultTaskType
	}
	level := r.IndentationLevel
	if level < 0 {
		level = 0
	}
	return &Task{
		ID:               NewTaskID(),
		Text:             r.Text,
		Type:             typ,
		IndentationLevel: level,
		Checked:          r.Checked,
	}
}

// Record returns the persisted form of the task.
func (t Task) Record() TaskRecord {
	return TaskRecord{
		Text:             t.Text,
		Type:             t.Type,
		IndentationLevel: t.IndentationLevel,
		Checked:          t.Checked,
	}
}

// IsRoot reports whether the task sits at the top level.
func (t Task) IsRoot() bool {
	return t.IndentationLevel == 0
}

// ShortID returns the first eight characters of the task ID.
func (t Task) ShortID() string {
	if len(t.ID) <= 8 {
		return t.ID
	}
	return t.ID[:8]
}

// NormalizeText trims surrounding whitespace from user-entered task text.
func NormalizeText(text string) string {
	return strings.TrimSpace(text)
}
