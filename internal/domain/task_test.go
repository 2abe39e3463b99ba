package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask_Defaults(t *testing.T) {
	task := newTask(TaskRecord{Text: "A", IndentationLevel: -2})

	assert.Equal(t, DefaultTaskType, task.Type)
	assert.Equal(t, 0, task.IndentationLevel)
	assert.Len(t, task.ID, 36)
	assert.True(t, task.IsRoot())
}

func TestTask_Record(t *testing.T) {
	task := Task{ID: "x", Text: "A", Type: "routine-work", IndentationLevel: 2, Checked: true}

	assert.Equal(t, TaskRecord{Text: "A", Type: "routine-work", IndentationLevel: 2, Checked: true}, task.Record())
	assert.False(t, task.IsRoot())
}

func TestTask_ShortID(t *testing.T) {
	assert.Equal(t, "abc", Task{ID: "abc"}.ShortID())
	assert.Equal(t, "12345678", Task{ID: "1234567890"}.ShortID())
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "write report", NormalizeText("  write report \n"))
	assert.Empty(t, NormalizeText("   "))
}
