package usecase

import (
	"context"

	"github.com/runoshun/routinify/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	IncludeCompleted bool // Include checked tasks
}

// TaskRow is a task with its 1-based position in the sequence.
type TaskRow struct {
	Task     domain.Task
	Position int
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Focus     string
	Active    []TaskRow // Unchecked tasks in order
	Completed []TaskRow // Checked tasks in order (only when requested)
	Total     int
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	session *Session
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(session *Session) *ListTasks {
	return &ListTasks{session: session}
}

// Execute lists tasks split into active and completed groups.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	out := &ListTasksOutput{Focus: uc.session.Focus()}
	uc.session.View(func(list *domain.TodoList) {
		out.Total = list.Len()
		active, completed := list.Split()
		out.Active = rowsOf(list, active)
		if in.IncludeCompleted {
			out.Completed = rowsOf(list, completed)
		}
	})
	return out, nil
}

func rowsOf(list *domain.TodoList, tasks []domain.Task) []TaskRow {
	if len(tasks) == 0 {
		return nil
	}
	rows := make([]TaskRow, len(tasks))
	for i, t := range tasks {
		rows[i] = TaskRow{Task: t, Position: list.Index(t.ID) + 1}
	}
	return rows
}
