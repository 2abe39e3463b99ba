package usecase

import (
	"context"

	"github.com/runoshun/routinify/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Text   string // Task text (required)
	Indent int    // Requested indentation level, clamped to a valid level
	Above  bool   // Insert at the top of the list as a root
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task domain.Task
}

// AddTask is the use case for adding a task.
type AddTask struct {
	session *Session
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(session *Session) *AddTask {
	return &AddTask{session: session}
}

// Execute adds a task at the end of the list, or at the top when Above is set.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	text := domain.NormalizeText(in.Text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	rec := domain.TaskRecord{Text: text, IndentationLevel: in.Indent}
	var task domain.Task
	err := uc.session.Update(func(list *domain.TodoList, _ *domain.Routines) error {
		if in.Above {
			task = list.AddTaskAbove(rec)
		} else {
			task = list.AddTask(rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &AddTaskOutput{Task: task}, nil
}
