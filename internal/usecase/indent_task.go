package usecase

import (
	"context"

	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/usecase/shared"
)

// IndentTaskInput contains the parameters for changing a task's level.
type IndentTaskInput struct {
	Ref   string // Task position or ID prefix
	Delta int    // Positive to indent, negative to outdent
}

// IndentTaskOutput contains the result of changing a task's level.
type IndentTaskOutput struct {
	Task  domain.Task
	Level int // Resulting indentation level
}

// IndentTask is the use case for indenting or outdenting a task subtree.
type IndentTask struct {
	session *Session
}

// NewIndentTask creates a new IndentTask use case.
func NewIndentTask(session *Session) *IndentTask {
	return &IndentTask{session: session}
}

// Execute shifts the task and its descendants by Delta levels.
func (uc *IndentTask) Execute(_ context.Context, in IndentTaskInput) (*IndentTaskOutput, error) {
	out := &IndentTaskOutput{}
	err := uc.session.Update(func(list *domain.TodoList, _ *domain.Routines) error {
		task, err := shared.ResolveTask(list, in.Ref)
		if err != nil {
			return err
		}
		out.Task = task
		out.Level, err = list.AddIndent(task.ID, in.Delta)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
