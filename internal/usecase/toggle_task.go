package usecase

import (
	"context"

	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/usecase/shared"
)

// ToggleTaskInput contains the parameters for toggling a task.
type ToggleTaskInput struct {
	Ref string // Task position or ID prefix
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Task domain.Task // The task after toggling
}

// ToggleTask is the use case for checking or unchecking a task.
type ToggleTask struct {
	session *Session
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(session *Session) *ToggleTask {
	return &ToggleTask{session: session}
}

// Execute flips the checked flag of the referenced task.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	var task domain.Task
	err := uc.session.Update(func(list *domain.TodoList, _ *domain.Routines) error {
		t, err := shared.ResolveTask(list, in.Ref)
		if err != nil {
			return err
		}
		t.Checked, err = list.ToggleTask(t.ID)
		task = t
		return err
	})
	if err != nil {
		return nil, err
	}
	return &ToggleTaskOutput{Task: task}, nil
}
