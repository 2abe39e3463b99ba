package usecase

import (
	"context"

	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/usecase/shared"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	Confirm domain.Confirmer // Asked before removing a task with subtasks
	Ref     string           // Task position or ID prefix
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task    domain.Task // The deleted root task
	Removed int         // Number of tasks removed, including descendants
}

// DeleteTask is the use case for deleting a task and its subtree.
type DeleteTask struct {
	session *Session
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(session *Session) *DeleteTask {
	return &DeleteTask{session: session}
}

// Execute deletes the referenced task with all of its descendants.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	out := &DeleteTaskOutput{}
	err := uc.session.Update(func(list *domain.TodoList, _ *domain.Routines) error {
		task, err := shared.ResolveTask(list, in.Ref)
		if err != nil {
			return err
		}
		out.Task = task
		out.Removed, err = list.DeleteTask(task.ID, in.Confirm)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
