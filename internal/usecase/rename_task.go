package usecase

import (
	"context"

	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/usecase/shared"
)

// RenameTaskInput contains the parameters for renaming a task.
type RenameTaskInput struct {
	Ref  string // Task position or ID prefix
	Text string // New text (required)
}

// RenameTaskOutput contains the result of renaming a task.
type RenameTaskOutput struct {
	Task     domain.Task // The task after renaming
	Previous string
}

// RenameTask is the use case for replacing a task's text.
type RenameTask struct {
	session *Session
}

// NewRenameTask creates a new RenameTask use case.
func NewRenameTask(session *Session) *RenameTask {
	return &RenameTask{session: session}
}

// Execute replaces the text of the referenced task, keeping its place,
// level and completion state.
func (uc *RenameTask) Execute(_ context.Context, in RenameTaskInput) (*RenameTaskOutput, error) {
	text := domain.NormalizeText(in.Text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	out := &RenameTaskOutput{}
	err := uc.session.Update(func(list *domain.TodoList, _ *domain.Routines) error {
		task, err := shared.ResolveTask(list, in.Ref)
		if err != nil {
			return err
		}
		if err := list.SetText(task.ID, text); err != nil {
			return err
		}
		out.Previous = task.Text
		task.Text = text
		out.Task = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
