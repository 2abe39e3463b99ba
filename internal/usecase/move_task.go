package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/usecase/shared"
)

// MoveDirection selects where a task moves among its siblings.
type MoveDirection int

// Move directions.
const (
	MoveUp MoveDirection = iota
	MoveDown
)

// String returns the direction name.
func (d MoveDirection) String() string {
	if d == MoveUp {
		return "up"
	}
	return "down"
}

// MoveTaskInput contains the parameters for moving a task.
// Fields are ordered to minimize memory padding.
type MoveTaskInput struct {
	Ref       string        // Task position or ID prefix
	Direction MoveDirection // Up or down
	Steps     int           // Number of sibling swaps, at least one
}

// MoveTaskOutput contains the result of moving a task.
type MoveTaskOutput struct {
	Task  domain.Task
	Moved int // Number of swaps performed
}

// MoveTask is the use case for reordering a task among its siblings.
type MoveTask struct {
	session *Session
}

// NewMoveTask creates a new MoveTask use case.
func NewMoveTask(session *Session) *MoveTask {
	return &MoveTask{session: session}
}

// Execute swaps the task's subtree with its neighbouring sibling up to Steps
// times, stopping early when there is no sibling in that direction.
func (uc *MoveTask) Execute(_ context.Context, in MoveTaskInput) (*MoveTaskOutput, error) {
	steps := max(in.Steps, 1)
	out := &MoveTaskOutput{}
	err := uc.session.Update(func(list *domain.TodoList, _ *domain.Routines) error {
		task, err := shared.ResolveTask(list, in.Ref)
		if err != nil {
			return err
		}
		out.Task = task
		for range steps {
			var moved bool
			switch in.Direction {
			case MoveUp:
				moved, err = list.MoveTaskUp(task.ID)
			case MoveDown:
				moved, err = list.MoveTaskDown(task.ID)
			default:
				return fmt.Errorf("unknown move direction: %d", in.Direction)
			}
			if err != nil {
				return err
			}
			if !moved {
				break
			}
			out.Moved++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
