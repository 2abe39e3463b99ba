package usecase

import (
	"context"
	"strings"

	"github.com/runoshun/routinify/internal/domain"
)

// RoutineAction selects what ApplyRoutine does.
type RoutineAction int

// Routine actions.
const (
	RoutineAdd       RoutineAction = iota // Prepend a new instance
	RoutineAddUnique                      // Replace any existing instance
	RoutineRemove                         // Remove every instance
)

// ApplyRoutineInput contains the parameters for applying a routine.
type ApplyRoutineInput struct {
	Name   string
	Action RoutineAction
}

// ApplyRoutineOutput contains the result of applying a routine.
type ApplyRoutineOutput struct {
	Added   []domain.Task
	Removed int
	Known   bool // Whether the routine has defined steps
}

// ApplyRoutine is the use case for inserting or removing a routine.
type ApplyRoutine struct {
	session *Session
}

// NewApplyRoutine creates a new ApplyRoutine use case.
func NewApplyRoutine(session *Session) *ApplyRoutine {
	return &ApplyRoutine{session: session}
}

// Execute applies the routine action. Unknown routine names insert only the
// root task.
func (uc *ApplyRoutine) Execute(_ context.Context, in ApplyRoutineInput) (*ApplyRoutineOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrUnknownRoutine
	}

	out := &ApplyRoutineOutput{}
	err := uc.session.Update(func(_ *domain.TodoList, routines *domain.Routines) error {
		out.Known = routines.Known(name)
		switch in.Action {
		case RoutineAdd:
			out.Added = routines.AddTemplate(name)
		case RoutineAddUnique:
			out.Removed = routines.RemoveTemplate(name)
			out.Added = routines.AddTemplate(name)
		case RoutineRemove:
			out.Removed = routines.RemoveTemplate(name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
