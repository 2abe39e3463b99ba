package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/routinify/internal/domain"
)

// DefineRoutineInput contains the parameters for defining a routine.
type DefineRoutineInput struct {
	Name  string
	Steps []string // Empty removes the user definition
}

// DefineRoutineOutput contains the result of defining a routine.
type DefineRoutineOutput struct {
	Steps   []string // Steps saved for the routine
	Removed bool     // The user definition was deleted
}

// DefineRoutine is the use case for saving a user-defined routine.
type DefineRoutine struct {
	store domain.RoutineStore
}

// NewDefineRoutine creates a new DefineRoutine use case.
func NewDefineRoutine(store domain.RoutineStore) *DefineRoutine {
	return &DefineRoutine{store: store}
}

// Execute adds, replaces or deletes a routine in the routine file.
// Built-in routines can be overridden but not deleted.
func (uc *DefineRoutine) Execute(_ context.Context, in DefineRoutineInput) (*DefineRoutineOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrUnknownRoutine
	}

	routines, err := uc.store.LoadRoutines()
	if err != nil {
		return nil, fmt.Errorf("load routines: %w", err)
	}
	if routines == nil {
		routines = map[string][]string{}
	}

	var steps []string
	for _, s := range in.Steps {
		if s = domain.NormalizeText(s); s != "" {
			steps = append(steps, s)
		}
	}

	out := &DefineRoutineOutput{Steps: steps}
	if len(steps) == 0 {
		if _, ok := routines[name]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRoutine, name)
		}
		delete(routines, name)
		out.Removed = true
	} else {
		routines[name] = steps
	}

	if err := uc.store.SaveRoutines(routines); err != nil {
		return nil, fmt.Errorf("save routines: %w", err)
	}
	return out, nil
}
