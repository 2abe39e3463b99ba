package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/runoshun/routinify/internal/domain"
)

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Confirm domain.Confirmer // Asked before replacing a non-empty list
	Path    string
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Focus string
	Count int
}

// ImportTasks is the use case for replacing the session from an exported file.
type ImportTasks struct {
	session *Session
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(session *Session) *ImportTasks {
	return &ImportTasks{session: session}
}

// Execute reads the file and replaces the session contents.
// Unlike startup loading, unreadable files are reported as errors.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	data, err := os.ReadFile(in.Path)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}

	env, err := domain.ParseEnvelope(string(data))
	if err != nil {
		return nil, err
	}
	if env == nil {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrMalformedData, in.Path)
	}
	if err := env.CheckVersion(); err != nil {
		return nil, err
	}

	if err := uc.session.SetJSON(string(data), in.Confirm); err != nil {
		return nil, err
	}
	return &ImportTasksOutput{Focus: env.Focus, Count: len(env.Tasks)}, nil
}
