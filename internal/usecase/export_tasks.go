package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/routinify/internal/domain"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct {
	Dir string // Destination directory; empty means the current directory
}

// ExportTasksOutput contains the result of exporting tasks.
type ExportTasksOutput struct {
	Path  string
	Count int
}

// ExportTasks is the use case for writing the session to a portable file.
type ExportTasks struct {
	session *Session
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(session *Session) *ExportTasks {
	return &ExportTasks{session: session}
}

// Execute writes routinify-tasks-v<version>.json into Dir.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	env := uc.session.ExportObject()
	data, err := env.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}

	dir := in.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, domain.ExportFileName(env.Version))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("write export: %w", err)
	}
	return &ExportTasksOutput{Path: path, Count: len(env.Tasks)}, nil
}
