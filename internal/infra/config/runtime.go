package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/routinify/internal/domain"
)

// Ensure RuntimeStore implements domain.RuntimeStore.
var _ domain.RuntimeStore = (*RuntimeStore)(nil)

// RuntimeStore keeps timestamps between runs in a small TOML file.
type RuntimeStore struct {
	path string
}

// NewRuntimeStore creates a RuntimeStore for the given file path.
func NewRuntimeStore(path string) *RuntimeStore {
	return &RuntimeStore{path: path}
}

// LoadRuntime returns the stored state, or a zero state when the file does not exist.
func (s *RuntimeStore) LoadRuntime() (*domain.RuntimeState, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &domain.RuntimeState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read runtime state: %w", err)
	}

	var state domain.RuntimeState
	if err := toml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse runtime state: %w", err)
	}
	return &state, nil
}

// SaveRuntime writes the state, creating the parent directory if needed.
func (s *RuntimeStore) SaveRuntime(state *domain.RuntimeState) error {
	data, err := toml.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal runtime state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create runtime directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write runtime state: %w", err)
	}
	return nil
}
