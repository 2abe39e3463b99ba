// Package routines loads user-defined routine checklists from YAML.
package routines

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/routinify/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure Loader implements domain.RoutineStore.
var _ domain.RoutineStore = (*Loader)(nil)

// fileData is the YAML file structure:
//
//	routines:
//	  work:
//	    - Check emails
//	  gym:
//	    - Warm up
type fileData struct {
	Routines map[string][]string `yaml:"routines"`
}

// Loader reads routines.yaml.
type Loader struct {
	path string
}

// NewLoader creates a Loader for the given file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// LoadRoutines returns the routines defined in the file.
// A missing file yields an empty map. Blank steps are dropped.
func (l *Loader) LoadRoutines() (map[string][]string, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string][]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read routines: %w", err)
	}

	var f fileData
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse routines %s: %w", l.path, err)
	}

	out := make(map[string][]string, len(f.Routines))
	for name, steps := range f.Routines {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		kept := make([]string, 0, len(steps))
		for _, s := range steps {
			if s = strings.TrimSpace(s); s != "" {
				kept = append(kept, s)
			}
		}
		out[name] = kept
	}
	return out, nil
}

// SaveRoutines writes routines to the file in the same format LoadRoutines reads.
func (l *Loader) SaveRoutines(routines map[string][]string) error {
	data, err := yaml.Marshal(fileData{Routines: routines})
	if err != nil {
		return fmt.Errorf("marshal routines: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o700); err != nil {
		return fmt.Errorf("create routines directory: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o600); err != nil {
		return fmt.Errorf("write routines: %w", err)
	}
	return nil
}
