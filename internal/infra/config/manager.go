package config

import (
	"os"
	"path/filepath"

	"github.com/runoshun/routinify/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages the config file.
type Manager struct {
	confDir string // Path to the config directory (e.g., ~/.config/routinify)
}

// NewManager creates a new Manager.
func NewManager(confDir string) *Manager {
	return &Manager{confDir: confDir}
}

// ConfigPath returns the path of the config file.
func (m *Manager) ConfigPath() string {
	return domain.GlobalConfigPath(m.confDir)
}

// InitConfig creates the config file with the default template.
func (m *Manager) InitConfig() error {
	path := m.ConfigPath()

	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	content := domain.RenderConfigTemplate(domain.NewDefaultConfig())
	return os.WriteFile(path, []byte(content), 0o600)
}
