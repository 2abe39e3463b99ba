package usecase

import (
	"context"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/routinify/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Path     string   // Config file path
	Content  string   // Effective configuration as TOML
	Warnings []string // Problems found while loading the file
	Exists   bool     // Whether the config file is present
}

// ShowConfig displays the effective configuration.
type ShowConfig struct {
	configManager domain.ConfigManager
	config        *domain.Config
	exists        func(path string) bool
}

// NewShowConfig creates a new ShowConfig use case.
// exists reports whether a file is present; nil treats every path as missing.
func NewShowConfig(configManager domain.ConfigManager, config *domain.Config, exists func(string) bool) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		config:        config,
		exists:        exists,
	}
}

// Execute renders the effective configuration.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg := uc.config
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	out := &ShowConfigOutput{
		Path:     uc.configManager.ConfigPath(),
		Content:  string(data),
		Warnings: cfg.Warnings,
	}
	if uc.exists != nil {
		out.Exists = uc.exists(out.Path)
	}
	return out, nil
}
