// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/routinify/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	confDir string // Path to the config directory (e.g., ~/.config/routinify)
}

// NewLoader creates a new Loader reading from confDir.
func NewLoader(confDir string) *Loader {
	return &Loader{confDir: confDir}
}

// DefaultConfigDir returns the default config directory.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DataDir(dataHome)
}

// Load returns the configuration merged over defaults.
// A missing file yields the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	if l.confDir == "" {
		return base, nil
	}

	path := domain.GlobalConfigPath(l.confDir)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyRaw(base, raw)
	return base, nil
}

// applyRaw overlays raw values onto cfg and collects warnings for unknown
// keys and values of the wrong type.
func applyRaw(cfg *domain.Config, raw map[string]any) {
	var warnings []string
	warnf := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnf("unknown section: %s", section)
			continue
		}
		switch section {
		case "timer":
			for k, v := range m {
				switch k {
				case "work_minutes":
					setInt(&cfg.Timer.WorkMinutes, section, k, v, warnf)
				case "short_break_minutes":
					setInt(&cfg.Timer.ShortBreakMinutes, section, k, v, warnf)
				case "long_break_minutes":
					setInt(&cfg.Timer.LongBreakMinutes, section, k, v, warnf)
				case "long_break_every":
					setInt(&cfg.Timer.LongBreakEvery, section, k, v, warnf)
				case "bell":
					if b, ok := v.(bool); ok {
						cfg.Timer.Bell = b
					} else {
						warnf("invalid value for [%s].%s: %v", section, k, v)
					}
				default:
					warnf("unknown key in [%s]: %s", section, k)
				}
			}
		case "routines":
			for k, v := range m {
				switch k {
				case "startup":
					setString(&cfg.Routines.Startup, section, k, v, warnf)
				case "break":
					setString(&cfg.Routines.Break, section, k, v, warnf)
				case "idle_threshold_minutes":
					setInt(&cfg.Routines.IdleThresholdMinutes, section, k, v, warnf)
				default:
					warnf("unknown key in [%s]: %s", section, k)
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					setString(&cfg.Log.Level, section, k, v, warnf)
				default:
					warnf("unknown key in [%s]: %s", section, k)
				}
			}
		case "store":
			for k, v := range m {
				switch k {
				case "dir":
					setString(&cfg.Store.Dir, section, k, v, warnf)
				default:
					warnf("unknown key in [%s]: %s", section, k)
				}
			}
		default:
			warnf("unknown section: %s", section)
		}
	}

	sort.Strings(warnings)
	cfg.Warnings = warnings
}

func setInt(dst *int, section, key string, v any, warnf func(string, ...any)) {
	if n, ok := v.(int64); ok {
		*dst = int(n)
		return
	}
	warnf("invalid value for [%s].%s: %v", section, key, v)
}

func setString(dst *string, section, key string, v any, warnf func(string, ...any)) {
	if s, ok := v.(string); ok {
		*dst = s
		return
	}
	warnf("invalid value for [%s].%s: %v", section, key, v)
}
