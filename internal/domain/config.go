package domain

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Default configuration values.
const (
	DefaultLogLevel             = "info"
	DefaultIdleThresholdMinutes = 60
)

// Config represents the application configuration.
type Config struct {
	Routines RoutinesConfig `toml:"routines"` // [routines] settings
	Store    StoreConfig    `toml:"store"`    // [store] settings
	Log      LogConfig      `toml:"log"`      // [log] settings
	Warnings []string       `toml:"-"`        // Unknown keys found while loading
	Timer    TimerConfig    `toml:"timer"`    // [timer] settings
}

// TimerConfig holds timer settings from [timer] section.
type TimerConfig struct {
	WorkMinutes       int  `toml:"work_minutes"`
	ShortBreakMinutes int  `toml:"short_break_minutes"`
	LongBreakMinutes  int  `toml:"long_break_minutes"`
	LongBreakEvery    int  `toml:"long_break_every"`
	Bell              bool `toml:"bell"` // Ring the terminal bell at phase end
}

// RoutinesConfig holds routine settings from [routines] section.
type RoutinesConfig struct {
	Startup              string `toml:"startup"` // Routine inserted on startup
	Break                string `toml:"break"`   // Routine inserted when a break starts
	IdleThresholdMinutes int    `toml:"idle_threshold_minutes"`
}

// StoreConfig holds storage settings from [store] section.
type StoreConfig struct {
	Dir string `toml:"dir"` // Data directory override
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			WorkMinutes:       DefaultWorkMinutes,
			ShortBreakMinutes: DefaultShortBreakMinutes,
			LongBreakMinutes:  DefaultLongBreakMinutes,
			LongBreakEvery:    DefaultLongBreakEvery,
			Bell:              true,
		},
		Routines: RoutinesConfig{
			Startup:              RoutineWork,
			Break:                RoutineBreak,
			IdleThresholdMinutes: DefaultIdleThresholdMinutes,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// PhaseSet builds the timer phases from the [timer] section.
// Non-positive values fall back to the defaults.
func (c *Config) PhaseSet() PhaseSet {
	s := DefaultPhaseSet()
	if c == nil {
		return s
	}
	if c.Timer.WorkMinutes > 0 {
		s.Work.DurationMinutes = c.Timer.WorkMinutes
	}
	if c.Timer.ShortBreakMinutes > 0 {
		s.ShortBreak.DurationMinutes = c.Timer.ShortBreakMinutes
	}
	if c.Timer.LongBreakMinutes > 0 {
		s.LongBreak.DurationMinutes = c.Timer.LongBreakMinutes
	}
	if c.Timer.LongBreakEvery > 0 {
		s.LongBreakEvery = c.Timer.LongBreakEvery
	}
	return s
}

// RenderConfigTemplate renders the commented config file for cfg.
func RenderConfigTemplate(cfg *Config) string {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, cfg); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return b.String()
}
