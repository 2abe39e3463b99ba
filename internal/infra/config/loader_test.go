package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/routinify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoader_Load_MissingFileReturnsDefaults(t *testing.T) {
	loader := NewLoader(t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[timer]
work_minutes = 50
long_break_every = 3
bell = false

[routines]
startup = "study"
idle_threshold_minutes = 30

[log]
level = "debug"

[store]
dir = "/tmp/routinify-data"
`)

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Timer.WorkMinutes)
	assert.Equal(t, domain.DefaultShortBreakMinutes, cfg.Timer.ShortBreakMinutes, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Timer.LongBreakEvery)
	assert.False(t, cfg.Timer.Bell)
	assert.Equal(t, "study", cfg.Routines.Startup)
	assert.Equal(t, domain.RoutineBreak, cfg.Routines.Break)
	assert.Equal(t, 30, cfg.Routines.IdleThresholdMinutes)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/routinify-data", cfg.Store.Dir)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_Warnings(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
theme = "dark"

[timer]
work_minutes = "long"
snooze = 3

[alarms]
name = "x"
`)

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"invalid value for [timer].work_minutes: long",
		"unknown key in [timer]: snooze",
		"unknown section: alarms",
		"unknown section: theme",
	}, cfg.Warnings)
	assert.Equal(t, domain.DefaultWorkMinutes, cfg.Timer.WorkMinutes)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[timer\nwork_minutes = ")

	_, err := NewLoader(dir).Load()
	assert.Error(t, err)
}

func TestLoader_Load_EmptyDirReturnsDefaults(t *testing.T) {
	cfg, err := NewLoader("").Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestDefaultDirs_RespectXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	assert.Equal(t, filepath.Join("/xdg/config", "routinify"), DefaultConfigDir())
	assert.Equal(t, filepath.Join("/xdg/data", "routinify"), DefaultDataDir())
}
