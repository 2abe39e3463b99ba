package config

import (
	"path/filepath"
	"testing"

	"github.com/runoshun/routinify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeStore_MissingFile(t *testing.T) {
	s := NewRuntimeStore(filepath.Join(t.TempDir(), "runtime.toml"))

	state, err := s.LoadRuntime()
	require.NoError(t, err)
	assert.Equal(t, &domain.RuntimeState{}, state)
}

func TestRuntimeStore_SaveAndLoad(t *testing.T) {
	s := NewRuntimeStore(filepath.Join(t.TempDir(), "data", "runtime.toml"))
	want := &domain.RuntimeState{LastExitTime: 1700000000000, LastLoadTime: 1700000360000}

	require.NoError(t, s.SaveRuntime(want))

	got, err := s.LoadRuntime()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
