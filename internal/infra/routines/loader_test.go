package routines

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_MissingFile(t *testing.T) {
	got, err := NewLoader(filepath.Join(t.TempDir(), "routines.yaml")).LoadRoutines()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoader_LoadRoutines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routines.yaml")
	content := `
routines:
  work:
    - Check emails
    - "  "
    - Plan the day
  gym:
    - Warm up
    - Lift
  "  ":
    - ignored
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := NewLoader(path).LoadRoutines()
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"work": {"Check emails", "Plan the day"},
		"gym":  {"Warm up", "Lift"},
	}, got)
}

func TestLoader_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routines.yaml")
	require.NoError(t, os.WriteFile(path, []byte("routines: [unclosed"), 0o644))

	_, err := NewLoader(path).LoadRoutines()
	assert.Error(t, err)
}

func TestLoader_SaveRoundTrip(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "routines.yaml"))
	want := map[string][]string{"study": {"Read", "Summarize"}}

	require.NoError(t, l.SaveRoutines(want))

	got, err := l.LoadRoutines()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
