package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/routinify/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockLaunchTUI(t *testing.T) *int {
	t.Helper()
	calls := 0
	orig := launchTUIFunc
	launchTUIFunc = func(_ *app.Container) error {
		calls++
		return nil
	}
	t.Cleanup(func() { launchTUIFunc = orig })
	return &calls
}

func TestNewRootCommand_NoArgsLaunchesTUI(t *testing.T) {
	calls := mockLaunchTUI(t)

	cmd := NewRootCommand(nil, "test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, *calls)
}

func TestNewRootCommand_HelpDoesNotLaunchTUI(t *testing.T) {
	calls := mockLaunchTUI(t)

	cmd := NewRootCommand(nil, "test")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	assert.Zero(t, *calls)
	out := buf.String()
	assert.Contains(t, out, "Task Management:")
	assert.Contains(t, out, "Routines:")
	assert.Contains(t, out, "Timer:")
}

func TestNewRootCommand_TUISubcommand(t *testing.T) {
	calls := mockLaunchTUI(t)

	cmd := NewRootCommand(nil, "test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"tui"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, *calls)
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	container, _ := newTestContainer()
	container.AppConfig.Warnings = []string{"unknown key: timer.snooze"}

	cmd := NewRootCommand(container, "test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"config", "template"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "Warning: unknown key: timer.snooze")
	assert.Contains(t, out.String(), "[timer]")
}

func TestNewRootCommand_Version(t *testing.T) {
	cmd := NewRootCommand(nil, "1.2.3")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "1.2.3")
}
