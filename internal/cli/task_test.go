package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/runoshun/routinify/internal/app"
	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(records ...domain.TaskRecord) (*app.Container, *testutil.MockEnvelopeStore) {
	store := &testutil.MockEnvelopeStore{}
	if len(records) > 0 {
		store.Data = testutil.Envelope("", records...)
	}
	container := app.NewWithDeps(
		app.Config{},
		store,
		&testutil.MockClock{NowTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		&testutil.RecordingLogger{},
	)
	container.RoutineStore = &testutil.MockRoutineStore{}
	container.ConfigManager = &testutil.MockConfigManager{Path: "/home/me/.config/routinify/config.toml"}
	return container, store
}

func sampleTasks() []domain.TaskRecord {
	return []domain.TaskRecord{
		{Text: "Project"},
		{Text: "Draft", IndentationLevel: 1},
		{Text: "Review", IndentationLevel: 1},
		{Text: "Groceries"},
		{Text: "Old chore", Checked: true},
	}
}

func storedTexts(t *testing.T, store *testutil.MockEnvelopeStore) []string {
	t.Helper()
	env := store.Envelope()
	require.NotNil(t, env)
	out := make([]string, 0, len(env.Tasks))
	for _, r := range env.Tasks {
		out = append(out, r.Text)
	}
	return out
}

// =============================================================================
// Add Command Tests
// =============================================================================

func TestNewAddCommand_AddTask(t *testing.T) {
	container, store := newTestContainer(sampleTasks()...)

	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"Buy", "milk"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `Added "Buy milk"`)
	assert.Equal(t, "Buy milk", storedTexts(t, store)[5])
}

func TestNewAddCommand_IndentAndTop(t *testing.T) {
	container, store := newTestContainer(sampleTasks()...)

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--indent", "5", "Nested"})
	require.NoError(t, cmd.Execute())

	env := store.Envelope()
	last := env.Tasks[len(env.Tasks)-1]
	assert.Equal(t, 1, last.IndentationLevel, "indent is clamped to one below the previous task")

	cmd = newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--top", "First"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "First", storedTexts(t, store)[0])
}

func TestNewAddCommand_PromptsWithoutArgs(t *testing.T) {
	original := promptTextFunc
	defer func() { promptTextFunc = original }()
	promptTextFunc = func(_, _ string) (string, error) {
		return "From prompt", nil
	}

	container, store := newTestContainer()
	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, []string{"From prompt"}, storedTexts(t, store))
}

func TestNewAddCommand_PromptCancelled(t *testing.T) {
	original := promptTextFunc
	defer func() { promptTextFunc = original }()
	promptTextFunc = func(_, _ string) (string, error) {
		return "", domain.ErrCancelled
	}

	container, _ := newTestContainer()
	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrCancelled)
}

// =============================================================================
// List Command Tests
// =============================================================================

func TestNewListCommand_ShowsTree(t *testing.T) {
	container, _ := newTestContainer(sampleTasks()...)
	session, err := container.Session()
	require.NoError(t, err)
	require.NoError(t, session.SetFocus("Ship it"))

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Focus: Ship it")
	assert.Contains(t, out, "  1 [ ] Project")
	assert.Contains(t, out, "  2   [ ] Draft")
	assert.Contains(t, out, "  4 [ ] Groceries")
	assert.NotContains(t, out, "Old chore")
}

func TestNewListCommand_All(t *testing.T) {
	container, _ := newTestContainer(sampleTasks()...)

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--all"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Completed (1)")
	assert.Contains(t, buf.String(), "  5 [x] Old chore")
}

func TestNewListCommand_Empty(t *testing.T) {
	container, _ := newTestContainer()

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "No open tasks")
}

// =============================================================================
// Rm / Check / Move / Indent Command Tests
// =============================================================================

func TestNewRmCommand_Leaf(t *testing.T) {
	container, store := newTestContainer(sampleTasks()...)

	cmd := newRmCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"4"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `Deleted "Groceries" (1 task(s))`)
	assert.Equal(t, []string{"Project", "Draft", "Review", "Old chore"}, storedTexts(t, store))
}

func TestNewRmCommand_SubtreeWithYes(t *testing.T) {
	container, store := newTestContainer(sampleTasks()...)

	cmd := newRmCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1", "--yes"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "(3 task(s))")
	assert.Equal(t, []string{"Groceries", "Old chore"}, storedTexts(t, store))
}

func TestNewRmCommand_UnknownTask(t *testing.T) {
	container, _ := newTestContainer(sampleTasks()...)

	cmd := newRmCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"42"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrTaskNotFound)
}

func TestNewCheckCommand_Toggle(t *testing.T) {
	container, store := newTestContainer(sampleTasks()...)

	cmd := newCheckCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"2"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `Checked "Draft"`)
	assert.True(t, store.Envelope().Tasks[1].Checked)

	cmd = newCheckCommand(container)
	buf.Reset()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"2"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `Unchecked "Draft"`)
}

func TestNewRenameCommand(t *testing.T) {
	container, store := newTestContainer(sampleTasks()...)

	cmd := newRenameCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"2", "First", "draft"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `Renamed "Draft" to "First draft"`)
	assert.Equal(t, "First draft", storedTexts(t, store)[1])
	assert.Equal(t, 1, store.Envelope().Tasks[1].IndentationLevel)
}

func TestNewMoveCommand_Down(t *testing.T) {
	container, store := newTestContainer(sampleTasks()...)

	cmd := newMoveCommand(container, moveDown)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1", "--steps", "5"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `Moved "Project" down by 2`)
	assert.Equal(t, []string{"Groceries", "Old chore", "Project", "Draft", "Review"}, storedTexts(t, store))
}

func TestNewMoveCommand_UpAtTop(t *testing.T) {
	container, _ := newTestContainer(sampleTasks()...)

	cmd := newMoveCommand(container, moveUp)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"2"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"Draft" has no sibling to move up past`)
}

func TestNewIndentCommand(t *testing.T) {
	container, store := newTestContainer(sampleTasks()...)

	cmd := newIndentCommand(container, 1)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"4"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"Groceries" is at level 1`)
	assert.Equal(t, 1, store.Envelope().Tasks[3].IndentationLevel)

	cmd = newIndentCommand(container, -1)
	buf.Reset()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"4"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"Groceries" is at level 0`)
	assert.Equal(t, "outdent <task>", cmd.Use)
}

// =============================================================================
// Focus / Summary Command Tests
// =============================================================================

func TestNewFocusCommand(t *testing.T) {
	container, store := newTestContainer(sampleTasks()...)

	cmd := newFocusCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "No focus set")

	cmd = newFocusCommand(container)
	buf.Reset()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"Finish", "the", "draft"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Focus: Finish the draft")
	assert.Equal(t, "Finish the draft", store.Envelope().Focus)

	cmd = newFocusCommand(container)
	buf.Reset()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--clear"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Focus cleared")
	assert.Empty(t, store.Envelope().Focus)
}

func TestNewSummaryCommand(t *testing.T) {
	container, _ := newTestContainer(sampleTasks()...)

	cmd := newSummaryCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Next: Project › Draft")
}

func TestNewSummaryCommand_NothingToDo(t *testing.T) {
	container, _ := newTestContainer(domain.TaskRecord{Text: "Done", Checked: true})

	cmd := newSummaryCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Nothing to do")
}
