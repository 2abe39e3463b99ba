package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/testutil"
	"github.com/runoshun/routinify/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outline() string {
	return testutil.Envelope("",
		domain.TaskRecord{Text: "A"},
		domain.TaskRecord{Text: "A1", IndentationLevel: 1},
		domain.TaskRecord{Text: "A2", IndentationLevel: 1},
		domain.TaskRecord{Text: "B"},
		domain.TaskRecord{Text: "C"},
	)
}

func TestMoveTask_Execute(t *testing.T) {
	t.Run("moves the subtree past siblings", func(t *testing.T) {
		env := newTestEnv(t, outline())
		uc := usecase.NewMoveTask(env.session)

		out, err := uc.Execute(context.Background(), usecase.MoveTaskInput{Ref: "1", Direction: usecase.MoveDown, Steps: 5})
		require.NoError(t, err)
		assert.Equal(t, "A", out.Task.Text)
		assert.Equal(t, 2, out.Moved)
		assert.Equal(t, []string{"B", "C", "A", "A1", "A2"}, texts(env.session.Tasks()))
	})

	t.Run("stays among its siblings", func(t *testing.T) {
		env := newTestEnv(t, outline())
		uc := usecase.NewMoveTask(env.session)

		out, err := uc.Execute(context.Background(), usecase.MoveTaskInput{Ref: "3", Direction: usecase.MoveDown})
		require.NoError(t, err)
		assert.Zero(t, out.Moved)

		out, err = uc.Execute(context.Background(), usecase.MoveTaskInput{Ref: "3", Direction: usecase.MoveUp})
		require.NoError(t, err)
		assert.Equal(t, 1, out.Moved)
		assert.Equal(t, []string{"A", "A2", "A1", "B", "C"}, texts(env.session.Tasks()))
	})

	t.Run("accepts an ID prefix", func(t *testing.T) {
		env := newTestEnv(t, outline())
		id := env.session.Tasks()[4].ID

		out, err := usecase.NewMoveTask(env.session).Execute(context.Background(),
			usecase.MoveTaskInput{Ref: id[:8], Direction: usecase.MoveUp})
		require.NoError(t, err)
		assert.Equal(t, "C", out.Task.Text)
		assert.Equal(t, []string{"A", "A1", "A2", "C", "B"}, texts(env.session.Tasks()))
	})

	t.Run("unknown ref", func(t *testing.T) {
		env := newTestEnv(t, outline())
		_, err := usecase.NewMoveTask(env.session).Execute(context.Background(),
			usecase.MoveTaskInput{Ref: "9", Direction: usecase.MoveUp})
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})
}

func TestMoveDirection_String(t *testing.T) {
	assert.Equal(t, "up", usecase.MoveUp.String())
	assert.Equal(t, "down", usecase.MoveDown.String())
}

func TestIndentTask_Execute(t *testing.T) {
	env := newTestEnv(t, outline())
	uc := usecase.NewIndentTask(env.session)

	out, err := uc.Execute(context.Background(), usecase.IndentTaskInput{Ref: "4", Delta: 1})
	require.NoError(t, err)
	assert.Equal(t, "B", out.Task.Text)
	assert.Equal(t, 1, out.Level)
	assert.Equal(t, 1, env.store.Envelope().Tasks[3].IndentationLevel)

	out, err = uc.Execute(context.Background(), usecase.IndentTaskInput{Ref: "2", Delta: -2})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Level)

	out, err = uc.Execute(context.Background(), usecase.IndentTaskInput{Ref: "1", Delta: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Level)
}

func TestIndentTask_OutdentCarriesDescendants(t *testing.T) {
	env := newTestEnv(t, testutil.Envelope("",
		domain.TaskRecord{Text: "a"},
		domain.TaskRecord{Text: "a1", IndentationLevel: 1},
		domain.TaskRecord{Text: "a1x", IndentationLevel: 2},
	))

	out, err := usecase.NewIndentTask(env.session).Execute(context.Background(), usecase.IndentTaskInput{Ref: "2", Delta: -1})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Level)
	tasks := env.session.Tasks()
	assert.Equal(t, 0, tasks[1].IndentationLevel)
	assert.Equal(t, 1, tasks[2].IndentationLevel)
}

func TestToggleTask_Execute(t *testing.T) {
	env := newTestEnv(t, outline())
	uc := usecase.NewToggleTask(env.session)

	out, err := uc.Execute(context.Background(), usecase.ToggleTaskInput{Ref: "2"})
	require.NoError(t, err)
	assert.Equal(t, "A1", out.Task.Text)
	assert.True(t, out.Task.Checked)
	assert.True(t, env.store.Envelope().Tasks[1].Checked)

	out, err = uc.Execute(context.Background(), usecase.ToggleTaskInput{Ref: out.Task.ID[:8]})
	require.NoError(t, err)
	assert.False(t, out.Task.Checked)

	_, err = uc.Execute(context.Background(), usecase.ToggleTaskInput{Ref: "ab"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestSetFocusAndShowSummary(t *testing.T) {
	env := newTestEnv(t, outline())

	prev, err := usecase.NewSetFocus(env.session).Execute(context.Background(), usecase.SetFocusInput{Focus: "  ship the draft "})
	require.NoError(t, err)
	assert.Empty(t, prev.Previous)
	assert.Equal(t, "ship the draft", env.store.Envelope().Focus)

	_, err = usecase.NewToggleTask(env.session).Execute(context.Background(), usecase.ToggleTaskInput{Ref: "2"})
	require.NoError(t, err)

	out, err := usecase.NewShowSummary(env.session).Execute(context.Background(), usecase.ShowSummaryInput{})
	require.NoError(t, err)
	assert.Equal(t, "ship the draft", out.Focus)
	assert.Equal(t, []string{"A", "A2"}, texts(out.Path))

	prev, err = usecase.NewSetFocus(env.session).Execute(context.Background(), usecase.SetFocusInput{})
	require.NoError(t, err)
	assert.Equal(t, "ship the draft", prev.Previous)
	assert.Empty(t, env.session.Focus())
}
