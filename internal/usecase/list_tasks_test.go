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

func TestListTasks_Execute(t *testing.T) {
	env := newTestEnv(t, testutil.Envelope("today",
		domain.TaskRecord{Text: "a"},
		domain.TaskRecord{Text: "a1", IndentationLevel: 1, Checked: true},
		domain.TaskRecord{Text: "b", Checked: true},
		domain.TaskRecord{Text: "c"},
	))
	uc := usecase.NewListTasks(env.session)

	t.Run("active only", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), usecase.ListTasksInput{})
		require.NoError(t, err)
		assert.Equal(t, "today", out.Focus)
		assert.Equal(t, 4, out.Total)
		require.Len(t, out.Active, 2)
		assert.Equal(t, "a", out.Active[0].Task.Text)
		assert.Equal(t, 1, out.Active[0].Position)
		assert.Equal(t, "c", out.Active[1].Task.Text)
		assert.Equal(t, 4, out.Active[1].Position)
		assert.Empty(t, out.Completed)
	})

	t.Run("with completed", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), usecase.ListTasksInput{IncludeCompleted: true})
		require.NoError(t, err)
		require.Len(t, out.Completed, 2)
		assert.Equal(t, 2, out.Completed[0].Position)
		assert.Equal(t, "b", out.Completed[1].Task.Text)
	})
}

func TestShowSummary_Execute(t *testing.T) {
	env := newTestEnv(t, testutil.Envelope("ship",
		domain.TaskRecord{Text: "done", Checked: true},
		domain.TaskRecord{Text: "project"},
		domain.TaskRecord{Text: "step 1", IndentationLevel: 1, Checked: true},
		domain.TaskRecord{Text: "step 2", IndentationLevel: 1},
		domain.TaskRecord{Text: "detail", IndentationLevel: 2},
	))

	out, err := usecase.NewShowSummary(env.session).Execute(context.Background(), usecase.ShowSummaryInput{})
	require.NoError(t, err)
	assert.Equal(t, "ship", out.Focus)
	assert.Equal(t, []string{"project", "step 2", "detail"}, texts(out.Path))
}

func TestSetFocus_Execute(t *testing.T) {
	env := newTestEnv(t, testutil.Envelope("old"))
	uc := usecase.NewSetFocus(env.session)

	out, err := uc.Execute(context.Background(), usecase.SetFocusInput{Focus: " new focus "})
	require.NoError(t, err)
	assert.Equal(t, "old", out.Previous)
	assert.Equal(t, "new focus", env.session.Focus())
	assert.Equal(t, "new focus", env.store.Envelope().Focus)
}
