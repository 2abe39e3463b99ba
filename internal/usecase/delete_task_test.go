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

func treeEnvelope() string {
	return testutil.Envelope("",
		domain.TaskRecord{Text: "a"},
		domain.TaskRecord{Text: "a1", IndentationLevel: 1},
		domain.TaskRecord{Text: "a2", IndentationLevel: 1},
		domain.TaskRecord{Text: "b"},
		domain.TaskRecord{Text: "c"},
	)
}

func TestDeleteTask_Execute(t *testing.T) {
	t.Run("leaf is removed without confirmation", func(t *testing.T) {
		env := newTestEnv(t, treeEnvelope())
		uc := usecase.NewDeleteTask(env.session)

		out, err := uc.Execute(context.Background(), usecase.DeleteTaskInput{Ref: "4"})
		require.NoError(t, err)
		assert.Equal(t, "b", out.Task.Text)
		assert.Equal(t, 1, out.Removed)
		assert.Equal(t, []string{"a", "a1", "a2", "c"}, texts(env.session.Tasks()))
	})

	t.Run("subtree requires confirmation", func(t *testing.T) {
		env := newTestEnv(t, treeEnvelope())
		uc := usecase.NewDeleteTask(env.session)

		var asked string
		confirm := domain.ConfirmFunc(func(msg string) (bool, error) {
			asked = msg
			return true, nil
		})
		out, err := uc.Execute(context.Background(), usecase.DeleteTaskInput{Ref: "1", Confirm: confirm})
		require.NoError(t, err)
		assert.Equal(t, 3, out.Removed)
		assert.Contains(t, asked, "2 subtasks")
		assert.Equal(t, []string{"b", "c"}, texts(env.session.Tasks()))
	})

	t.Run("declined confirmation keeps the subtree", func(t *testing.T) {
		env := newTestEnv(t, treeEnvelope())
		uc := usecase.NewDeleteTask(env.session)

		_, err := uc.Execute(context.Background(), usecase.DeleteTaskInput{Ref: "1", Confirm: domain.NeverConfirm})
		assert.ErrorIs(t, err, domain.ErrCancelled)
		assert.Len(t, env.session.Tasks(), 5)
		assert.Zero(t, env.store.Writes)
	})

	t.Run("nil confirmer counts as declined", func(t *testing.T) {
		env := newTestEnv(t, treeEnvelope())
		_, err := usecase.NewDeleteTask(env.session).Execute(context.Background(), usecase.DeleteTaskInput{Ref: "1"})
		assert.ErrorIs(t, err, domain.ErrCancelled)
	})

	t.Run("unknown ref", func(t *testing.T) {
		env := newTestEnv(t, treeEnvelope())
		_, err := usecase.NewDeleteTask(env.session).Execute(context.Background(), usecase.DeleteTaskInput{Ref: "9"})
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})
}
