package shared

import (
	"testing"

	"github.com/runoshun/routinify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTask(t *testing.T) {
	list := domain.NewTodoList()
	a := list.AddTask(domain.TaskRecord{Text: "A"})
	b := list.AddTask(domain.TaskRecord{Text: "B", IndentationLevel: 1})

	t.Run("by position", func(t *testing.T) {
		got, err := ResolveTask(list, "2")
		require.NoError(t, err)
		assert.Equal(t, b, got)
	})

	t.Run("by id prefix", func(t *testing.T) {
		got, err := ResolveTask(list, a.ID[:8])
		require.NoError(t, err)
		assert.Equal(t, a, got)
	})

	t.Run("full id", func(t *testing.T) {
		got, err := ResolveTask(list, " "+b.ID+" ")
		require.NoError(t, err)
		assert.Equal(t, b, got)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := ResolveTask(list, "3")
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
		_, err = ResolveTask(list, "0")
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("short prefix rejected", func(t *testing.T) {
		_, err := ResolveTask(list, a.ID[:3])
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("unknown prefix", func(t *testing.T) {
		_, err := ResolveTask(list, "zzzzzzzz")
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})
}
