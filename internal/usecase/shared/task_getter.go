// Package shared contains helpers used by several use cases.
package shared

import (
	"strconv"
	"strings"

	"github.com/runoshun/routinify/internal/domain"
)

// minIDPrefix is the shortest ID prefix accepted as a task reference.
const minIDPrefix = 4

// ResolveTask finds the task referred to by ref.
// A ref is either a 1-based position in the task sequence or a prefix of a
// task ID of at least four characters. Positions win over ID prefixes.
// It returns domain.ErrTaskNotFound when nothing matches and
// domain.ErrAmbiguousTaskRef when a prefix matches more than one task.
func ResolveTask(list *domain.TodoList, ref string) (domain.Task, error) {
	ref = strings.TrimSpace(ref)
	tasks := list.Tasks()

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(tasks) {
		return tasks[n-1], nil
	}

	if len(ref) < minIDPrefix {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	var found []domain.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, ref) {
			found = append(found, t)
		}
	}
	switch len(found) {
	case 0:
		return domain.Task{}, domain.ErrTaskNotFound
	case 1:
		return found[0], nil
	default:
		return domain.Task{}, domain.ErrAmbiguousTaskRef
	}
}
