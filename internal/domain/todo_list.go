package domain

import (
	"fmt"
	"slices"
)

// TodoList is an ordered forest of tasks stored as a flat sequence.
// Every subtree occupies a contiguous run of the sequence, the first task is
// a root, and each task is at most one level deeper than its predecessor.
// TodoList is not safe for concurrent use.
type TodoList struct {
	tasks     []*Task
	listeners []func()
}

// NewTodoList creates an empty list.
func NewTodoList() *TodoList {
	return &TodoList{}
}

// Subscribe registers fn to be called after every mutation.
func (l *TodoList) Subscribe(fn func()) {
	l.listeners = append(l.listeners, fn)
}

func (l *TodoList) changed() {
	for _, fn := range l.listeners {
		fn()
	}
}

// Len returns the number of tasks in the list.
func (l *TodoList) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the task sequence in order.
func (l *TodoList) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	for i, t := range l.tasks {
		out[i] = *t
	}
	return out
}

// Get returns the task with the given ID.
func (l *TodoList) Get(id string) (Task, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return *l.tasks[i], true
}

// Index returns the position of the task in the sequence, or -1.
func (l *TodoList) Index(id string) int {
	return l.indexOf(id)
}

// Parent returns the parent of the task. Roots have no parent.
func (l *TodoList) Parent(id string) (Task, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	p := buildIndex(l.tasks).parent[i]
	if p < 0 {
		return Task{}, false
	}
	return *l.tasks[p], true
}

// AddTask appends a task at the end of the list.
// The level is clamped so the list stays a valid forest.
func (l *TodoList) AddTask(r TaskRecord) Task {
	t := newTask(r)
	limit := 0
	if n := len(l.tasks); n > 0 {
		limit = l.tasks[n-1].IndentationLevel + 1
	}
	t.IndentationLevel = min(t.IndentationLevel, limit)
	l.tasks = append(l.tasks, t)
	l.changed()
	return *t
}

// AddTaskAbove inserts a task at the front of the list as a root.
func (l *TodoList) AddTaskAbove(r TaskRecord) Task {
	r.IndentationLevel = 0
	added := l.PrependGroup(r)
	return added[0]
}

// PrependGroup inserts records at the front of the list in order as a single
// mutation. The first record is forced to be a root and later records are
// clamped to at most one level below their predecessor.
func (l *TodoList) PrependGroup(records ...TaskRecord) []Task {
	if len(records) == 0 {
		return nil
	}
	group := make([]*Task, len(records))
	for i, r := range records {
		group[i] = newTask(r)
	}
	l.tasks = slices.Concat(group, l.tasks)
	normalizeLevels(l.tasks)
	out := make([]Task, len(group))
	for i, t := range group {
		out[i] = *t
	}
	l.changed()
	return out
}

// DeleteTask removes the task and all of its descendants.
// When the task has descendants, confirm is asked first; a declined or nil
// confirmer yields ErrCancelled and leaves the list untouched.
// It returns the number of removed tasks.
func (l *TodoList) DeleteTask(id string, confirm Confirmer) (int, error) {
	i := l.indexOf(id)
	if i < 0 {
		return 0, ErrTaskNotFound
	}
	n := buildIndex(l.tasks).size[i]
	if n > 1 {
		msg := fmt.Sprintf("Delete %q and its %d subtasks?", l.tasks[i].Text, n-1)
		if err := ask(confirm, msg); err != nil {
			return 0, err
		}
	}
	l.tasks = slices.Delete(l.tasks, i, i+n)
	l.changed()
	return n, nil
}

// ToggleTask flips the checked flag of the task and returns the new value.
func (l *TodoList) ToggleTask(id string) (bool, error) {
	i := l.indexOf(id)
	if i < 0 {
		return false, ErrTaskNotFound
	}
	l.tasks[i].Checked = !l.tasks[i].Checked
	l.changed()
	return l.tasks[i].Checked, nil
}

// SetText replaces the text of the task.
func (l *TodoList) SetText(id, text string) error {
	i := l.indexOf(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	l.tasks[i].Text = text
	l.changed()
	return nil
}

// MoveTaskUp swaps the task's subtree with the previous sibling's subtree.
// It reports false when there is no previous sibling.
func (l *TodoList) MoveTaskUp(id string) (bool, error) {
	i := l.indexOf(id)
	if i < 0 {
		return false, ErrTaskNotFound
	}
	idx := buildIndex(l.tasks)
	j := idx.prevSibling(i)
	if j < 0 {
		return false, nil
	}
	l.swapBlocks(j, i, i+idx.size[i])
	l.changed()
	return true, nil
}

// MoveTaskDown swaps the task's subtree with the next sibling's subtree.
// It reports false when there is no next sibling.
func (l *TodoList) MoveTaskDown(id string) (bool, error) {
	i := l.indexOf(id)
	if i < 0 {
		return false, ErrTaskNotFound
	}
	idx := buildIndex(l.tasks)
	j := idx.nextSibling(i)
	if j < 0 {
		return false, nil
	}
	l.swapBlocks(i, j, j+idx.size[j])
	l.changed()
	return true, nil
}

// AddIndent shifts the task and its subtree by delta levels, one level at a
// time. Indenting stops when the task has no previous sibling to nest under,
// and outdenting stops at the root level. It returns the resulting level.
func (l *TodoList) AddIndent(id string, delta int) (int, error) {
	i := l.indexOf(id)
	if i < 0 {
		return 0, ErrTaskNotFound
	}
	moved := false
	for ; delta > 0; delta-- {
		idx := buildIndex(l.tasks)
		if idx.prevSibling(i) < 0 {
			break
		}
		l.shiftSubtree(i, idx.size[i], 1)
		moved = true
	}
	for ; delta < 0; delta++ {
		if l.tasks[i].IsRoot() {
			break
		}
		l.shiftSubtree(i, buildIndex(l.tasks).size[i], -1)
		moved = true
	}
	if moved {
		l.changed()
	}
	return l.tasks[i].IndentationLevel, nil
}

// Children returns the descendants of the task in order.
// A positive generationLimit keeps only descendants at most that many levels
// below the task; zero means unlimited. mustBeUnchecked drops checked tasks.
func (l *TodoList) Children(id string, generationLimit int, mustBeUnchecked bool) []Task {
	i := l.indexOf(id)
	if i < 0 {
		return nil
	}
	base := l.tasks[i].IndentationLevel
	size := buildIndex(l.tasks).size[i]
	var out []Task
	for _, t := range l.tasks[i+1 : i+size] {
		if generationLimit > 0 && t.IndentationLevel > base+generationLimit {
			continue
		}
		if mustBeUnchecked && t.Checked {
			continue
		}
		out = append(out, *t)
	}
	return out
}

// AllChildren returns every descendant of the task.
func (l *TodoList) AllChildren(id string) []Task {
	return l.Children(id, 0, false)
}

// FirstTaskSummary returns the path from the first unchecked root down
// through the first unchecked child at each level. Checked tasks and their
// subtrees are skipped; the walk ends when the current branch does.
func (l *TodoList) FirstTaskSummary() []Task {
	required := 0
	var path []Task
	for _, t := range l.tasks {
		if t.IndentationLevel < required {
			break
		}
		if t.IndentationLevel > required || t.Checked {
			continue
		}
		path = append(path, *t)
		required = t.IndentationLevel + 1
	}
	return path
}

// TopTask returns the deepest task of FirstTaskSummary.
func (l *TodoList) TopTask() (Task, bool) {
	path := l.FirstTaskSummary()
	if len(path) == 0 {
		return Task{}, false
	}
	return path[len(path)-1], true
}

// RemoveType removes every task tagged typ and returns the number removed.
// Orphaned descendants are re-leveled so the list stays a valid forest.
func (l *TodoList) RemoveType(typ string) int {
	before := len(l.tasks)
	l.tasks = slices.DeleteFunc(l.tasks, func(t *Task) bool {
		return t.Type == typ
	})
	removed := before - len(l.tasks)
	if removed > 0 {
		normalizeLevels(l.tasks)
		l.changed()
	}
	return removed
}

// SetTasks replaces the whole list with records, assigning fresh IDs.
// Replacing a non-empty list asks confirm first; a declined or nil confirmer
// yields ErrCancelled and leaves the list untouched.
func (l *TodoList) SetTasks(records []TaskRecord, confirm Confirmer) error {
	if len(l.tasks) > 0 {
		msg := fmt.Sprintf("Replace the current %d tasks?", len(l.tasks))
		if err := ask(confirm, msg); err != nil {
			return err
		}
	}
	tasks := make([]*Task, len(records))
	for i, r := range records {
		tasks[i] = newTask(r)
	}
	normalizeLevels(tasks)
	l.tasks = tasks
	l.changed()
	return nil
}

// Export returns the persisted form of every task in order.
func (l *TodoList) Export() []TaskRecord {
	out := make([]TaskRecord, len(l.tasks))
	for i, t := range l.tasks {
		out[i] = t.Record()
	}
	return out
}

// Split returns unchecked and checked tasks, each in sequence order.
func (l *TodoList) Split() (active, completed []Task) {
	for _, t := range l.tasks {
		if t.Checked {
			completed = append(completed, *t)
		} else {
			active = append(active, *t)
		}
	}
	return active, completed
}

func (l *TodoList) indexOf(id string) int {
	return slices.IndexFunc(l.tasks, func(t *Task) bool {
		return t.ID == id
	})
}

// swapBlocks exchanges the adjacent runs [a,b) and [b,c).
func (l *TodoList) swapBlocks(a, b, c int) {
	moved := slices.Concat(l.tasks[b:c], l.tasks[a:b])
	copy(l.tasks[a:c], moved)
}

func (l *TodoList) shiftSubtree(start, size, delta int) {
	for _, t := range l.tasks[start : start+size] {
		t.IndentationLevel += delta
	}
}

func ask(confirm Confirmer, msg string) error {
	if confirm == nil {
		return ErrCancelled
	}
	ok, err := confirm.Confirm(msg)
	if err != nil {
		return fmt.Errorf("confirm: %w", err)
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}

// normalizeLevels clamps levels so the first task is a root and each task is
// at most one level deeper than its predecessor.
func normalizeLevels(tasks []*Task) {
	limit := 0
	for _, t := range tasks {
		t.IndentationLevel = max(0, min(t.IndentationLevel, limit))
		limit = t.IndentationLevel + 1
	}
}

// treeIndex holds structure derived from a normalized sequence.
type treeIndex struct {
	parent []int // Index of the parent, -1 for roots
	size   []int // Length of the subtree run starting at i, including i
}

func buildIndex(tasks []*Task) treeIndex {
	idx := treeIndex{
		parent: make([]int, len(tasks)),
		size:   make([]int, len(tasks)),
	}
	var stack []int
	for i, t := range tasks {
		for len(stack) > 0 && tasks[stack[len(stack)-1]].IndentationLevel >= t.IndentationLevel {
			stack = stack[:len(stack)-1]
		}
		idx.parent[i] = -1
		if len(stack) > 0 {
			idx.parent[i] = stack[len(stack)-1]
		}
		stack = append(stack, i)
		idx.size[i] = 1
	}
	for i := len(tasks) - 1; i >= 0; i-- {
		if p := idx.parent[i]; p >= 0 {
			idx.size[p] += idx.size[i]
		}
	}
	return idx
}

func (idx treeIndex) prevSibling(i int) int {
	for k := i - 1; k >= 0; k = idx.parent[k] {
		if idx.parent[k] == idx.parent[i] {
			return k
		}
		if k == idx.parent[i] {
			return -1
		}
	}
	return -1
}

func (idx treeIndex) nextSibling(i int) int {
	j := i + idx.size[i]
	if j < len(idx.parent) && idx.parent[j] == idx.parent[i] {
		return j
	}
	return -1
}
