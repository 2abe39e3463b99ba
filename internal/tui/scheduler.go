package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/routinify/internal/domain"
)

// Ensure tickScheduler implements domain.Scheduler.
var _ domain.Scheduler = (*tickScheduler)(nil)

// tickScheduler runs timer callbacks on the bubbletea event loop.
// Each scheduled second becomes a tea.Tick command carrying the generation
// it was scheduled for; ticks from a stopped generation are dropped.
// Fields are ordered to minimize memory padding.
type tickScheduler struct {
	fn      func()
	period  time.Duration
	gen     uint64
	mu      sync.Mutex
	pending bool // A tick should be scheduled on the next call to next
}

// Every registers fn. The returned stop func cancels it.
func (s *tickScheduler) Every(period time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.fn = fn
	s.period = period
	s.pending = true
	gen := s.gen
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen {
			return
		}
		s.gen++
		s.fn = nil
		s.pending = false
	}
}

// next returns the command for the next tick, or nil when nothing is due.
func (s *tickScheduler) next() tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pending || s.fn == nil {
		return nil
	}
	s.pending = false
	gen := s.gen
	return tea.Tick(s.period, func(time.Time) tea.Msg {
		return MsgTimerTick{Gen: gen}
	})
}

// fire runs the callback for gen and returns the command for the following
// tick. Stale generations are ignored.
func (s *tickScheduler) fire(gen uint64) tea.Cmd {
	s.mu.Lock()
	if gen != s.gen || s.fn == nil {
		s.mu.Unlock()
		return nil
	}
	s.pending = true
	fn := s.fn
	s.mu.Unlock()

	fn()
	return s.next()
}

// generation returns the current scheduling generation.
func (s *tickScheduler) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}
