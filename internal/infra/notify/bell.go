// Package notify plays phase-change cues.
package notify

import (
	"io"
	"strings"
	"sync"

	"github.com/runoshun/routinify/internal/domain"
)

// Ensure Bell implements domain.Notifier.
var _ domain.Notifier = (*Bell)(nil)

// Bell rings the terminal bell: once when work starts, twice when a break starts.
type Bell struct {
	w  io.Writer
	mu sync.Mutex
}

// NewBell creates a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Notify rings the cue for next.
func (b *Bell) Notify(next domain.Phase) {
	rings := 1
	if next.IsBreak() {
		rings = 2
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.w, strings.Repeat("\a", rings))
}

// Silent is a Notifier that does nothing.
type Silent struct{}

// Notify does nothing.
func (Silent) Notify(domain.Phase) {}
