package domain

import (
	"slices"
	"sync"
	"time"
)

// TimerEventKind classifies timer notifications.
type TimerEventKind int

// Timer event kinds.
const (
	TimerTick         TimerEventKind = iota // Remaining time changed or should be redrawn
	TimerStarted                            // Countdown started
	TimerStopped                            // Countdown stopped
	TimerPhaseEnd                           // Countdown reached zero; Phase is the next phase
	TimerPhaseEntered                       // A new phase became current
)

// String returns the event kind name.
func (k TimerEventKind) String() string {
	switch k {
	case TimerTick:
		return "tick"
	case TimerStarted:
		return "started"
	case TimerStopped:
		return "stopped"
	case TimerPhaseEnd:
		return "phase_end"
	case TimerPhaseEntered:
		return "phase_entered"
	}
	return "unknown"
}

// TimerEvent is a snapshot of the timer delivered to subscribers.
// Fields are ordered to minimize memory padding.
type TimerEvent struct {
	Phase            Phase // Current phase; for TimerPhaseEnd the phase about to start
	Ended            Phase // Phase that just ran out (TimerPhaseEnd only)
	Kind             TimerEventKind
	Remaining        int
	Duration         int
	WorkSessionCount int
	Running          bool
}

// Timer is a Pomodoro phase timer.
// Ticks are driven by a Scheduler at one-second intervals. Events are
// delivered to subscribers outside the internal lock, in mutation order.
type Timer struct {
	scheduler Scheduler
	notifier  Notifier
	cancel    func()
	listeners []func(TimerEvent)
	phases    PhaseSet
	current   Phase
	mu        sync.Mutex
	duration  int
	remaining int
	count     int
	gen       uint64
	running   bool
}

// NewTimer creates a stopped timer in the Work phase.
// A nil notifier disables phase-end sounds.
func NewTimer(phases PhaseSet, scheduler Scheduler, notifier Notifier) *Timer {
	if phases.LongBreakEvery <= 0 {
		phases.LongBreakEvery = DefaultLongBreakEvery
	}
	t := &Timer{
		phases:    phases,
		scheduler: scheduler,
		notifier:  notifier,
	}
	t.setPhase(phases.Work)
	return t
}

// Subscribe registers fn to receive every timer event.
func (t *Timer) Subscribe(fn func(TimerEvent)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

// Start begins counting down. Starting a running timer does nothing.
func (t *Timer) Start() {
	t.mu.Lock()
	ev := t.start(nil)
	t.mu.Unlock()
	t.emit(ev)
}

// Stop pauses the countdown and keeps the remaining time.
func (t *Timer) Stop() {
	t.mu.Lock()
	ev := append(t.stop(nil), t.event(TimerStopped))
	t.mu.Unlock()
	t.emit(ev)
}

// Toggle starts a stopped timer or stops a running one.
func (t *Timer) Toggle() {
	if t.Running() {
		t.Stop()
		return
	}
	t.Start()
}

// Reset restores the remaining time to the phase duration.
func (t *Timer) Reset() {
	t.mu.Lock()
	t.remaining = t.duration
	ev := []TimerEvent{t.event(TimerTick)}
	t.mu.Unlock()
	t.emit(ev)
}

// SwitchPhase makes p current with a full duration. A running timer keeps
// running in the new phase.
func (t *Timer) SwitchPhase(p Phase) {
	t.mu.Lock()
	ev := t.switchPhase(p, nil)
	t.mu.Unlock()
	t.emit(ev)
}

// SwitchPhaseByName switches to the named phase of the timer's phase set.
func (t *Timer) SwitchPhaseByName(name PhaseName) error {
	p, err := t.phases.ByName(name)
	if err != nil {
		return err
	}
	t.SwitchPhase(p)
	return nil
}

// Phases returns the timer's phase set.
func (t *Timer) Phases() PhaseSet {
	return t.phases
}

// Snapshot returns the current state as a tick event.
func (t *Timer) Snapshot() TimerEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.event(TimerTick)
}

// Running reports whether the timer is counting down.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Remaining returns the seconds left in the current phase.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// WorkSessionCount returns the completed work sessions since the last long break.
func (t *Timer) WorkSessionCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Summary describes the current phase for display.
func (t *Timer) Summary() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return SessionSummary(t.current.Name, t.count, t.running)
}

func (t *Timer) event(kind TimerEventKind) TimerEvent {
	return TimerEvent{
		Kind:             kind,
		Phase:            t.current,
		Remaining:        t.remaining,
		Duration:         t.duration,
		WorkSessionCount: t.count,
		Running:          t.running,
	}
}

func (t *Timer) setPhase(p Phase) {
	t.current = p
	t.duration = p.DurationSeconds()
	t.remaining = t.duration
}

func (t *Timer) start(ev []TimerEvent) []TimerEvent {
	if t.running {
		return ev
	}
	t.running = true
	t.gen++
	gen := t.gen
	ev = append(ev, t.event(TimerTick))
	if t.scheduler != nil {
		t.cancel = t.scheduler.Every(time.Second, func() { t.tick(gen) })
	}
	return append(ev, t.event(TimerStarted))
}

// stop halts the countdown. The Stopped event is added by the caller so
// internal phase switches stay silent about it.
func (t *Timer) stop(ev []TimerEvent) []TimerEvent {
	if !t.running {
		return ev
	}
	t.running = false
	t.gen++
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	return append(ev, t.event(TimerTick))
}

func (t *Timer) switchPhase(p Phase, ev []TimerEvent) []TimerEvent {
	wasRunning := t.running
	ev = t.stop(ev)
	t.setPhase(p)
	ev = append(ev, t.event(TimerTick), t.event(TimerPhaseEntered))
	if wasRunning {
		ev = t.start(ev)
	}
	return ev
}

func (t *Timer) tick(gen uint64) {
	t.mu.Lock()
	if !t.running || gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.remaining--
	var ev []TimerEvent
	if t.remaining <= 0 {
		ev = t.complete(ev)
	} else {
		ev = append(ev, t.event(TimerTick))
	}
	t.mu.Unlock()
	t.emit(ev)
}

func (t *Timer) complete(ev []TimerEvent) []TimerEvent {
	ended := t.current
	next := t.nextPhase()
	end := t.event(TimerPhaseEnd)
	end.Phase = next
	end.Ended = ended
	ev = append(ev, end)
	return t.switchPhase(next, ev)
}

// nextPhase advances the work-session counter and picks the following phase.
func (t *Timer) nextPhase() Phase {
	if t.current.Name != PhaseWork {
		return t.phases.Work
	}
	t.count++
	if t.count >= t.phases.LongBreakEvery {
		t.count = 0
		return t.phases.LongBreak
	}
	return t.phases.ShortBreak
}

func (t *Timer) emit(events []TimerEvent) {
	if len(events) == 0 {
		return
	}
	t.mu.Lock()
	listeners := slices.Clone(t.listeners)
	t.mu.Unlock()
	for _, e := range events {
		for _, fn := range listeners {
			fn(e)
		}
		if e.Kind == TimerPhaseEnd && t.notifier != nil {
			t.notifier.Notify(e.Phase)
		}
	}
}
