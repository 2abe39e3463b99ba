package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepScheduler is a Scheduler whose ticks are fired by the test.
type stepScheduler struct {
	fn     func()
	starts int
	stops  int
}

func (s *stepScheduler) Every(_ time.Duration, fn func()) func() {
	s.starts++
	s.fn = fn
	return func() {
		s.stops++
		s.fn = nil
	}
}

// fire runs n ticks, following restarts across phase switches.
func (s *stepScheduler) fire(n int) {
	for i := 0; i < n && s.fn != nil; i++ {
		s.fn()
	}
}

type phaseRecorder struct {
	phases []PhaseName
}

func (r *phaseRecorder) Notify(next Phase) {
	r.phases = append(r.phases, next.Name)
}

func newTestTimer() (*Timer, *stepScheduler, *phaseRecorder, *[]TimerEvent) {
	sched := &stepScheduler{}
	notes := &phaseRecorder{}
	tm := NewTimer(DefaultPhaseSet(), sched, notes)
	var events []TimerEvent
	tm.Subscribe(func(e TimerEvent) { events = append(events, e) })
	return tm, sched, notes, &events
}

func kinds(events []TimerEvent) []TimerEventKind {
	out := make([]TimerEventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestTimer_InitialState(t *testing.T) {
	tm, _, _, _ := newTestTimer()

	assert.Equal(t, PhaseWork, tm.Phase().Name)
	assert.Equal(t, 1500, tm.Remaining())
	assert.False(t, tm.Running())
	assert.Zero(t, tm.WorkSessionCount())
	assert.Equal(t, "timer paused", tm.Summary())
}

func TestTimer_StartEmitsTickThenStarted(t *testing.T) {
	tm, sched, _, events := newTestTimer()

	tm.Start()
	tm.Start()

	assert.Equal(t, []TimerEventKind{TimerTick, TimerStarted}, kinds(*events))
	assert.Equal(t, 1, sched.starts, "second start is a no-op")
	assert.True(t, tm.Running())
	assert.Equal(t, "first work session", tm.Summary())
}

func TestTimer_StopKeepsRemaining(t *testing.T) {
	tm, sched, _, events := newTestTimer()
	tm.Start()
	sched.fire(10)
	*events = nil

	tm.Stop()

	assert.Equal(t, []TimerEventKind{TimerTick, TimerStopped}, kinds(*events))
	assert.Equal(t, 1490, tm.Remaining())
	assert.False(t, tm.Running())
	assert.Equal(t, 1, sched.stops)

	*events = nil
	tm.Stop()
	assert.Equal(t, []TimerEventKind{TimerStopped}, kinds(*events), "stopping a stopped timer only reports stop")
}

func TestTimer_StaleTickAfterStopIsIgnored(t *testing.T) {
	tm, sched, _, _ := newTestTimer()
	tm.Start()
	stale := sched.fn
	tm.Stop()

	stale()

	assert.Equal(t, 1500, tm.Remaining())
}

func TestTimer_Reset(t *testing.T) {
	tm, sched, _, events := newTestTimer()
	tm.Start()
	sched.fire(100)
	*events = nil

	tm.Reset()

	assert.Equal(t, 1500, tm.Remaining())
	assert.True(t, tm.Running())
	assert.Equal(t, []TimerEventKind{TimerTick}, kinds(*events))
}

func TestTimer_WorkCompletesIntoShortBreak(t *testing.T) {
	tm, sched, notes, events := newTestTimer()
	tm.Start()
	*events = nil

	sched.fire(1500)

	assert.Equal(t, PhaseShortBreak, tm.Phase().Name)
	assert.Equal(t, 1, tm.WorkSessionCount())
	assert.Equal(t, 300, tm.Remaining())
	assert.True(t, tm.Running(), "timer keeps running into the next phase")
	assert.Equal(t, []PhaseName{PhaseShortBreak}, notes.phases)
	assert.Equal(t, "first break", tm.Summary())

	var end *TimerEvent
	for i := range *events {
		if (*events)[i].Kind == TimerPhaseEnd {
			end = &(*events)[i]
		}
	}
	require.NotNil(t, end)
	assert.Equal(t, PhaseWork, end.Ended.Name)
	assert.Equal(t, PhaseShortBreak, end.Phase.Name)

	tail := kinds((*events)[len(*events)-6:])
	assert.Equal(t, []TimerEventKind{
		TimerPhaseEnd, TimerTick, TimerTick, TimerPhaseEntered, TimerTick, TimerStarted,
	}, tail)
}

func TestTimer_PhaseCycle(t *testing.T) {
	tm, sched, notes, _ := newTestTimer()
	tm.Start()

	var seen []PhaseName
	for range 8 {
		sched.fire(tm.Remaining())
		seen = append(seen, tm.Phase().Name)
	}

	assert.Equal(t, []PhaseName{
		PhaseShortBreak, PhaseWork,
		PhaseShortBreak, PhaseWork,
		PhaseShortBreak, PhaseWork,
		PhaseLongBreak, PhaseWork,
	}, seen)
	assert.Equal(t, seen, notes.phases)
	assert.Zero(t, tm.WorkSessionCount())
}

func TestTimer_SwitchPhase(t *testing.T) {
	t.Run("stopped timer stays stopped", func(t *testing.T) {
		tm, sched, _, events := newTestTimer()

		require.NoError(t, tm.SwitchPhaseByName(PhaseLongBreak))

		assert.Equal(t, PhaseLongBreak, tm.Phase().Name)
		assert.Equal(t, 900, tm.Remaining())
		assert.False(t, tm.Running())
		assert.Zero(t, sched.starts)
		assert.Equal(t, []TimerEventKind{TimerTick, TimerPhaseEntered}, kinds(*events))
	})

	t.Run("running timer restarts in new phase", func(t *testing.T) {
		tm, sched, notes, _ := newTestTimer()
		tm.Start()
		sched.fire(30)

		tm.SwitchPhase(tm.Phases().ShortBreak)

		assert.True(t, tm.Running())
		assert.Equal(t, 300, tm.Remaining())
		assert.Equal(t, 2, sched.starts)
		assert.Empty(t, notes.phases, "manual switch plays no sound")
		assert.Zero(t, tm.WorkSessionCount(), "manual switch does not count a session")
	})

	t.Run("unknown phase", func(t *testing.T) {
		tm, _, _, _ := newTestTimer()
		assert.ErrorIs(t, tm.SwitchPhaseByName("Nap"), ErrUnknownPhase)
	})
}

func TestTimer_CustomPhaseSet(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Timer.WorkMinutes = 1
	cfg.Timer.LongBreakEvery = 2
	sched := &stepScheduler{}
	tm := NewTimer(cfg.PhaseSet(), sched, nil)
	tm.Start()

	sched.fire(60)
	assert.Equal(t, PhaseShortBreak, tm.Phase().Name)
	sched.fire(300)
	sched.fire(60)
	assert.Equal(t, PhaseLongBreak, tm.Phase().Name)
}

func TestTimer_Toggle(t *testing.T) {
	tm, _, _, _ := newTestTimer()
	tm.Toggle()
	assert.True(t, tm.Running())
	tm.Toggle()
	assert.False(t, tm.Running())
}
