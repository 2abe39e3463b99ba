package usecase

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/runoshun/routinify/internal/domain"
)

// RunTimerInput contains the parameters for running the timer.
type RunTimerInput struct {
	OnEvent func(domain.TimerEvent) // Receives every timer event; may be nil
	Phase   string                  // Starting phase name or alias; empty means Work
}

// RunTimerOutput contains the result of a timer run.
type RunTimerOutput struct {
	Last           domain.TimerEvent // Timer state when the run ended
	PhasesFinished int               // Phases that ran to completion
}

// RunTimer is the use case for running the Pomodoro timer until cancelled.
type RunTimer struct {
	session *Session
}

// NewRunTimer creates a new RunTimer use case.
func NewRunTimer(session *Session) *RunTimer {
	return &RunTimer{session: session}
}

// Execute starts the timer and blocks until ctx is done, then stops it.
func (uc *RunTimer) Execute(ctx context.Context, in RunTimerInput) (*RunTimerOutput, error) {
	timer := uc.session.Timer()
	out := &RunTimerOutput{}

	if strings.TrimSpace(in.Phase) != "" {
		name, err := domain.ParsePhaseName(in.Phase)
		if err != nil {
			return nil, err
		}
		if err := timer.SwitchPhaseByName(name); err != nil {
			return nil, err
		}
	}

	var finished atomic.Int32
	timer.Subscribe(func(e domain.TimerEvent) {
		if e.Kind == domain.TimerPhaseEnd {
			finished.Add(1)
		}
		if in.OnEvent != nil {
			in.OnEvent(e)
		}
	})

	timer.Start()
	<-ctx.Done()
	timer.Stop()

	out.Last = timer.Snapshot()
	out.PhasesFinished = int(finished.Load())
	return out, nil
}
