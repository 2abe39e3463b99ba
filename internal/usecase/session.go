// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/routinify/internal/domain"
)

// SessionDeps holds the collaborators of a Session.
// Store, Clock and Logger are required; the rest are optional.
type SessionDeps struct {
	Store     domain.EnvelopeStore
	Clock     domain.Clock
	Logger    domain.Logger
	Runtime   domain.RuntimeStore
	History   domain.PhaseHistory
	Scheduler domain.Scheduler
	Notifier  domain.Notifier
	Config    *domain.Config
	Routines  map[string][]string // nil uses the built-in routines
}

// Session owns the task list, routines and timer of one run and keeps the
// store in sync with every change.
// Fields are ordered to minimize memory padding.
type Session struct {
	store    domain.EnvelopeStore
	clock    domain.Clock
	logger   domain.Logger
	runtime  domain.RuntimeStore
	history  domain.PhaseHistory
	saveErr  error
	list     *domain.TodoList
	routines *domain.Routines
	timer    *domain.Timer
	cfg      *domain.Config
	focus    string
	mu       sync.Mutex
	suspend  bool // Suppress saves while a bulk change is in progress
	locked   bool // Stored data could not be loaded; never overwrite it
}

// NewSession wires a Session from deps.
func NewSession(deps SessionDeps) (*Session, error) {
	switch {
	case deps.Store == nil:
		return nil, fmt.Errorf("%w: envelope store", domain.ErrMissingDependency)
	case deps.Clock == nil:
		return nil, fmt.Errorf("%w: clock", domain.ErrMissingDependency)
	case deps.Logger == nil:
		return nil, fmt.Errorf("%w: logger", domain.ErrMissingDependency)
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}

	s := &Session{
		store:   deps.Store,
		clock:   deps.Clock,
		logger:  deps.Logger,
		runtime: deps.Runtime,
		history: deps.History,
		cfg:     cfg,
		list:    domain.NewTodoList(),
	}
	s.routines = domain.NewRoutines(s.list, deps.Routines)
	s.timer = domain.NewTimer(cfg.PhaseSet(), deps.Scheduler, deps.Notifier)

	s.list.Subscribe(s.persist)
	s.timer.Subscribe(s.onTimerEvent)
	return s, nil
}

// Load reads the stored envelope into the empty session.
// Malformed data is logged and ignored. Data with an unsupported version is
// logged and left untouched: the session starts empty and refuses to save
// until new data is imported.
func (s *Session) Load() error {
	text, err := s.store.Read()
	if err != nil {
		return fmt.Errorf("read tasks: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.setJSON(text, nil, false)
	if errors.Is(err, domain.ErrUnsupportedVersion) {
		s.locked = true
		s.logger.Warn("store", "saving disabled until data is imported")
		return nil
	}
	return err
}

// Update runs fn with exclusive access to the list and routines.
// Changes are saved as they happen; the first save error is returned when fn
// itself succeeds.
func (s *Session) Update(fn func(list *domain.TodoList, routines *domain.Routines) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveErr = nil
	if err := fn(s.list, s.routines); err != nil {
		return err
	}
	return s.takeSaveErr()
}

// View runs fn with read access to the list.
func (s *Session) View(fn func(list *domain.TodoList)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.list)
}

// Tasks returns a snapshot of the task sequence.
func (s *Session) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Tasks()
}

// Timer returns the session timer.
func (s *Session) Timer() *domain.Timer {
	return s.timer
}

// Config returns the effective configuration.
func (s *Session) Config() *domain.Config {
	return s.cfg
}

// RoutineNames returns the known routine names.
func (s *Session) RoutineNames() []string {
	return s.routines.Names()
}

// RoutineSteps returns the child steps of the named routine.
func (s *Session) RoutineSteps(name string) []string {
	return s.routines.Steps(name)
}

// Focus returns the session focus line.
func (s *Session) Focus() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focus
}

// SetFocus replaces the focus line and saves.
func (s *Session) SetFocus(focus string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveErr = nil
	s.focus = focus
	s.persist()
	return s.takeSaveErr()
}

// Title returns the window title: remaining time and the current top task.
func (s *Session) Title() string {
	remaining := domain.FormatTime(s.timer.Remaining())
	s.mu.Lock()
	top, ok := s.list.TopTask()
	s.mu.Unlock()
	if !ok {
		return remaining
	}
	return remaining + " - " + top.Text
}

// ExportObject returns the envelope for the current state.
func (s *Session) ExportObject() *domain.Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exportObject()
}

// JSON returns the envelope for the current state as JSON text.
func (s *Session) JSON() (string, error) {
	data, err := s.ExportObject().Marshal()
	if err != nil {
		return "", fmt.Errorf("marshal tasks: %w", err)
	}
	return string(data), nil
}

// SetJSON replaces the session contents with envelope text.
// Blank or malformed text is logged and ignored. An unsupported version is
// logged and returned as ErrUnsupportedVersion without changing anything.
// Replacing a non-empty list asks confirm first.
func (s *Session) SetJSON(text string, confirm domain.Confirmer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveErr = nil
	if err := s.setJSON(text, confirm, true); err != nil {
		return err
	}
	return s.takeSaveErr()
}

// Save writes the current state to the store.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveErr = nil
	s.persist()
	return s.takeSaveErr()
}

// ApplyStartupRoutine inserts the startup routine when the list is empty,
// or refreshes it when the last exit was longer ago than the idle threshold.
// It records the load time and returns the inserted tasks.
func (s *Session) ApplyStartupRoutine() ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loadRuntime()
	now := s.clock.Now()
	name := s.cfg.Routines.Startup
	threshold := time.Duration(s.cfg.Routines.IdleThresholdMinutes) * time.Minute

	s.saveErr = nil
	var added []domain.Task
	switch {
	case name == "":
	case s.list.Len() == 0:
		added = s.routines.AddTemplate(name)
		s.logger.Info("routine", fmt.Sprintf("added %s routine to empty list", name))
	case state.LastExitTime > 0 && now.Sub(time.UnixMilli(state.LastExitTime)) > threshold:
		added = s.routines.AddUniqueTemplate(name)
		s.logger.Info("routine", fmt.Sprintf("refreshed %s routine after idle period", name))
	}

	state.LastLoadTime = now.UnixMilli()
	s.saveRuntime(state)
	return added, s.takeSaveErr()
}

// End stops the timer, saves the list and records the exit time.
func (s *Session) End() error {
	s.timer.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveErr = nil
	s.persist()
	state := s.loadRuntime()
	state.LastExitTime = s.clock.Now().UnixMilli()
	s.saveRuntime(state)
	err := s.takeSaveErr()
	if errors.Is(err, domain.ErrStoreLocked) {
		return nil
	}
	return err
}

func (s *Session) exportObject() *domain.Envelope {
	return domain.NewEnvelope(s.focus, s.list.Export(), s.clock.Now().UnixMilli())
}

// setJSON is SetJSON without locking. save controls whether the new contents
// are written back to the store.
func (s *Session) setJSON(text string, confirm domain.Confirmer, save bool) error {
	env, err := domain.ParseEnvelope(text)
	if err != nil {
		s.logger.Warn("store", fmt.Sprintf("ignoring unreadable data: %v", err))
		return nil
	}
	if env == nil {
		return nil
	}
	if err := env.CheckVersion(); err != nil {
		s.logger.Warn("store", err.Error())
		return err
	}

	s.suspend = true
	err = s.list.SetTasks(env.Tasks, confirm)
	s.suspend = false
	if err != nil {
		return err
	}
	s.focus = env.Focus
	s.locked = false
	s.logger.Info("store", fmt.Sprintf("loaded %d tasks", len(env.Tasks)))
	if save {
		s.persist()
	}
	return nil
}

// persist writes the envelope. Callers hold s.mu.
func (s *Session) persist() {
	if s.suspend {
		return
	}
	if s.locked {
		s.recordSaveErr(domain.ErrStoreLocked)
		return
	}
	data, err := s.exportObject().Marshal()
	if err == nil {
		err = s.store.Write(data)
	}
	if err != nil {
		s.logger.Error("store", fmt.Sprintf("save failed: %v", err))
		s.recordSaveErr(fmt.Errorf("save tasks: %w", err))
	}
}

func (s *Session) recordSaveErr(err error) {
	if s.saveErr == nil {
		s.saveErr = err
	}
}

func (s *Session) takeSaveErr() error {
	err := s.saveErr
	s.saveErr = nil
	return err
}

func (s *Session) loadRuntime() *domain.RuntimeState {
	if s.runtime == nil {
		return &domain.RuntimeState{}
	}
	state, err := s.runtime.LoadRuntime()
	if err != nil {
		s.logger.Warn("runtime", fmt.Sprintf("load runtime state: %v", err))
		return &domain.RuntimeState{}
	}
	return state
}

func (s *Session) saveRuntime(state *domain.RuntimeState) {
	if s.runtime == nil {
		return
	}
	if err := s.runtime.SaveRuntime(state); err != nil {
		s.logger.Warn("runtime", fmt.Sprintf("save runtime state: %v", err))
	}
}

// onTimerEvent maintains the break routine and phase history.
func (s *Session) onTimerEvent(e domain.TimerEvent) {
	if e.Kind != domain.TimerPhaseEnd {
		return
	}

	s.mu.Lock()
	if name := s.cfg.Routines.Break; name != "" {
		if e.Phase.Name == domain.PhaseWork {
			s.routines.RemoveTemplate(name)
		} else {
			s.routines.AddUniqueTemplate(name)
		}
	}
	rec := domain.PhaseRecord{
		Phase:            e.Ended.Name,
		Next:             e.Phase.Name,
		DurationSeconds:  e.Ended.DurationSeconds(),
		WorkSessionCount: e.WorkSessionCount,
		Focus:            s.focus,
		EndedAt:          s.clock.Now(),
	}
	if top, ok := s.list.TopTask(); ok {
		rec.TopTask = top.Text
	}
	s.saveErr = nil
	s.mu.Unlock()

	s.logger.Info("timer", fmt.Sprintf("%s ended, %s next", rec.Phase, rec.Next))
	if s.history == nil {
		return
	}
	if err := s.history.Record(context.Background(), rec); err != nil {
		s.logger.Error("history", fmt.Sprintf("record phase: %v", err))
	}
}
