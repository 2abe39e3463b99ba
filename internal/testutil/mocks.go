// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/runoshun/routinify/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockEnvelopeStore is an in-memory domain.EnvelopeStore.
// Fields are ordered to minimize memory padding.
type MockEnvelopeStore struct {
	ReadErr  error
	WriteErr error
	Data     string
	Writes   int
}

// Read returns the stored text.
func (m *MockEnvelopeStore) Read() (string, error) {
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	return m.Data, nil
}

// Write stores data.
func (m *MockEnvelopeStore) Write(data []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Data = string(data)
	m.Writes++
	return nil
}

// Envelope parses the stored text. It returns nil when nothing is stored.
func (m *MockEnvelopeStore) Envelope() *domain.Envelope {
	env, err := domain.ParseEnvelope(m.Data)
	if err != nil {
		return nil
	}
	return env
}

// MockRuntimeStore is an in-memory domain.RuntimeStore.
type MockRuntimeStore struct {
	SaveErr error
	State   domain.RuntimeState
}

// LoadRuntime returns a copy of the stored state.
func (m *MockRuntimeStore) LoadRuntime() (*domain.RuntimeState, error) {
	s := m.State
	return &s, nil
}

// SaveRuntime stores a copy of state.
func (m *MockRuntimeStore) SaveRuntime(state *domain.RuntimeState) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.State = *state
	return nil
}

// MockPhaseHistory is an in-memory domain.PhaseHistory.
type MockPhaseHistory struct {
	RecordErr error
	Records   []domain.PhaseRecord
	mu        sync.Mutex
}

// Record appends rec.
func (m *MockPhaseHistory) Record(_ context.Context, rec domain.PhaseRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordErr != nil {
		return m.RecordErr
	}
	rec.ID = int64(len(m.Records) + 1)
	m.Records = append(m.Records, rec)
	return nil
}

// List returns records ended at or after since, newest first.
func (m *MockPhaseHistory) List(_ context.Context, since time.Time, limit int) ([]domain.PhaseRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.PhaseRecord
	for _, r := range slices.Backward(m.Records) {
		if r.EndedAt.Before(since) {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// MockRoutineStore is an in-memory domain.RoutineStore.
type MockRoutineStore struct {
	LoadErr  error
	Routines map[string][]string
}

// LoadRoutines returns the configured routines.
func (m *MockRoutineStore) LoadRoutines() (map[string][]string, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Routines == nil {
		return map[string][]string{}, nil
	}
	return m.Routines, nil
}

// SaveRoutines replaces the configured routines.
func (m *MockRoutineStore) SaveRoutines(routines map[string][]string) error {
	m.Routines = routines
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config, or defaults.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr    error
	Path       string
	InitCalled bool
}

// ConfigPath returns the configured path.
func (m *MockConfigManager) ConfigPath() string {
	return m.Path
}

// InitConfig records the call.
func (m *MockConfigManager) InitConfig() error {
	m.InitCalled = true
	return m.InitErr
}

// ManualScheduler is a domain.Scheduler driven by Fire.
type ManualScheduler struct {
	fn     func()
	Starts int
	Stops  int
}

// Every records fn as the active callback.
func (s *ManualScheduler) Every(_ time.Duration, fn func()) func() {
	s.Starts++
	s.fn = fn
	return func() {
		s.Stops++
		s.fn = nil
	}
}

// Active reports whether a callback is scheduled.
func (s *ManualScheduler) Active() bool {
	return s.fn != nil
}

// Fire runs up to n ticks, following restarts across phase switches.
func (s *ManualScheduler) Fire(n int) {
	for i := 0; i < n && s.fn != nil; i++ {
		s.fn()
	}
}

// RecordingNotifier records every cue.
type RecordingNotifier struct {
	Phases []domain.PhaseName
}

// Notify records next.
func (n *RecordingNotifier) Notify(next domain.Phase) {
	n.Phases = append(n.Phases, next.Name)
}

// LogEntry is one message captured by RecordingLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// RecordingLogger is a domain.Logger that keeps entries in memory.
type RecordingLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (l *RecordingLogger) add(level, category, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (l *RecordingLogger) Debug(category, msg string) { l.add("DEBUG", category, msg) }

// Info records an info entry.
func (l *RecordingLogger) Info(category, msg string) { l.add("INFO", category, msg) }

// Warn records a warning entry.
func (l *RecordingLogger) Warn(category, msg string) { l.add("WARN", category, msg) }

// Error records an error entry.
func (l *RecordingLogger) Error(category, msg string) { l.add("ERROR", category, msg) }

// Has reports whether an entry at level contains substr.
func (l *RecordingLogger) Has(level, substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.Entries {
		if e.Level == level && strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}

// Envelope builds envelope text for the given records at the current version.
func Envelope(focus string, records ...domain.TaskRecord) string {
	data, err := domain.NewEnvelope(focus, records, 0).Marshal()
	if err != nil {
		panic(fmt.Sprintf("marshal envelope: %v", err))
	}
	return string(data)
}
