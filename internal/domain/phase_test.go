package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		want    string
		seconds int
	}{
		{"00:00", 0},
		{"00:59", 59},
		{"01:00", 60},
		{"25:00", 1500},
		{"04:05", 245},
		{"100:00", 6000},
		{"00:00", -5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestNumberPrefix(t *testing.T) {
	assert.Equal(t, "first", NumberPrefix(0))
	assert.Equal(t, "fourth", NumberPrefix(3))
	assert.Equal(t, "twentieth", NumberPrefix(19))
	assert.Equal(t, "21th", NumberPrefix(20))
}

func TestSessionSummary(t *testing.T) {
	tests := []struct {
		name    string
		phase   PhaseName
		want    string
		count   int
		running bool
	}{
		{"paused", PhaseWork, "timer paused", 2, false},
		{"first work", PhaseWork, "first work session", 0, true},
		{"third work", PhaseWork, "third work session", 2, true},
		{"first break", PhaseShortBreak, "first break", 1, true},
		{"break without count", PhaseShortBreak, "break", 0, true},
		{"long break", PhaseLongBreak, "enjoy your long break!", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SessionSummary(tt.phase, tt.count, tt.running))
		})
	}
}

func TestPhaseSet_ByName(t *testing.T) {
	s := DefaultPhaseSet()

	p, err := s.ByName(PhaseShortBreak)
	require.NoError(t, err)
	assert.Equal(t, 300, p.DurationSeconds())
	assert.True(t, p.IsBreak())

	_, err = s.ByName("Nap")
	assert.ErrorIs(t, err, ErrUnknownPhase)
}

func TestParsePhaseName(t *testing.T) {
	for in, want := range map[string]PhaseName{
		"work":        PhaseWork,
		"Work":        PhaseWork,
		"short":       PhaseShortBreak,
		"Short Break": PhaseShortBreak,
		"long-break":  PhaseLongBreak,
	} {
		got, err := ParsePhaseName(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePhaseName("nap")
	assert.ErrorIs(t, err, ErrUnknownPhase)
}
