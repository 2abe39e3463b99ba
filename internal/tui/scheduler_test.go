package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickScheduler_FireRunsCurrentGeneration(t *testing.T) {
	s := &tickScheduler{}
	calls := 0
	stop := s.Every(time.Second, func() { calls++ })
	gen := s.generation()

	assert.NotNil(t, s.next())
	assert.Nil(t, s.next(), "only one tick is outstanding at a time")

	assert.NotNil(t, s.fire(gen))
	assert.Equal(t, 1, calls)

	stop()
	assert.Nil(t, s.fire(gen), "stopped generation is dropped")
	assert.Equal(t, 1, calls)
	assert.Nil(t, s.next())
}

func TestTickScheduler_StaleStopKeepsNewCallback(t *testing.T) {
	s := &tickScheduler{}
	stopOld := s.Every(time.Second, func() {})
	calls := 0
	s.Every(time.Second, func() { calls++ })
	gen := s.generation()

	stopOld()
	s.fire(gen)
	assert.Equal(t, 1, calls)
}

func TestTickScheduler_RestartFromCallback(t *testing.T) {
	s := &tickScheduler{}
	var stop func()
	restarts := 0
	var fn func()
	fn = func() {
		stop()
		restarts++
		stop = s.Every(time.Second, fn)
	}
	stop = s.Every(time.Second, fn)
	gen := s.generation()

	cmd := s.fire(gen)
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, restarts)
	assert.NotEqual(t, gen, s.generation())
	assert.Nil(t, s.fire(gen))
}
