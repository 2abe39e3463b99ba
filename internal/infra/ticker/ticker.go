// Package ticker provides a wall-clock Scheduler.
package ticker

import (
	"sync"
	"time"

	"github.com/runoshun/routinify/internal/domain"
)

// Ensure Scheduler implements domain.Scheduler.
var _ domain.Scheduler = Scheduler{}

// Scheduler runs callbacks on a time.Ticker goroutine.
type Scheduler struct{}

// Every calls fn every period on a background goroutine until stop is called.
// stop returns immediately; a callback already in flight finishes on its own.
func (Scheduler) Every(period time.Duration, fn func()) func() {
	t := time.NewTicker(period)
	done := make(chan struct{})
	go func() {
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
