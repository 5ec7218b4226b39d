// Package timing holds the scheduling primitives used by the page controller:
// a Scheduler abstraction over timers and the debounce/throttle wrappers built
// on top of it.
package timing

import (
	"sync"
	"time"
)

// Timer is a pending callback that can be stopped before it fires.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Real schedules callbacks on wall-clock timers. Callbacks run on their own
// goroutine.
var Real Scheduler = realScheduler{}

// Debounce returns a function that delays calling fn until wait has passed
// since the last call. Only the trailing call runs, with its argument.
func Debounce[T any](s Scheduler, wait time.Duration, fn func(T)) func(T) {
	var (
		mu      sync.Mutex
		pending Timer
	)
	return func(arg T) {
		mu.Lock()
		defer mu.Unlock()
		if pending != nil {
			pending.Stop()
		}
		pending = s.AfterFunc(wait, func() { fn(arg) })
	}
}

// Throttle returns a function that calls fn at most once per limit. The first
// call of a window runs immediately; calls inside the window are dropped.
func Throttle[T any](s Scheduler, limit time.Duration, fn func(T)) func(T) {
	var (
		mu      sync.Mutex
		blocked bool
	)
	return func(arg T) {
		mu.Lock()
		if blocked {
			mu.Unlock()
			return
		}
		blocked = true
		mu.Unlock()

		s.AfterFunc(limit, func() {
			mu.Lock()
			blocked = false
			mu.Unlock()
		})
		fn(arg)
	}
}
