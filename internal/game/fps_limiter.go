package game

import (
	"time"

	"mini-platformer/internal/config"
)

// pausedFPS caps redraws while the simulation is paused
const pausedFPS = 30

// spinWindow is the tail of each wait spent polling instead of sleeping
const spinWindow = 200 * time.Microsecond

// FPSLimiter paces the host loop to config.GetFPSLimit frames per second
type FPSLimiter struct {
	next time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{now: time.Now, sleep: time.Sleep}
}

// target is the frame period for the current limit, or 0 when unlimited
func target(paused bool) time.Duration {
	limit := config.GetFPSLimit()
	if paused && (limit <= 0 || limit > pausedFPS) {
		limit = pausedFPS
	}
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}

// Wait blocks until the next frame is due and returns how late the caller
// already was. A frame more than one period late resynchronises the schedule
// instead of bursting to catch up.
func (f *FPSLimiter) Wait(paused bool) time.Duration {
	period := target(paused)
	if period == 0 {
		f.next = time.Time{}
		return 0
	}

	if f.next.IsZero() {
		f.next = f.now()
	}
	f.next = f.next.Add(period)

	remaining := f.next.Sub(f.now())
	if remaining < 0 {
		late := -remaining
		if late > period {
			f.next = f.now()
		}
		return late
	}

	if remaining > spinWindow {
		f.sleep(remaining - spinWindow)
	}
	for f.now().Before(f.next) {
	}
	return 0
}
