package clock

import (
	"math"
	"time"

	"mini-platformer/internal/config"
)

// Duration converts a frame delta in seconds to a time.Duration, rounded to
// the nearest nanosecond. Non-positive deltas map to zero.
func Duration(dt float64) time.Duration {
	if dt <= 0 || math.IsNaN(dt) {
		return 0
	}
	return time.Duration(math.Round(dt * float64(time.Second)))
}

// Frame measures wall-clock time between frames for a host loop.
type Frame struct {
	now  func() time.Time
	last time.Time
}

// NewFrame starts a frame clock at the current time.
func NewFrame() *Frame {
	return newFrame(time.Now)
}

func newFrame(now func() time.Time) *Frame {
	return &Frame{now: now, last: now()}
}

// Tick returns the clamped delta since the previous Tick in seconds.
func (f *Frame) Tick() float64 {
	now := f.now()
	d := now.Sub(f.last)
	f.last = now
	return config.ClampFrameDelta(d)
}

// Reset discards elapsed time, e.g. after a pause or a world rebuild.
func (f *Frame) Reset() {
	f.last = f.now()
}
