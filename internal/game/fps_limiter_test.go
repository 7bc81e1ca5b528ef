package game

import (
	"testing"
	"time"

	"mini-platformer/internal/config"
)

// fakeClock advances only when slept on or polled
type fakeClock struct {
	t     time.Time
	slept time.Duration
}

func (c *fakeClock) now() time.Time {
	// each poll costs a little time so spin loops terminate
	c.t = c.t.Add(10 * time.Microsecond)
	return c.t
}

func (c *fakeClock) sleep(d time.Duration) {
	c.slept += d
	c.t = c.t.Add(d)
}

func newTestLimiter(c *fakeClock) *FPSLimiter {
	return &FPSLimiter{now: c.now, sleep: c.sleep}
}

func TestFPSLimiterPaces(t *testing.T) {
	defer config.SetFPSLimit(config.GetFPSLimit())
	config.SetFPSLimit(100)

	c := &fakeClock{t: time.Unix(0, 0)}
	f := newTestLimiter(c)
	start := c.t
	for i := 0; i < 5; i++ {
		if late := f.Wait(false); late != 0 {
			t.Fatalf("frame %d reported %v late", i, late)
		}
	}
	if got := c.t.Sub(start); got < 50*time.Millisecond || got > 51*time.Millisecond {
		t.Errorf("5 frames at 100fps took %v, want ~50ms", got)
	}
	if c.slept == 0 {
		t.Errorf("expected the limiter to sleep")
	}
}

func TestFPSLimiterTargets(t *testing.T) {
	defer config.SetFPSLimit(config.GetFPSLimit())

	tests := []struct {
		name   string
		limit  int
		paused bool
		want   time.Duration
	}{
		{"unlimited", 0, false, 0},
		{"unlimited paused", 0, true, time.Second / pausedFPS},
		{"capped", 120, false, time.Second / 120},
		{"paused caps", 120, true, time.Second / pausedFPS},
		{"paused below cap", 20, true, time.Second / 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.SetFPSLimit(tt.limit)
			if got := target(tt.paused); got != tt.want {
				t.Errorf("target = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFPSLimiterResyncsAfterHitch(t *testing.T) {
	defer config.SetFPSLimit(config.GetFPSLimit())
	config.SetFPSLimit(100)

	c := &fakeClock{t: time.Unix(0, 0)}
	f := newTestLimiter(c)
	f.Wait(false)

	c.t = c.t.Add(100 * time.Millisecond)
	if late := f.Wait(false); late < 80*time.Millisecond {
		t.Fatalf("late = %v, want the hitch reported", late)
	}
	// the schedule restarts from now rather than owing nine frames
	if late := f.Wait(false); late != 0 {
		t.Errorf("frame after resync reported %v late", late)
	}
}

func TestFPSLimiterUnlimited(t *testing.T) {
	defer config.SetFPSLimit(config.GetFPSLimit())
	config.SetFPSLimit(0)

	c := &fakeClock{t: time.Unix(0, 0)}
	f := newTestLimiter(c)
	if late := f.Wait(false); late != 0 || c.slept != 0 {
		t.Errorf("unlimited Wait slept %v and reported %v", c.slept, late)
	}
}
