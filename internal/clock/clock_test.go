package clock

import (
	"testing"
	"time"

	"mini-platformer/internal/config"
)

func TestDuration(t *testing.T) {
	cases := []struct {
		dt   float64
		want time.Duration
	}{
		{1.0, time.Second},
		{0.5, 500 * time.Millisecond},
		{1.0 / 60.0, 16666667 * time.Nanosecond},
		{0, 0},
		{-0.2, 0},
	}
	for _, c := range cases {
		if got := Duration(c.dt); got != c.want {
			t.Errorf("Duration(%v) = %v, want %v", c.dt, got, c.want)
		}
	}
}

func TestFrameTickClamps(t *testing.T) {
	config.SetMaxFrameDelta(100 * time.Millisecond)
	base := time.Unix(0, 0)
	now := base
	f := newFrame(func() time.Time { return now })

	now = now.Add(20 * time.Millisecond)
	if got := f.Tick(); got != 0.02 {
		t.Fatalf("Tick = %v, want 0.02", got)
	}

	now = now.Add(3 * time.Second)
	if got := f.Tick(); got != 0.1 {
		t.Fatalf("spike not clamped: %v", got)
	}

	now = now.Add(time.Second)
	f.Reset()
	if got := f.Tick(); got != 0 {
		t.Fatalf("Tick after Reset = %v, want 0", got)
	}
}
