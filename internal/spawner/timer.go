package spawner

import "time"

// Timer is a repeating countdown that fires at most once per Tick.
type Timer struct {
	Period  time.Duration
	Elapsed time.Duration
}

// Tick advances the timer by d and reports whether it fired. When more than
// one period has accumulated the extra whole periods are dropped.
func (t *Timer) Tick(d time.Duration) bool {
	if d > 0 {
		t.Elapsed += d
	}
	if t.Period <= 0 || t.Elapsed < t.Period {
		return false
	}
	t.Elapsed %= t.Period
	return true
}

// Remaining is the time until the next fire.
func (t *Timer) Remaining() time.Duration {
	if t.Elapsed >= t.Period {
		return 0
	}
	return t.Period - t.Elapsed
}

// Reset restarts the countdown from a full period.
func (t *Timer) Reset() {
	t.Elapsed = 0
}
