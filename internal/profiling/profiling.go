package profiling

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timings for simulation stages and render passes. The previous
// frame is kept so overlays can show a complete breakdown mid-frame.

type sample struct {
	total time.Duration
	calls int
}

var (
	mu       sync.Mutex
	current  = make(map[string]sample)
	previous = make(map[string]sample)
)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("world.Step")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		add(name, time.Since(start))
	}
}

func add(name string, d time.Duration) {
	mu.Lock()
	s := current[name]
	s.total += d
	s.calls++
	current[name] = s
	mu.Unlock()
}

// ResetFrame closes the running frame. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	current, previous = previous, current
	clear(current)
	mu.Unlock()
}

// Snapshot returns the running frame's totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return totals(current)
}

// LastFrame returns the totals of the most recently closed frame.
func LastFrame() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return totals(previous)
}

func totals(m map[string]sample) map[string]time.Duration {
	out := make(map[string]time.Duration, len(m))
	for k, v := range m {
		out[k] = v.total
	}
	return out
}

// SumWithPrefix totals every running entry whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var total time.Duration
	for k, v := range current {
		if strings.HasPrefix(k, prefix) {
			total += v.total
		}
	}
	return total
}

// TopN formats the n slowest entries of the running frame. Entries tracked
// more than once show their call count.
// Example: "renderer.renderScene:2.1ms, player.ApplyInput:0.1ms x3"
func TopN(n int) string {
	mu.Lock()
	defer mu.Unlock()
	return topN(current, n)
}

// TopNLast is TopN over the most recently closed frame.
func TopNLast(n int) string {
	mu.Lock()
	defer mu.Unlock()
	return topN(previous, n)
}

func topN(m map[string]sample, n int) string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	slices.SortFunc(names, func(a, b string) int {
		if m[a].total != m[b].total {
			if m[a].total > m[b].total {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	})
	n = min(max(n, 0), len(names))

	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		s := m[name]
		part := name + ":" + formatMs(s.total)
		if s.calls > 1 {
			part += fmt.Sprintf(" x%d", s.calls)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	return strings.TrimSuffix(fmt.Sprintf("%.1f", ms), ".0") + "ms"
}
