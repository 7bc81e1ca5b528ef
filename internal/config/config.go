package config

import (
	"sync"
	"time"
)

// RuntimeSettings holds host-side frame settings
type RuntimeSettings struct {
	mu            sync.RWMutex
	fpsLimit      int
	maxFrameDelta time.Duration
	showHUD       bool
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit:      120,
	maxFrameDelta: 100 * time.Millisecond,
	showHUD:       true,
}

// GetFPSLimit returns the frame cap; 0 disables limiting
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRuntimeSettings.fpsLimit = limit
}

// GetMaxFrameDelta returns the largest frame delta a host hands to the simulation
func GetMaxFrameDelta() time.Duration {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.maxFrameDelta
}

// SetMaxFrameDelta sets the frame delta clamp
func SetMaxFrameDelta(d time.Duration) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	if d < time.Millisecond {
		d = time.Millisecond
	}
	if d > time.Second {
		d = time.Second
	}

	globalRuntimeSettings.maxFrameDelta = d
}

// ClampFrameDelta converts a wall-clock delta to seconds, bounded by the
// configured maximum. Negative deltas become zero.
func ClampFrameDelta(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	if limit := GetMaxFrameDelta(); d > limit {
		d = limit
	}
	return d.Seconds()
}

// GetShowHUD reports whether the HUD overlay is drawn
func GetShowHUD() bool {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.showHUD
}

// ToggleHUD flips HUD visibility
func ToggleHUD() {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.showHUD = !globalRuntimeSettings.showHUD
}
