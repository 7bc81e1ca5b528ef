package hud

import (
	"fmt"
	"time"

	"mini-platformer/internal/component"
	"mini-platformer/internal/config"
	"mini-platformer/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Status is everything the overlay shows about one frame.
type Status struct {
	HasPlayer   bool
	State       component.FallState
	Position    mgl32.Vec3
	FallElapsed time.Duration

	Policy         config.FallPolicy
	FallThreshold  time.Duration
	FallYThreshold float32

	Obstacles int
	NextSpawn time.Duration

	FPS     float64
	Paused  bool
	Profile string
}

// StatusOf reads the overlay fields from w. Host-side fields (FPS, Paused,
// Profile) are left for the caller.
func StatusOf(w *world.World) Status {
	t := w.Tuning()
	timer := w.SpawnTimer()
	s := Status{
		Policy:         t.FallPolicy,
		FallThreshold:  t.FallThreshold,
		FallYThreshold: t.FallYThreshold,
		Obstacles:      w.ObstacleCount(),
		NextSpawn:      timer.Remaining(),
	}
	if b, ok := w.Player(); ok {
		s.HasPlayer = true
		s.State = b.State
		s.Position = b.Position
		s.FallElapsed = b.FallElapsed
	}
	return s
}

// Lines formats s for display, one entry per row.
func (s Status) Lines() []string {
	lines := make([]string, 0, 6)
	if s.HasPlayer {
		lines = append(lines,
			fmt.Sprintf("%s  %.2f %.2f %.2f", s.State, s.Position.X(), s.Position.Y(), s.Position.Z()),
			s.fallLine(),
		)
	} else {
		lines = append(lines, "no player")
	}
	lines = append(lines, fmt.Sprintf("obstacles %d  next %s", s.Obstacles, round(s.NextSpawn)))
	if s.FPS > 0 {
		lines = append(lines, fmt.Sprintf("fps %.0f", s.FPS))
	}
	if s.Paused {
		lines = append(lines, "paused")
	}
	if s.Profile != "" {
		lines = append(lines, s.Profile)
	}
	return lines
}

func (s Status) fallLine() string {
	if s.Policy == config.FallPolicyThreshold {
		return fmt.Sprintf("respawn below y %.1f", s.FallYThreshold)
	}
	return fmt.Sprintf("fall %s / %s", round(s.FallElapsed), round(s.FallThreshold))
}

func round(d time.Duration) time.Duration {
	return d.Round(100 * time.Millisecond)
}
