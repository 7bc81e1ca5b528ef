package spawner

import (
	"mini-platformer/internal/clock"
	"mini-platformer/internal/config"
	"mini-platformer/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// Emitter creates an obstacle entity.
type Emitter interface {
	Spawn(pos, vel mgl32.Vec3) donburi.Entity
}

// Spawner periodically emits obstacles across the far end of the platform.
type Spawner struct {
	XRange   float32
	Y        float32
	Z        float32
	Velocity mgl32.Vec3
}

func New(t config.Tuning) Spawner {
	return Spawner{
		XRange:   t.SpawnXRange,
		Y:        t.ObstacleY,
		Z:        t.ObstacleZ,
		Velocity: t.ObstacleVelocity,
	}
}

// NewTimer returns the spawn timer for t, starting empty.
func NewTimer(t config.Tuning) Timer {
	return Timer{Period: t.SpawnPeriod}
}

// Tick advances timer by dt and emits at most one obstacle. The returned
// entity is only meaningful when ok is true.
func (s Spawner) Tick(timer *Timer, rng RandSource, emit Emitter, dt float64) (donburi.Entity, bool) {
	defer profiling.Track("spawner.Tick")()
	if !timer.Tick(clock.Duration(dt)) {
		return 0, false
	}
	return emit.Spawn(s.Position(rng), s.Velocity), true
}

// Position draws the next spawn point.
func (s Spawner) Position(rng RandSource) mgl32.Vec3 {
	x := rng.Uniform(-float64(s.XRange), float64(s.XRange))
	return mgl32.Vec3{float32(x), s.Y, s.Z}
}
