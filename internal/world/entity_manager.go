package world

import (
	"mini-platformer/internal/component"
	"mini-platformer/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// Obstacle is a read-only view of one obstacle for renderers and cleanup
// policies.
type Obstacle struct {
	Entity     donburi.Entity
	Position   mgl32.Vec3
	Velocity   mgl32.Vec3
	Appearance component.DescriptorHandle
}

// Spawn creates an obstacle moving at a constant velocity. It implements
// spawner.Emitter.
func (w *World) Spawn(pos, vel mgl32.Vec3) donburi.Entity {
	e := w.ecs.Create(
		component.ObstacleTag,
		component.Transform,
		component.Velocity,
		component.Appearance,
	)
	entry := w.ecs.Entry(e)
	component.Transform.SetValue(entry, component.TransformData{Position: pos})
	component.Velocity.SetValue(entry, component.VelocityData{Linear: vel})
	component.Appearance.SetValue(entry, component.AppearanceData{Handle: w.ctx.Looks.Obstacle})

	ObstacleSpawnedEvent.Publish(w.ecs, ObstacleSpawned{Entity: e, Position: pos, Velocity: vel})
	return e
}

// Obstacles returns a copy of every live obstacle.
func (w *World) Obstacles() []Obstacle {
	result := make([]Obstacle, 0, obstacles.Count(w.ecs))
	obstacles.Each(w.ecs, func(entry *donburi.Entry) {
		o := Obstacle{
			Entity:   entry.Entity(),
			Position: component.Transform.Get(entry).Position,
			Velocity: component.Velocity.Get(entry).Linear,
		}
		if entry.HasComponent(component.Appearance) {
			o.Appearance = component.Appearance.Get(entry).Handle
		}
		result = append(result, o)
	})
	return result
}

// ObstacleCount is the number of live obstacles.
func (w *World) ObstacleCount() int {
	return obstacles.Count(w.ecs)
}

// RemoveObstacle destroys e if it is a live obstacle and reports whether it did.
func (w *World) RemoveObstacle(e donburi.Entity) bool {
	if !w.ecs.Valid(e) {
		return false
	}
	if !w.ecs.Entry(e).HasComponent(component.ObstacleTag) {
		return false
	}
	w.ecs.Remove(e)
	return true
}

// PruneObstacles removes every obstacle for which dead returns true and
// returns how many were removed. Without a call to it obstacles accumulate
// for the life of the world.
func (w *World) PruneObstacles(dead func(Obstacle) bool) int {
	defer profiling.Track("world.PruneObstacles")()
	var doomed []donburi.Entity
	for _, o := range w.Obstacles() {
		if dead(o) {
			doomed = append(doomed, o.Entity)
		}
	}
	for _, e := range doomed {
		w.ecs.Remove(e)
	}
	return len(doomed)
}

// BeyondZ is a cleanup policy that drops obstacles whose z has passed limit.
func BeyondZ(limit float32) func(Obstacle) bool {
	return func(o Obstacle) bool {
		return o.Position.Z() > limit
	}
}
