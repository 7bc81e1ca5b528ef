package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Jumped is published when a grounded body takes a jump impulse.
type Jumped struct {
	Entity   donburi.Entity
	Position mgl32.Vec3
}

// Respawned is published when the fall monitor resets a body. From is where
// the body was when it respawned.
type Respawned struct {
	Entity donburi.Entity
	From   mgl32.Vec3
	Frame  uint64
}

// ObstacleSpawned is published for every obstacle the spawner creates.
type ObstacleSpawned struct {
	Entity   donburi.Entity
	Position mgl32.Vec3
	Velocity mgl32.Vec3
}

var (
	JumpedEvent          = events.NewEventType[Jumped]()
	RespawnedEvent       = events.NewEventType[Respawned]()
	ObstacleSpawnedEvent = events.NewEventType[ObstacleSpawned]()
)

// OnJumped registers fn for jump events. Handlers run at the end of Step.
func (w *World) OnJumped(fn func(Jumped)) {
	JumpedEvent.Subscribe(w.ecs, func(_ donburi.World, ev Jumped) { fn(ev) })
}

func (w *World) OnRespawned(fn func(Respawned)) {
	RespawnedEvent.Subscribe(w.ecs, func(_ donburi.World, ev Respawned) { fn(ev) })
}

func (w *World) OnObstacleSpawned(fn func(ObstacleSpawned)) {
	ObstacleSpawnedEvent.Subscribe(w.ecs, func(_ donburi.World, ev ObstacleSpawned) { fn(ev) })
}

func (w *World) flushEvents() {
	JumpedEvent.ProcessEvents(w.ecs)
	RespawnedEvent.ProcessEvents(w.ecs)
	ObstacleSpawnedEvent.ProcessEvents(w.ecs)
}
