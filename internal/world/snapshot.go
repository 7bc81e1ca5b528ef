package world

import (
	"time"

	"mini-platformer/internal/component"
	"mini-platformer/internal/player"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// Body is a read-only view of the tracked body after the last Step.
type Body struct {
	Entity        donburi.Entity
	Position      mgl32.Vec3
	Velocity      mgl32.Vec3
	Grounded      bool
	FallElapsed   time.Duration
	State         component.FallState
	SpawnPosition mgl32.Vec3
	Appearance    component.DescriptorHandle
}

// Player returns the tracked body, or false before one exists.
func (w *World) Player() (Body, bool) {
	entry, ok := trackedBody.First(w.ecs)
	if !ok || !entry.HasComponent(component.Body) {
		return Body{}, false
	}
	body := component.Body.Get(entry)
	b := Body{
		Entity:        entry.Entity(),
		Position:      component.Transform.Get(entry).Position,
		Velocity:      component.Velocity.Get(entry).Linear,
		Grounded:      body.Grounded,
		FallElapsed:   body.FallElapsed,
		State:         body.State,
		SpawnPosition: body.SpawnPosition(),
	}
	if entry.HasComponent(component.Appearance) {
		b.Appearance = component.Appearance.Get(entry).Handle
	}
	return b, true
}

// Camera returns the follow camera's pose, or false when the world has none.
func (w *World) Camera() (component.CameraData, bool) {
	entry, ok := cameras.First(w.ecs)
	if !ok {
		return component.CameraData{}, false
	}
	return *component.Camera.Get(entry), true
}

// RespawnPlayer sends the tracked body back to its spawn point immediately.
// The Respawned event is delivered by the next Step.
func (w *World) RespawnPlayer() {
	entry, ok := trackedBody.First(w.ecs)
	if !ok || !entry.HasComponent(component.Body) {
		return
	}
	body := component.Body.Get(entry)
	from := component.Transform.Get(entry).Position
	pos, vel := player.Respawn(body)
	component.Transform.Get(entry).Position = pos
	component.Velocity.Get(entry).Linear = vel
	RespawnedEvent.Publish(w.ecs, Respawned{Entity: entry.Entity(), From: from, Frame: w.frames})
}

// Restart respawns the tracked body, clears every obstacle and restarts the
// spawn countdown. Elapsed and Frames keep counting.
func (w *World) Restart() {
	w.RespawnPlayer()
	w.PruneObstacles(func(Obstacle) bool { return true })
	w.ctx.SpawnTimer.Reset()
	w.hasNew = false
}
