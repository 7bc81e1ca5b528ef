package world

import (
	"mini-platformer/internal/clock"
	"mini-platformer/internal/component"
	"mini-platformer/internal/input"
	"mini-platformer/internal/player"
	"mini-platformer/internal/profiling"

	"github.com/yohamta/donburi"
)

// Step advances the simulation by dt seconds. Stages run in a fixed order:
// movement, gravity and ground, fall monitor, camera, spawner, free movers.
// Events raised along the way are delivered before Step returns.
// Non-positive dt moves nothing but still honours a fresh jump press.
func (w *World) Step(dt float64, keys input.State) {
	defer profiling.Track("world.Step")()
	w.frames++
	w.elapsed += clock.Duration(dt)
	w.hasNew = false

	w.updateBodies(dt, keys)
	w.followCamera(dt)
	w.spawnObstacles(dt)
	w.integrateVelocities(dt)
	w.flushEvents()
}

func (w *World) updateBodies(dt float64, keys input.State) {
	defer profiling.Track("world.updateBodies")()
	// publishing can create the event store entity, so wait until iteration ends
	var jumps []Jumped
	var respawns []Respawned
	bodies.Each(w.ecs, func(entry *donburi.Entry) {
		tr := component.Transform.Get(entry)
		vel := component.Velocity.Get(entry)
		body := component.Body.Get(entry)

		pos, v, jumped := w.controller.ApplyInput(tr.Position, vel.Linear, body, keys, dt)
		if jumped {
			jumps = append(jumps, Jumped{Entity: entry.Entity(), Position: pos})
		}

		pos, v, contact := player.ApplyGravity(pos, v, body, w.ctx.Platform, w.tuning.GravityAccel, dt)

		from := pos
		pos, v, respawned := w.monitor.Update(pos, v, body, contact, dt)
		if respawned {
			respawns = append(respawns, Respawned{Entity: entry.Entity(), From: from, Frame: w.frames})
		}

		tr.Position = pos
		vel.Linear = v
	})

	for _, ev := range jumps {
		JumpedEvent.Publish(w.ecs, ev)
	}
	for _, ev := range respawns {
		RespawnedEvent.Publish(w.ecs, ev)
	}
}

func (w *World) followCamera(dt float64) {
	entry, ok := trackedBody.First(w.ecs)
	if !ok {
		return
	}
	target := component.Transform.Get(entry).Position
	cameras.Each(w.ecs, func(cam *donburi.Entry) {
		w.follower.Update(component.Camera.Get(cam), target, dt)
	})
}

func (w *World) spawnObstacles(dt float64) {
	e, ok := w.spawner.Tick(&w.ctx.SpawnTimer, w.ctx.Rand, w, dt)
	if ok {
		w.fresh, w.hasNew = e, true
	}
}

// integrateVelocities advances every free mover by its velocity. Obstacles
// created during this step start moving on the next one.
func (w *World) integrateVelocities(dt float64) {
	defer profiling.Track("world.integrateVelocities")()
	if dt <= 0 {
		return
	}
	step := float32(dt)
	movers.Each(w.ecs, func(entry *donburi.Entry) {
		if w.hasNew && entry.Entity() == w.fresh {
			return
		}
		tr := component.Transform.Get(entry)
		tr.Position = tr.Position.Add(component.Velocity.Get(entry).Linear.Mul(step))
	})
}
