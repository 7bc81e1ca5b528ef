package world

import (
	"time"

	"mini-platformer/internal/camera"
	"mini-platformer/internal/component"
	"mini-platformer/internal/config"
	"mini-platformer/internal/physics"
	"mini-platformer/internal/player"
	"mini-platformer/internal/spawner"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	bodies = donburi.NewQuery(filter.Contains(
		component.Transform, component.Velocity, component.Body,
	))
	trackedBody = donburi.NewQuery(filter.Contains(
		component.PlayerTag, component.Transform,
	))
	cameras = donburi.NewQuery(filter.Contains(component.Camera))
	// free movers: anything with a velocity that the gravity step does not own
	movers = donburi.NewQuery(filter.And(
		filter.Contains(component.Transform, component.Velocity),
		filter.Not(filter.Contains(component.Body)),
	))
	obstacles = donburi.NewQuery(filter.Contains(
		component.ObstacleTag, component.Transform, component.Velocity,
	))
)

// World is the platformer simulation: one tracked body, a follow camera and
// any number of obstacles, advanced together by Step.
type World struct {
	ecs    donburi.World
	tuning config.Tuning
	ctx    Context

	controller player.Controller
	monitor    player.FallMonitor
	follower   camera.Follower
	spawner    spawner.Spawner

	// spawned this step; the velocity pass leaves it at its spawn point so it
	// first moves on the next Step, as deferred-spawn ECS hosts do
	// (TestStepSpawnsObstacles pins the position)
	fresh   donburi.Entity
	hasNew  bool
	elapsed time.Duration
	frames  uint64

	noCamera bool
}

type Option func(*World)

// WithRand injects the spawner's randomness.
func WithRand(r spawner.RandSource) Option {
	return func(w *World) { w.ctx.Rand = r }
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return WithRand(spawner.NewRand(seed))
}

// WithoutCamera skips creating the follow camera.
func WithoutCamera() Option {
	return func(w *World) { w.noCamera = true }
}

// New builds a world from t with the player resting at its spawn point and
// the camera at its starting pose looking at the origin.
func New(t config.Tuning, opts ...Option) *World {
	platform := physics.PlatformFromTuning(t)
	descriptors := &Descriptors{}
	w := &World{
		ecs:    donburi.NewWorld(),
		tuning: t,
		ctx: Context{
			Platform:    platform,
			SpawnTimer:  spawner.NewTimer(t),
			Descriptors: descriptors,
			Looks: registerLooks(descriptors, mgl32.Vec3{
				2 * platform.HalfWidth, platform.GroundHeight, 2 * platform.HalfLength,
			}),
		},
		controller: player.NewController(t),
		monitor:    player.NewFallMonitor(t),
		follower:   camera.NewFollower(t),
		spawner:    spawner.New(t),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.ctx.Rand == nil {
		w.ctx.Rand = spawner.NewRand(time.Now().UnixNano())
	}

	w.createPlayer(t.SpawnPosition)
	if !w.noCamera {
		w.createCamera(t.CameraStart)
	}
	return w
}

func (w *World) createPlayer(spawn mgl32.Vec3) donburi.Entity {
	e := w.ecs.Create(
		component.PlayerTag,
		component.Transform,
		component.Velocity,
		component.Body,
		component.Appearance,
	)
	entry := w.ecs.Entry(e)
	component.Transform.SetValue(entry, component.TransformData{Position: spawn})
	component.Body.SetValue(entry, component.NewBody(spawn))
	component.Appearance.SetValue(entry, component.AppearanceData{Handle: w.ctx.Looks.Player})
	return e
}

func (w *World) createCamera(pos mgl32.Vec3) donburi.Entity {
	e := w.ecs.Create(component.Camera)
	component.Camera.SetValue(w.ecs.Entry(e), camera.NewCamera(pos, mgl32.Vec3{}))
	return e
}

func (w *World) Tuning() config.Tuning {
	return w.tuning
}

func (w *World) Platform() physics.Platform {
	return w.ctx.Platform
}

// Descriptors is the shared look arena. Handles stay valid for the world's lifetime.
func (w *World) Descriptors() *Descriptors {
	return w.ctx.Descriptors
}

func (w *World) Looks() Looks {
	return w.ctx.Looks
}

// SpawnTimer reports the obstacle timer's current state.
func (w *World) SpawnTimer() spawner.Timer {
	return w.ctx.SpawnTimer
}

// Elapsed is the total simulated time.
func (w *World) Elapsed() time.Duration {
	return w.elapsed
}

// Frames is the number of Step calls so far.
func (w *World) Frames() uint64 {
	return w.frames
}
