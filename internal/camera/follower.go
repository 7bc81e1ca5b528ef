package camera

import (
	"mini-platformer/internal/component"
	"mini-platformer/internal/config"
	"mini-platformer/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// degenerateDistance is how close the camera may get to its target before
// the look direction is treated as undefined.
const degenerateDistance = 1e-6

var worldUp = mgl32.Vec3{0, 1, 0}

// Follower eases a camera towards a point offset from a tracked body and
// keeps it looking at that body.
type Follower struct {
	Offset        mgl32.Vec3
	SmoothingRate float32
}

func NewFollower(t config.Tuning) Follower {
	return Follower{Offset: t.CameraOffset, SmoothingRate: t.CameraSmoothingRate}
}

// Blend is the interpolation factor for one step: min(1, rate*dt), or 0 for
// a non-positive dt.
func (f Follower) Blend(dt float64) float32 {
	if dt <= 0 {
		return 0
	}
	t := f.SmoothingRate * float32(dt)
	if t > 1 {
		return 1
	}
	if t < 0 {
		return 0
	}
	return t
}

// Update moves cam a fraction of the way to target+Offset and re-aims it at
// target.
func (f Follower) Update(cam *component.CameraData, target mgl32.Vec3, dt float64) {
	defer profiling.Track("camera.Update")()
	goal := target.Add(f.Offset)
	t := f.Blend(dt)
	cam.Position = cam.Position.Add(goal.Sub(cam.Position).Mul(t))
	Aim(cam, target)
}

// Aim recomputes orientation and view so cam looks at target with +Y up.
// A camera sitting on its target gets the identity orientation.
func Aim(cam *component.CameraData, target mgl32.Vec3) {
	dir := target.Sub(cam.Position)
	if dir.Len() < degenerateDistance || parallel(dir, worldUp) {
		cam.Orientation = mgl32.QuatIdent()
		cam.View = mgl32.Translate3D(-cam.Position.X(), -cam.Position.Y(), -cam.Position.Z())
		return
	}
	cam.Orientation = mgl32.QuatLookAtV(cam.Position, target, worldUp)
	cam.View = mgl32.LookAtV(cam.Position, target, worldUp)
}

// NewCamera returns a camera at pos already aimed at target.
func NewCamera(pos, target mgl32.Vec3) component.CameraData {
	cam := component.CameraData{Position: pos}
	Aim(&cam, target)
	return cam
}

// Distance is how far cam is from its resting point for target.
func (f Follower) Distance(cam component.CameraData, target mgl32.Vec3) float32 {
	return target.Add(f.Offset).Sub(cam.Position).Len()
}

func parallel(dir, up mgl32.Vec3) bool {
	return dir.Normalize().Cross(up).Len() < degenerateDistance
}
