package physics

import (
	"math"

	"mini-platformer/internal/config"
	"mini-platformer/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Platform is an axis-aligned support rectangle centred on the origin whose
// top surface holds bodies at GroundHeight.
type Platform struct {
	HalfWidth    float32
	HalfLength   float32
	GroundHeight float32
}

func PlatformFromTuning(t config.Tuning) Platform {
	return Platform{
		HalfWidth:    t.PlatformHalfWidth,
		HalfLength:   t.PlatformHalfLength,
		GroundHeight: t.GroundHeight,
	}
}

// Supports reports whether pos lies over the footprint. Both intervals are
// closed: a body exactly on the edge is supported.
func (p Platform) Supports(pos mgl32.Vec3) bool {
	return abs32(pos.X()) <= p.HalfWidth && abs32(pos.Z()) <= p.HalfLength
}

// Contact is the outcome of ground resolution for one step.
type Contact int

const (
	// ContactAirborne: over the footprint, above ground height.
	ContactAirborne Contact = iota
	// ContactGrounded: landed or resting on the platform this step.
	ContactGrounded
	// ContactOutside: beyond the footprint and above ground height.
	ContactOutside
	// ContactOutsideBelow: beyond the footprint at or below ground height.
	ContactOutsideBelow
)

// Integrate applies gravity to vel then advances pos by the full velocity.
// Non-positive dt leaves both untouched.
func Integrate(pos, vel mgl32.Vec3, gravity float32, dt float64) (mgl32.Vec3, mgl32.Vec3) {
	if dt <= 0 {
		return pos, vel
	}
	step := float32(dt)
	vel[1] += gravity * step
	return pos.Add(vel.Mul(step)), vel
}

// ResolveGround clamps a body that reached the platform surface. It returns
// the corrected position and velocity along with the contact kind.
func (p Platform) ResolveGround(pos, vel mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3, Contact) {
	defer profiling.Track("physics.ResolveGround")()
	over := p.Supports(pos)
	below := pos.Y() <= p.GroundHeight

	switch {
	case over && below:
		pos[1] = p.GroundHeight
		vel[1] = 0
		return pos, vel, ContactGrounded
	case over:
		return pos, vel, ContactAirborne
	case below:
		return pos, vel, ContactOutsideBelow
	default:
		return pos, vel, ContactOutside
	}
}

// ProjectToGround returns the point on the platform surface under pos, used
// by renderers for a drop shadow. ok is false when pos is not over the footprint.
func (p Platform) ProjectToGround(pos mgl32.Vec3) (mgl32.Vec3, bool) {
	if !p.Supports(pos) {
		return mgl32.Vec3{}, false
	}
	return mgl32.Vec3{pos.X(), p.GroundHeight, pos.Z()}, true
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
