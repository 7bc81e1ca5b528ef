package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// FallState is the boundary fall monitor's state for a kinematic body.
type FallState int

const (
	FallStateGrounded FallState = iota
	FallStateAirborne
	FallStateFallingOutOfBounds
)

func (s FallState) String() string {
	switch s {
	case FallStateGrounded:
		return "grounded"
	case FallStateAirborne:
		return "airborne"
	case FallStateFallingOutOfBounds:
		return "falling-out-of-bounds"
	}
	return "unknown"
}

// BodyData is the non-spatial state of a controllable kinematic body.
// Position and velocity live in Transform and Velocity.
//
// Grounded implies Velocity.Y == 0 and Position.Y == ground height.
// FallElapsed > 0 implies !Grounded.
type BodyData struct {
	Grounded    bool
	FallElapsed time.Duration
	State       FallState

	// spawnPosition is fixed when the body is created.
	spawnPosition mgl32.Vec3
}

// NewBody returns a body resting at spawn.
func NewBody(spawn mgl32.Vec3) BodyData {
	return BodyData{
		Grounded:      true,
		State:         FallStateGrounded,
		spawnPosition: spawn,
	}
}

// SpawnPosition is the respawn anchor.
func (b *BodyData) SpawnPosition() mgl32.Vec3 {
	return b.spawnPosition
}

var Body = donburi.NewComponentType[BodyData]()
