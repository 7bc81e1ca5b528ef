package player

import (
	"mini-platformer/internal/component"
	"mini-platformer/internal/config"
	"mini-platformer/internal/input"
	"mini-platformer/internal/physics"
	"mini-platformer/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Controller turns held direction actions and fresh jump presses into
// displacement and a vertical impulse.
type Controller struct {
	MoveSpeed   float32
	JumpImpulse float32
}

func NewController(t config.Tuning) Controller {
	return Controller{MoveSpeed: t.MoveSpeed, JumpImpulse: t.JumpImpulse}
}

// Direction returns the unit horizontal direction for the held actions, or
// the zero vector when nothing (or only opposing keys) is held.
func Direction(keys input.State) mgl32.Vec3 {
	var dir mgl32.Vec3
	if keys.IsActive(input.ActionMoveLeft) {
		dir[0] -= 1
	}
	if keys.IsActive(input.ActionMoveRight) {
		dir[0] += 1
	}
	if keys.IsActive(input.ActionMoveForward) {
		dir[2] -= 1
	}
	if keys.IsActive(input.ActionMoveBackward) {
		dir[2] += 1
	}
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}
	return dir
}

// ApplyInput moves pos horizontally and applies a jump impulse. The jump is
// edge-triggered and only taken from the ground. It reports whether a jump
// was applied.
func (c Controller) ApplyInput(pos, vel mgl32.Vec3, body *component.BodyData, keys input.State, dt float64) (mgl32.Vec3, mgl32.Vec3, bool) {
	defer profiling.Track("player.ApplyInput")()
	if dt > 0 {
		pos = pos.Add(Direction(keys).Mul(c.MoveSpeed * float32(dt)))
	}

	jumped := false
	if keys.JustPressed(input.ActionJump) && body.Grounded {
		vel[1] = c.JumpImpulse
		body.Grounded = false
		body.State = component.FallStateAirborne
		jumped = true
	}
	return pos, vel, jumped
}

// ApplyGravity integrates the body under gravity and resolves it against the
// platform, updating the grounded flag.
func ApplyGravity(pos, vel mgl32.Vec3, body *component.BodyData, platform physics.Platform, gravity float32, dt float64) (mgl32.Vec3, mgl32.Vec3, physics.Contact) {
	defer profiling.Track("player.ApplyGravity")()
	if dt <= 0 {
		return pos, vel, contactFor(body)
	}

	pos, vel = physics.Integrate(pos, vel, gravity, dt)
	pos, vel, contact := platform.ResolveGround(pos, vel)
	if contact == physics.ContactGrounded {
		body.Grounded = true
		body.FallElapsed = 0
	} else {
		body.Grounded = false
	}
	return pos, vel, contact
}

// contactFor reconstructs a contact from the body's current state for steps
// that do not integrate.
func contactFor(body *component.BodyData) physics.Contact {
	switch body.State {
	case component.FallStateGrounded:
		return physics.ContactGrounded
	case component.FallStateFallingOutOfBounds:
		return physics.ContactOutsideBelow
	}
	return physics.ContactAirborne
}
