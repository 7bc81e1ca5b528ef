package player

import (
	"time"

	"mini-platformer/internal/clock"
	"mini-platformer/internal/component"
	"mini-platformer/internal/config"
	"mini-platformer/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// FallMonitor drives the Grounded / Airborne / FallingOutOfBounds state
// machine and decides when a body is respawned.
type FallMonitor struct {
	Policy     config.FallPolicy
	Threshold  time.Duration
	YThreshold float32
}

func NewFallMonitor(t config.Tuning) FallMonitor {
	return FallMonitor{
		Policy:     t.FallPolicy,
		Threshold:  t.FallThreshold,
		YThreshold: t.FallYThreshold,
	}
}

// Update advances the body's fall state from this step's ground contact.
// It returns the possibly respawned position and velocity and whether a
// respawn fired.
func (m FallMonitor) Update(pos, vel mgl32.Vec3, body *component.BodyData, contact physics.Contact, dt float64) (mgl32.Vec3, mgl32.Vec3, bool) {
	switch contact {
	case physics.ContactGrounded:
		body.State = component.FallStateGrounded
		body.FallElapsed = 0
	case physics.ContactOutsideBelow:
		body.State = component.FallStateFallingOutOfBounds
		if m.Policy == config.FallPolicyTimer {
			body.FallElapsed += clock.Duration(dt)
		}
	default:
		// airborne over the footprint, or above ground beyond it
		body.State = component.FallStateAirborne
		body.FallElapsed = 0
	}

	if m.shouldRespawn(pos, body) {
		pos, vel = Respawn(body)
		return pos, vel, true
	}
	return pos, vel, false
}

func (m FallMonitor) shouldRespawn(pos mgl32.Vec3, body *component.BodyData) bool {
	switch m.Policy {
	case config.FallPolicyThreshold:
		return pos.Y() < m.YThreshold
	default:
		return body.State == component.FallStateFallingOutOfBounds && body.FallElapsed >= m.Threshold
	}
}

// Respawn resets the body to its spawn anchor and returns the new position
// and velocity.
func Respawn(body *component.BodyData) (mgl32.Vec3, mgl32.Vec3) {
	body.Grounded = true
	body.FallElapsed = 0
	body.State = component.FallStateGrounded
	return body.SpawnPosition(), mgl32.Vec3{}
}
