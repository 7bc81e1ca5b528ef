package player

import (
	"testing"
	"time"

	"mini-platformer/internal/component"
	"mini-platformer/internal/config"
	"mini-platformer/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// step runs gravity and the fall monitor once, the way the world does.
func step(m FallMonitor, platform physics.Platform, gravity float32, pos, vel mgl32.Vec3, body *component.BodyData, dt float64) (mgl32.Vec3, mgl32.Vec3, bool) {
	pos, vel, contact := ApplyGravity(pos, vel, body, platform, gravity, dt)
	return m.Update(pos, vel, body, contact, dt)
}

func TestFallTimerRespawn(t *testing.T) {
	tuning := config.DefaultTuning()
	platform := physics.PlatformFromTuning(tuning)
	m := NewFallMonitor(tuning)

	pos := mgl32.Vec3{6, 0.5, 0}
	vel := mgl32.Vec3{}
	body := component.NewBody(tuning.SpawnPosition)
	body.Grounded = false
	body.State = component.FallStateAirborne

	// 0.5s frames reach the 5s threshold on the tenth update
	for i := 1; i <= 10; i++ {
		var respawned bool
		pos, vel, respawned = step(m, platform, tuning.GravityAccel, pos, vel, &body, 0.5)
		if i < 10 {
			if respawned {
				t.Fatalf("frame %d: respawned early", i)
			}
			if body.State != component.FallStateFallingOutOfBounds {
				t.Fatalf("frame %d: state = %v", i, body.State)
			}
			if want := time.Duration(i) * 500 * time.Millisecond; body.FallElapsed != want {
				t.Fatalf("frame %d: elapsed = %v, want %v", i, body.FallElapsed, want)
			}
			continue
		}
		if !respawned {
			t.Fatalf("no respawn after %v", body.FallElapsed)
		}
	}

	if pos != tuning.SpawnPosition || vel != (mgl32.Vec3{}) {
		t.Fatalf("respawn pose = %v %v", pos, vel)
	}
	if !body.Grounded || body.FallElapsed != 0 || body.State != component.FallStateGrounded {
		t.Fatalf("respawned body = %+v", body)
	}
}

func TestFallTimerResetsOnReentry(t *testing.T) {
	tuning := config.DefaultTuning()
	platform := physics.PlatformFromTuning(tuning)
	m := NewFallMonitor(tuning)
	body := component.NewBody(tuning.SpawnPosition)

	outside := mgl32.Vec3{5, 0.5, 0}
	pos, vel := outside, mgl32.Vec3{}
	for range 4 {
		pos, vel, _ = step(m, platform, tuning.GravityAccel, pos, vel, &body, 0.5)
	}
	if body.FallElapsed != 2*time.Second {
		t.Fatalf("elapsed = %v, want 2s", body.FallElapsed)
	}

	// back over the platform and below its surface: lands
	pos = mgl32.Vec3{0, pos.Y(), 0}
	pos, vel, _ = step(m, platform, tuning.GravityAccel, pos, vel, &body, 0.5)
	if !body.Grounded || body.FallElapsed != 0 || body.State != component.FallStateGrounded {
		t.Fatalf("re-entry did not reset: %+v", body)
	}

	pos = outside
	_, _, respawned := step(m, platform, tuning.GravityAccel, pos, vel, &body, 0.5)
	if respawned {
		t.Fatalf("unexpected respawn")
	}
	if body.FallElapsed != 500*time.Millisecond {
		t.Fatalf("second excursion elapsed = %v, want 500ms", body.FallElapsed)
	}
}

func TestFallMonitorAirborneOverPlatform(t *testing.T) {
	m := NewFallMonitor(config.DefaultTuning())
	body := component.NewBody(mgl32.Vec3{})
	body.Grounded = false
	body.FallElapsed = time.Second

	_, _, respawned := m.Update(mgl32.Vec3{0, 3, 0}, mgl32.Vec3{0, 4, 0}, &body, physics.ContactAirborne, 0.1)
	if respawned || body.State != component.FallStateAirborne || body.FallElapsed != 0 {
		t.Fatalf("airborne update: respawned=%v body=%+v", respawned, body)
	}
}

func TestFallMonitorOutsideAboveGround(t *testing.T) {
	m := NewFallMonitor(config.DefaultTuning())
	body := component.NewBody(mgl32.Vec3{})
	body.Grounded = false

	_, _, respawned := m.Update(mgl32.Vec3{6, 2, 0}, mgl32.Vec3{}, &body, physics.ContactOutside, 10)
	if respawned || body.State != component.FallStateAirborne || body.FallElapsed != 0 {
		t.Fatalf("outside above ground must not count: respawned=%v body=%+v", respawned, body)
	}
}

func TestFallThresholdPolicy(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.FallPolicy = config.FallPolicyThreshold
	m := NewFallMonitor(tuning)
	spawn := tuning.SpawnPosition

	cases := []struct {
		name    string
		y       float32
		respawn bool
	}{
		{"above", -9, false},
		{"at", -10, false},
		{"below", -10.5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := component.NewBody(spawn)
			body.Grounded = false
			pos, vel, respawned := m.Update(mgl32.Vec3{6, tc.y, 0}, mgl32.Vec3{0, -20, 0}, &body, physics.ContactOutsideBelow, 0.1)
			if respawned != tc.respawn {
				t.Fatalf("respawned = %v, want %v", respawned, tc.respawn)
			}
			if tc.respawn {
				if pos != spawn || vel != (mgl32.Vec3{}) {
					t.Fatalf("respawn pose = %v %v", pos, vel)
				}
				return
			}
			if body.State != component.FallStateFallingOutOfBounds || body.FallElapsed != 0 {
				t.Fatalf("threshold policy must not accumulate: %+v", body)
			}
		})
	}
}

func TestFootprintEdgeIsSupported(t *testing.T) {
	tuning := config.DefaultTuning()
	platform := physics.PlatformFromTuning(tuning)
	m := NewFallMonitor(tuning)
	body := component.NewBody(tuning.SpawnPosition)

	pos := mgl32.Vec3{tuning.PlatformHalfWidth, tuning.GroundHeight, 0}
	pos, vel, _ := step(m, platform, tuning.GravityAccel, pos, mgl32.Vec3{}, &body, 1.0/60)
	if !body.Grounded || body.State != component.FallStateGrounded {
		t.Fatalf("edge body not grounded: %+v", body)
	}
	if pos.Y() != tuning.GroundHeight || vel.Y() != 0 {
		t.Fatalf("edge body not clamped: %v %v", pos, vel)
	}
}

func TestSingleFrameFallOffPlatform(t *testing.T) {
	tuning := config.DefaultTuning()
	m := NewFallMonitor(tuning)
	// a platform too short to reach the spawn point at z = 8
	platform := physics.Platform{HalfWidth: 4, HalfLength: 5, GroundHeight: 0.5}

	body := component.NewBody(mgl32.Vec3{0, 0.5, 8})
	pos, vel, respawned := step(m, platform, -30, mgl32.Vec3{0, 0.5, 8}, mgl32.Vec3{}, &body, 1.0)

	if respawned {
		t.Fatalf("respawned after a single second")
	}
	if vel.Y() != -30 || pos.Y() != -29.5 {
		t.Fatalf("pos %v vel %v, want y=-29.5 vy=-30", pos, vel)
	}
	if body.Grounded || body.State != component.FallStateFallingOutOfBounds {
		t.Fatalf("body = %+v", body)
	}
	if body.FallElapsed != time.Second {
		t.Fatalf("elapsed = %v, want 1s", body.FallElapsed)
	}
}
