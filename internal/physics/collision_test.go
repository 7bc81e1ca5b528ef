package physics_test

import (
	"testing"

	"mini-platformer/internal/config"
	"mini-platformer/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

func testPlatform() physics.Platform {
	return physics.PlatformFromTuning(config.DefaultTuning())
}

func TestSupportsClosedIntervals(t *testing.T) {
	p := testPlatform()
	cases := []struct {
		name string
		pos  mgl32.Vec3
		want bool
	}{
		{"centre", mgl32.Vec3{0, 0.5, 0}, true},
		{"x_edge", mgl32.Vec3{4, 0.5, 0}, true},
		{"neg_x_edge", mgl32.Vec3{-4, 0.5, 0}, true},
		{"z_edge", mgl32.Vec3{0, 0.5, 10}, true},
		{"corner", mgl32.Vec3{4, 0.5, -10}, true},
		{"past_x", mgl32.Vec3{4.001, 0.5, 0}, false},
		{"past_z", mgl32.Vec3{0, 0.5, -10.001}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := p.Supports(c.pos); got != c.want {
				t.Fatalf("Supports(%v) = %v, want %v", c.pos, got, c.want)
			}
		})
	}
}

func TestIntegrateGravityMonotonic(t *testing.T) {
	pos := mgl32.Vec3{50, 100, 0}
	vel := mgl32.Vec3{}
	const g = float32(-30)
	const dt = 0.25

	prev := vel.Y()
	for i := 0; i < 20; i++ {
		pos, vel = physics.Integrate(pos, vel, g, dt)
		if vel.Y() >= prev {
			t.Fatalf("frame %d: velocity.y did not decrease (%v -> %v)", i, prev, vel.Y())
		}
		if want := prev + g*dt; vel.Y() != want {
			t.Fatalf("frame %d: velocity.y = %v, want %v", i, vel.Y(), want)
		}
		prev = vel.Y()
	}
}

func TestIntegrateIncludesHorizontalDrift(t *testing.T) {
	pos, vel := physics.Integrate(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{2, 0, -4}, -30, 0.5)
	if pos.X() != 1 || pos.Z() != -2 {
		t.Fatalf("horizontal drift not integrated: %v", pos)
	}
	if vel.Y() != -15 || pos.Y() != 10-7.5 {
		t.Fatalf("vertical step wrong: pos %v vel %v", pos, vel)
	}
}

func TestIntegrateNonPositiveDt(t *testing.T) {
	pos := mgl32.Vec3{1, 2, 3}
	vel := mgl32.Vec3{4, 5, 6}
	for _, dt := range []float64{0, -0.5} {
		gp, gv := physics.Integrate(pos, vel, -30, dt)
		if gp != pos || gv != vel {
			t.Fatalf("dt=%v changed state: %v %v", dt, gp, gv)
		}
	}
}

func TestResolveGround(t *testing.T) {
	p := testPlatform()
	cases := []struct {
		name    string
		pos     mgl32.Vec3
		vel     mgl32.Vec3
		want    physics.Contact
		wantPos mgl32.Vec3
		wantVel mgl32.Vec3
	}{
		{
			name: "sunk_into_surface_is_clamped",
			pos:  mgl32.Vec3{1, 0.2, 1}, vel: mgl32.Vec3{0, -9, 0},
			want: physics.ContactGrounded, wantPos: mgl32.Vec3{1, 0.5, 1}, wantVel: mgl32.Vec3{},
		},
		{
			name: "exactly_on_surface",
			pos:  mgl32.Vec3{0, 0.5, 0}, vel: mgl32.Vec3{0, -0.1, 0},
			want: physics.ContactGrounded, wantPos: mgl32.Vec3{0, 0.5, 0}, wantVel: mgl32.Vec3{},
		},
		{
			name: "edge_is_supported",
			pos:  mgl32.Vec3{4, 0.4, 0}, vel: mgl32.Vec3{0, -1, 0},
			want: physics.ContactGrounded, wantPos: mgl32.Vec3{4, 0.5, 0}, wantVel: mgl32.Vec3{},
		},
		{
			name: "above_surface",
			pos:  mgl32.Vec3{0, 3, 0}, vel: mgl32.Vec3{0, 5, 0},
			want: physics.ContactAirborne, wantPos: mgl32.Vec3{0, 3, 0}, wantVel: mgl32.Vec3{0, 5, 0},
		},
		{
			name: "outside_below",
			pos:  mgl32.Vec3{6, 0.2, 0}, vel: mgl32.Vec3{0, -3, 0},
			want: physics.ContactOutsideBelow, wantPos: mgl32.Vec3{6, 0.2, 0}, wantVel: mgl32.Vec3{0, -3, 0},
		},
		{
			name: "outside_above",
			pos:  mgl32.Vec3{6, 2, 0}, vel: mgl32.Vec3{0, 1, 0},
			want: physics.ContactOutside, wantPos: mgl32.Vec3{6, 2, 0}, wantVel: mgl32.Vec3{0, 1, 0},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos, vel, contact := p.ResolveGround(c.pos, c.vel)
			if contact != c.want {
				t.Fatalf("contact = %v, want %v", contact, c.want)
			}
			if pos != c.wantPos || vel != c.wantVel {
				t.Fatalf("got pos %v vel %v, want pos %v vel %v", pos, vel, c.wantPos, c.wantVel)
			}
		})
	}
}

func TestProjectToGround(t *testing.T) {
	p := testPlatform()
	if pt, ok := p.ProjectToGround(mgl32.Vec3{1, 7, 2}); !ok || pt != (mgl32.Vec3{1, 0.5, 2}) {
		t.Fatalf("ProjectToGround over platform = %v, %v", pt, ok)
	}
	if _, ok := p.ProjectToGround(mgl32.Vec3{9, 7, 2}); ok {
		t.Fatalf("ProjectToGround off platform should miss")
	}
}
