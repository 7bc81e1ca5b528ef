package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"mini-platformer/internal/component"
	"mini-platformer/internal/config"
	"mini-platformer/internal/input"
	"mini-platformer/internal/spawner"
	"mini-platformer/internal/world"
)

func TestParseScript(t *testing.T) {
	doc := []byte(`
loop: true
phases:
  - for: 1.5s
    hold: [forward, Left]
  - for: 200ms
    press: [jump]
`)
	s, err := ParseScript(doc)
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if !s.Loop || len(s.Phases) != 2 {
		t.Fatalf("got loop=%v phases=%d", s.Loop, len(s.Phases))
	}
	if got := s.Duration(); got != 1700*time.Millisecond {
		t.Errorf("Duration = %v, want 1.7s", got)
	}
	p := s.Phases[0]
	if !p.held.IsActive(input.ActionMoveForward) || !p.held.IsActive(input.ActionMoveLeft) {
		t.Errorf("phase 0 should hold forward and left")
	}
	if !s.Phases[1].fresh.JustPressed(input.ActionJump) {
		t.Errorf("phase 1 should press jump")
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown action", "phases:\n  - for: 1s\n    hold: [crouch]\n"},
		{"zero duration", "phases:\n  - hold: [left]\n"},
		{"bad yaml", "phases: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScript([]byte(tt.doc)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestCursorSequence(t *testing.T) {
	s, err := ParseScript([]byte("phases:\n  - for: 100ms\n    press: [jump]\n  - for: 50ms\n    hold: [right]\n"))
	if err != nil {
		t.Fatal(err)
	}
	c := NewCursor(s)
	step := 50 * time.Millisecond

	first := c.Next(step)
	if !first.JustPressed(input.ActionJump) || !first.IsActive(input.ActionJump) {
		t.Errorf("frame 1 should press jump")
	}
	second := c.Next(step)
	if second.JustPressed(input.ActionJump) || !second.IsActive(input.ActionJump) {
		t.Errorf("frame 2 should hold jump without a fresh press")
	}
	third := c.Next(step)
	if !third.IsActive(input.ActionMoveRight) || third.IsActive(input.ActionJump) {
		t.Errorf("frame 3 should hold only right")
	}
	if !c.Done() {
		t.Errorf("cursor should be done after the last phase")
	}
	if idle := c.Next(step); idle != (input.Snapshot{}) {
		t.Errorf("finished cursor should yield no keys")
	}
}

func TestCursorLoops(t *testing.T) {
	s, err := ParseScript([]byte("loop: true\nphases:\n  - for: 10ms\n    press: [jump]\n"))
	if err != nil {
		t.Fatal(err)
	}
	c := NewCursor(s)
	for i := 0; i < 3; i++ {
		if !c.Next(10 * time.Millisecond).JustPressed(input.ActionJump) {
			t.Fatalf("pass %d: expected a fresh jump", i)
		}
	}
	if c.Done() {
		t.Error("looping cursor never finishes")
	}
}

func TestRunDefaultScript(t *testing.T) {
	tuning := config.DefaultTuning()
	w := world.New(tuning, world.WithRand(spawner.Fixed(0.5)), world.WithoutCamera())
	r := NewRunner(w, DefaultScript(), 1.0/60.0)

	sum, err := r.Run(context.Background(), 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Frames != 528 {
		t.Errorf("Frames = %d, want 528", sum.Frames)
	}
	if sum.Jumps != 1 {
		t.Errorf("Jumps = %d, want 1", sum.Jumps)
	}
	if sum.Respawns != 1 {
		t.Errorf("Respawns = %d, want 1", sum.Respawns)
	}
	if sum.Spawns != 1 {
		t.Errorf("Spawns = %d, want 1", sum.Spawns)
	}
	if !sum.HasPlayer || sum.Final.State != component.FallStateGrounded {
		t.Fatalf("final body = %+v, want grounded", sum.Final)
	}
	if d := sum.Final.Position.Sub(tuning.SpawnPosition).Len(); d > 1e-4 {
		t.Errorf("final position %v, want spawn %v", sum.Final.Position, tuning.SpawnPosition)
	}
}

func TestRunFrameLimit(t *testing.T) {
	w := world.New(config.DefaultTuning(), world.WithSeed(7), world.WithoutCamera())
	s := DefaultScript()
	s.Loop = true
	sum, err := NewRunner(w, s, 0.5).Run(context.Background(), 25)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Frames != 25 || sum.Elapsed != 12500*time.Millisecond {
		t.Errorf("got frames=%d elapsed=%v", sum.Frames, sum.Elapsed)
	}
	if sum.Spawns != 2 {
		t.Errorf("Spawns = %d, want 2", sum.Spawns)
	}
}

func TestRunCancelled(t *testing.T) {
	w := world.New(config.DefaultTuning(), world.WithSeed(1), world.WithoutCamera())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := NewRunner(w, DefaultScript(), 1.0/60.0).Run(ctx, 100)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if sum.Frames != 0 {
		t.Errorf("Frames = %d, want 0", sum.Frames)
	}
}
