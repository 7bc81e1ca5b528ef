package profiling

import (
	"testing"
	"time"
)

func TestTopNAndPrefix(t *testing.T) {
	ResetFrame()
	add("world.Step", 1500*time.Microsecond)
	add("world.spawner", 500*time.Microsecond)
	add("renderer.scene", 3*time.Millisecond)

	tests := []struct {
		n    int
		want string
	}{
		{2, "renderer.scene:3ms, world.Step:1.5ms"},
		{0, ""},
		{-1, ""},
		{10, "renderer.scene:3ms, world.Step:1.5ms, world.spawner:0.5ms"},
	}
	for _, tt := range tests {
		if got := TopN(tt.n); got != tt.want {
			t.Errorf("TopN(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
	if got := SumWithPrefix("world."); got != 2*time.Millisecond {
		t.Fatalf("SumWithPrefix = %v", got)
	}
}

func TestTopNCallCount(t *testing.T) {
	ResetFrame()
	add("player.ApplyInput", 100*time.Microsecond)
	add("player.ApplyInput", 100*time.Microsecond)
	add("player.ApplyInput", 100*time.Microsecond)
	if got := TopN(1); got != "player.ApplyInput:0.3ms x3" {
		t.Fatalf("TopN(1) = %q", got)
	}
}

func TestResetFrameKeepsLastFrame(t *testing.T) {
	ResetFrame()
	add("world.Step", time.Millisecond)

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Fatalf("ResetFrame left entries in the running frame")
	}
	if got := LastFrame()["world.Step"]; got != time.Millisecond {
		t.Fatalf("LastFrame()[world.Step] = %v, want 1ms", got)
	}
	if got := TopNLast(1); got != "world.Step:1ms" {
		t.Fatalf("TopNLast(1) = %q", got)
	}

	ResetFrame()
	if len(LastFrame()) != 0 {
		t.Fatalf("an empty frame should replace the previous one")
	}
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	stop := Track("x")
	stop()
	stop = Track("x")
	stop()
	if _, ok := Snapshot()["x"]; !ok {
		t.Fatalf("Track did not record")
	}
}
