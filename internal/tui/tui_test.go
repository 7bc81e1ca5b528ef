package tui

import (
	"context"
	"testing"
	"time"

	"mini-platformer/internal/config"
	"mini-platformer/internal/input"
	"mini-platformer/internal/spawner"
	"mini-platformer/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

func TestKeyOf(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want input.Key
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), input.Key('a')},
		{"upper_rune", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), input.Key('d')},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.Key(' ')},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), special(tcell.KeyLeft)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KeyOf(tc.ev); got != tc.want {
				t.Fatalf("KeyOf = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHolder(t *testing.T) {
	im := input.NewInputManager()
	Bind(im)
	h := NewHolder(im, 300*time.Millisecond)
	t0 := time.Unix(100, 0)

	h.Press(input.Key(' '), t0)
	if !im.JustPressed(input.ActionJump) || !im.IsActive(input.ActionJump) {
		t.Fatalf("press not registered")
	}
	im.PostUpdate()

	// auto-repeat inside the window keeps the key held without a new edge
	h.Press(input.Key(' '), t0.Add(200*time.Millisecond))
	h.Expire(t0.Add(400 * time.Millisecond))
	if im.JustPressed(input.ActionJump) || !im.IsActive(input.ActionJump) {
		t.Fatalf("repeat should extend the hold silently")
	}

	h.Expire(t0.Add(500 * time.Millisecond))
	if im.IsActive(input.ActionJump) || h.Held() != 0 {
		t.Fatalf("key still held after its window")
	}
	if !im.JustReleased(input.ActionJump) {
		t.Fatalf("release edge missing")
	}
}

func TestBindArrowsAndLetters(t *testing.T) {
	im := input.NewInputManager()
	Bind(im)
	im.HandleKey(special(tcell.KeyRight), true)
	im.HandleKey(input.Key('w'), true)
	if !im.IsActive(input.ActionMoveRight) || !im.IsActive(input.ActionMoveForward) {
		t.Fatalf("bindings missing")
	}
}

func TestViewportCell(t *testing.T) {
	v := Viewport{MinX: -5, MaxX: 5, MinZ: -10, MaxZ: 10, Left: 2, Top: 3, Cols: 10, Rows: 20}
	cases := []struct {
		pos      mgl32.Vec3
		col, row int
		ok       bool
	}{
		{mgl32.Vec3{-5, 0, -10}, 2, 3, true},
		{mgl32.Vec3{5, 0, 10}, 11, 22, true},
		{mgl32.Vec3{0, 7, 0}, 7, 13, true},
		{mgl32.Vec3{6, 0, 0}, 0, 0, false},
		{mgl32.Vec3{0, 0, -11}, 0, 0, false},
	}
	for _, tc := range cases {
		col, row, ok := v.Cell(tc.pos)
		if ok != tc.ok || (ok && (col != tc.col || row != tc.row)) {
			t.Errorf("Cell(%v) = %d,%d,%v want %d,%d,%v", tc.pos, col, row, ok, tc.col, tc.row, tc.ok)
		}
	}
}

func TestDraw(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer s.Fini()
	s.SetSize(60, 30)

	w := world.New(config.DefaultTuning(), world.WithRand(spawner.Fixed(0.5)))
	w.Step(5, input.Snapshot{})

	Draw(s, w, []string{"status"})

	if r, _, _, _ := s.GetContent(0, 0); r != 's' {
		t.Fatalf("status line not drawn, got %q", r)
	}
	found := map[rune]bool{}
	for y := 2; y < 30; y++ {
		for x := 0; x < 60; x++ {
			r, _, _, _ := s.GetContent(x, y)
			found[r] = true
		}
	}
	if !found['@'] || !found['#'] {
		t.Fatalf("player or obstacle missing: %v", found)
	}
}

func TestForwardEvents(t *testing.T) {
	key := tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)

	t.Run("stops_on_cancel_with_full_buffer", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		out := make(chan tcell.Event, 1)
		done := make(chan struct{})
		go func() {
			forwardEvents(ctx, func() tcell.Event { return key }, out)
			close(done)
		}()
		<-out
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("forwarder still blocked after cancel")
		}
	})

	t.Run("closes_when_finalised", func(t *testing.T) {
		polls := []tcell.Event{key, key, nil}
		out := make(chan tcell.Event, len(polls))
		forwardEvents(context.Background(), func() tcell.Event {
			ev := polls[0]
			polls = polls[1:]
			return ev
		}, out)
		n := 0
		for range out {
			n++
		}
		if n != 2 {
			t.Fatalf("forwarded %d events, want 2", n)
		}
	})
}
