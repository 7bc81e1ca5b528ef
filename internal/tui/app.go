package tui

import (
	"context"
	"log"
	"time"

	"mini-platformer/internal/clock"
	"mini-platformer/internal/config"
	"mini-platformer/internal/hud"
	"mini-platformer/internal/input"
	"mini-platformer/internal/profiling"
	"mini-platformer/internal/world"

	"github.com/gdamore/tcell/v2"
)

// obstacles this far past the platform's near edge are dropped
const cleanupDistance = 5

// App runs the simulation in a terminal.
type App struct {
	screen tcell.Screen
	world  *world.World
	im     *input.InputManager
	holder *Holder
	frame  *clock.Frame

	paused      bool
	showProfile bool
	frames      int
	fps         float64
	fpsAt       time.Time
}

// NewApp wires a world to an initialised screen.
func NewApp(screen tcell.Screen, w *world.World) *App {
	im := input.NewInputManager()
	Bind(im)
	return &App{
		screen: screen,
		world:  w,
		im:     im,
		holder: NewHolder(im, DefaultHoldWindow),
		frame:  clock.NewFrame(),
		fpsAt:  time.Now(),
	}
}

// forwardEvents copies polled events to out until the screen is finalised or
// ctx is cancelled. out is closed only in the finalised case.
func forwardEvents(ctx context.Context, poll func() tcell.Event, out chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Run drives frames until the quit action or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go forwardEvents(ctx, a.screen.PollEvent, events)

	// terminals gain nothing above 60 redraws a second
	rate := min(max(config.GetFPSLimit(), 1), 60)
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	a.frame.Reset()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.handleEvent(ev)
		case now := <-ticker.C:
			if !a.tick(now) {
				return nil
			}
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.holder.Press(KeyOf(ev), ev.When())
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// tick advances one frame and reports whether to keep running.
func (a *App) tick(now time.Time) bool {
	profiling.ResetFrame()
	a.holder.Expire(now)
	dt := a.frame.Tick()

	if a.im.JustPressed(input.ActionQuit) {
		return false
	}
	if a.im.JustPressed(input.ActionPause) {
		a.paused = !a.paused
	}
	if a.im.JustPressed(input.ActionToggleHUD) {
		config.ToggleHUD()
	}
	if a.im.JustPressed(input.ActionToggleProfiling) {
		a.showProfile = !a.showProfile
	}
	if a.im.JustPressed(input.ActionReset) {
		a.world.Restart()
	}

	if !a.paused {
		a.world.Step(dt, a.im.Snapshot())
		limit := a.world.Platform().HalfLength + cleanupDistance
		if n := a.world.PruneObstacles(world.BeyondZ(limit)); n > 0 {
			log.Printf("pruned %d obstacles", n)
		}
	}

	a.frames++
	if since := now.Sub(a.fpsAt); since >= time.Second {
		a.fps = float64(a.frames) / since.Seconds()
		a.frames = 0
		a.fpsAt = now
	}

	var lines []string
	if config.GetShowHUD() {
		status := hud.StatusOf(a.world)
		status.FPS = a.fps
		status.Paused = a.paused
		if a.showProfile {
			status.Profile = profiling.TopNLast(3)
		}
		lines = status.Lines()
	}
	func() {
		defer profiling.Track("tui.Draw")()
		Draw(a.screen, a.world, lines)
		a.screen.Show()
	}()

	a.im.PostUpdate()
	return true
}
