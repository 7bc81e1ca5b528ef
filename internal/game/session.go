package game

import (
	"fmt"
	"log"
	"time"

	"mini-platformer/internal/audio"
	"mini-platformer/internal/config"
	"mini-platformer/internal/graphics/renderables/bounds"
	"mini-platformer/internal/graphics/renderables/overlay"
	"mini-platformer/internal/graphics/renderables/scene"
	"mini-platformer/internal/graphics/renderables/shade"
	"mini-platformer/internal/graphics/renderer"
	"mini-platformer/internal/hud"
	"mini-platformer/internal/input"
	"mini-platformer/internal/profiling"
	"mini-platformer/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// obstacles this far past the platform's near edge are dropped
const cleanupDistance = 5

// SessionOptions configures a new session
type SessionOptions struct {
	TuningPath string
	Seed       int64
	Audio      *audio.Player
	HotReload  bool
}

type Session struct {
	Window   *glfw.Window
	Renderer *renderer.Renderer
	World    *world.World

	Paused bool

	opts        SessionOptions
	watcher     *config.Watcher
	showProfile bool

	Frames           int
	FPS              float64
	LastFPSCheckTime time.Time
	lastPrune        time.Time
}

func NewSession(window *glfw.Window, opts SessionOptions) (*Session, error) {
	tuning, err := config.LoadTuning(opts.TuningPath)
	if err != nil {
		return nil, err
	}

	width, height := window.GetSize()
	r, err := renderer.NewRenderer(width, height,
		scene.NewScene(),
		bounds.NewBounds(),
		shade.NewShade(),
		overlay.NewOverlay(),
	)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	s := &Session{
		Window:           window,
		Renderer:         r,
		opts:             opts,
		LastFPSCheckTime: time.Now(),
		lastPrune:        time.Now(),
	}
	s.setWorld(tuning)

	if opts.HotReload && opts.TuningPath != "" {
		s.watcher, err = config.NewWatcher(opts.TuningPath)
		if err != nil {
			// the game still runs, just without live tuning
			log.Printf("Tuning hot reload disabled: %v", err)
			s.watcher = nil
		}
	}
	return s, nil
}

// setWorld replaces the simulation with a fresh one built from t
func (s *Session) setWorld(t config.Tuning) {
	w := world.New(t, world.WithSeed(s.opts.Seed))
	if s.opts.Audio != nil {
		s.opts.Audio.Attach(w)
	}
	w.OnRespawned(func(ev world.Respawned) {
		log.Printf("Respawned from %.1f, %.1f, %.1f", ev.From.X(), ev.From.Y(), ev.From.Z())
	})
	s.World = w
}

func (s *Session) Cleanup() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	s.Renderer.Dispose()

	s.World = nil
	s.Renderer = nil
}

// Update applies host actions and advances the world. It reports whether the
// player asked to quit.
func (s *Session) Update(dt float64, im *input.InputManager) bool {
	if im.JustPressed(input.ActionQuit) {
		return true
	}
	s.handleInputActions(im)
	s.pollReload()

	if !s.Paused {
		s.World.Step(dt, im.Snapshot())
	}

	// Periodic cleanup (every 1 second)
	if time.Since(s.lastPrune) > time.Second {
		limit := s.World.Platform().HalfLength + cleanupDistance
		s.World.PruneObstacles(world.BeyondZ(limit))
		s.lastPrune = time.Now()
	}
	return false
}

func (s *Session) handleInputActions(im *input.InputManager) {
	if im.JustPressed(input.ActionPause) {
		s.SetPaused(!s.Paused)
	}
	if im.JustPressed(input.ActionToggleHUD) {
		config.ToggleHUD()
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		s.showProfile = !s.showProfile
	}
	if im.JustPressed(input.ActionReset) {
		s.World.Restart()
	}
}

func (s *Session) pollReload() {
	if s.watcher == nil {
		return
	}
	select {
	case path := <-s.watcher.Events:
		t, err := config.LoadTuning(path)
		if err != nil {
			log.Printf("Tuning reload rejected: %v", err)
			return
		}
		s.setWorld(t)
		log.Printf("Tuning reloaded from %s", path)
	case err := <-s.watcher.Errors:
		log.Printf("Tuning watcher: %v", err)
	default:
	}
}

func (s *Session) Render(dt float64) time.Duration {
	renderStart := time.Now()
	s.Renderer.Render(s.capture(), dt)
	renderDur := time.Since(renderStart)

	s.Frames++
	if since := time.Since(s.LastFPSCheckTime); since >= time.Second {
		s.FPS = float64(s.Frames) / since.Seconds()
		s.Frames = 0
		s.LastFPSCheckTime = time.Now()
	}
	return renderDur
}

func (s *Session) capture() renderer.Frame {
	frame := renderer.Capture(s.World, s.overlayLines())
	frame.Paused = s.Paused
	return frame
}

func (s *Session) overlayLines() []string {
	if !config.GetShowHUD() {
		return nil
	}
	status := hud.StatusOf(s.World)
	status.FPS = s.FPS
	status.Paused = s.Paused
	if s.showProfile {
		status.Profile = profiling.TopNLast(4)
	}
	return status.Lines()
}

func (s *Session) SetPaused(paused bool) {
	s.Paused = paused
}

func (s *Session) RefreshRender() {
	s.Renderer.Render(s.capture(), 0)
	s.Window.SwapBuffers()
}
