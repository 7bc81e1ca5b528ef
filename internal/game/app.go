package game

import (
	"log"
	"time"

	"mini-platformer/internal/clock"
	"mini-platformer/internal/input"
	"mini-platformer/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame is logged
const slowFrame = 16 * time.Millisecond

type App struct {
	window       *glfw.Window
	inputManager *input.InputManager

	session *Session

	fpsLimiter *FPSLimiter
	frame      *clock.Frame
}

func NewApp(window *glfw.Window, im *input.InputManager, session *Session) *App {
	return &App{
		window:       window,
		inputManager: im,
		session:      session,
		fpsLimiter:   NewFPSLimiter(),
		frame:        clock.NewFrame(),
	}
}

func (a *App) Run() {
	a.frame.Reset()
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now() // Measure pure processing time
	dt := a.frame.Tick()

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	if a.session.Update(dt, a.inputManager) {
		a.window.SetShouldClose(true)
	}
	a.session.Render(dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	// Check if frame took too long
	if processingDuration := time.Since(startTick); processingDuration > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	a.fpsLimiter.Wait(a.session.Paused)
}

// RefreshRender handles window resize repaints
func (a *App) RefreshRender() {
	if a.session != nil {
		a.session.RefreshRender()
	}
}

// EndSession releases the session's GL resources
func (a *App) EndSession() {
	if a.session != nil {
		a.session.Cleanup()
		a.session = nil
	}
}
