package game

import (
	"mini-platformer/internal/input"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var keyBindings = map[glfw.Key]input.Action{
	glfw.KeyA:     input.ActionMoveLeft,
	glfw.KeyLeft:  input.ActionMoveLeft,
	glfw.KeyD:     input.ActionMoveRight,
	glfw.KeyRight: input.ActionMoveRight,
	glfw.KeyW:     input.ActionMoveForward,
	glfw.KeyUp:    input.ActionMoveForward,
	glfw.KeyS:     input.ActionMoveBackward,
	glfw.KeyDown:  input.ActionMoveBackward,
	glfw.KeySpace: input.ActionJump,

	glfw.KeyEscape: input.ActionPause,
	glfw.KeyF1:     input.ActionToggleHUD,
	glfw.KeyF3:     input.ActionToggleProfiling,
	glfw.KeyR:      input.ActionReset,
	glfw.KeyQ:      input.ActionQuit,
}

// BindKeys installs the keyboard layout on im
func BindKeys(im *input.InputManager) {
	for key, action := range keyBindings {
		im.BindKey(input.Key(key), action)
	}
}

func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	// Handle keyboard actions; repeats carry no new information
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			im.HandleKey(input.Key(key), true)
		case glfw.Release:
			im.HandleKey(input.Key(key), false)
		}
	})

	// Framebuffer size callback
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		if app.session != nil {
			winW, winH := w.GetSize()
			app.session.Renderer.UpdateViewport(winW, winH)
		}
		// NOTE: Do not render here. Rely on SetRefreshCallback for smooth resizing on macOS.
	})

	// Pause on focus loss
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused && app.session != nil {
			app.session.SetPaused(true)
		}
	})

	// Refresh callback
	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}
