package game

import (
	"fmt"
	"log"

	"mini-platformer/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowOptions sizes the GL window
type WindowOptions struct {
	Width, Height int
	Title         string
	// VSync hands pacing to the driver instead of the FPSLimiter
	VSync   bool
	Samples int
}

func DefaultWindowOptions() WindowOptions {
	return WindowOptions{Width: 1024, Height: 640, Title: "mini-platformer", Samples: 4}
}

// SetupWindow creates a 4.1 core context window and loads the GL bindings.
// glfw must already be initialised on the calling (locked) thread.
func SetupWindow(opts WindowOptions) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if opts.Samples > 0 {
		glfw.WindowHint(glfw.Samples, opts.Samples)
	}

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	// the overlay needs room for its text panel
	window.SetSizeLimits(320, 200, glfw.DontCare, glfw.DontCare)

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))
	if opts.Samples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}

	if opts.VSync {
		glfw.SwapInterval(1)
		config.SetFPSLimit(0)
	} else {
		glfw.SwapInterval(0)
	}
	return window, nil
}
