package renderer

import (
	"mini-platformer/internal/camera"
	"mini-platformer/internal/profiling"
	"mini-platformer/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	lens        *camera.Lens
	width       int
	height      int
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	renderer := &Renderer{
		renderables: rs,
		lens:        camera.NewLens(width, height),
		width:       width,
		height:      height,
	}

	// Initialize all renderables
	for i, r := range rs {
		if err := r.Init(); err != nil {
			// release the ones that did come up
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
		r.SetViewport(width, height)
	}

	return renderer, nil
}

// Capture snapshots w for one frame of drawing
func Capture(w *world.World, overlay []string) Frame {
	f := Frame{World: w, Obstacles: w.Obstacles(), Overlay: overlay}
	f.Player, f.HasPlayer = w.Player()
	return f
}

// Render clears the screen and draws every renderable through the follow camera
func (r *Renderer) Render(frame Frame, dt float64) {
	defer profiling.Track("renderer.Render")()
	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := mgl32.Ident4()
	if cam, ok := frame.World.Camera(); ok {
		view = cam.View
	}

	ctx := RenderContext{
		Lens:   r.lens,
		Frame:  frame,
		DT:     dt,
		View:   view,
		Proj:   r.lens.Projection(),
		Width:  r.width,
		Height: r.height,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

func (r *Renderer) Lens() *camera.Lens {
	return r.lens
}

// UpdateViewport resizes the lens and every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	r.lens.Resize(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
