package renderer

import (
	"mini-platformer/internal/camera"
	"mini-platformer/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame is the simulation state a renderer draws, captured once per frame
type Frame struct {
	World     *world.World
	Player    world.Body
	HasPlayer bool
	Obstacles []world.Obstacle
	Overlay   []string
	Paused    bool
}

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Lens   *camera.Lens
	Frame  Frame
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4
	Width  int
	Height int
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
