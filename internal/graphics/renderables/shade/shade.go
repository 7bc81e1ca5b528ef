package shade

import (
	"mini-platformer/assets"
	"mini-platformer/internal/graphics"
	renderer "mini-platformer/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	VertShader = "shaders/shade/shade.vert"
	FragShader = "shaders/shade/shade.frag"
)

// pauseTint darkens the scene while the simulation is paused
var pauseTint = mgl32.Vec4{0, 0, 0, 0.45}

// Shade dims the frame while paused. It must come after the scene and before
// the overlay so the status text stays readable.
type Shade struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewShade() *Shade {
	return &Shade{}
}

func (s *Shade) Init() error {
	var err error
	s.shader, err = graphics.NewShader(assets.Shaders, VertShader, FragShader)
	if err != nil {
		return err
	}

	// Full-screen quad in NDC
	verts := []float32{
		-1, 1,
		1, 1,
		1, -1,
		-1, 1,
		1, -1,
		-1, -1,
	}
	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

func (s *Shade) SetViewport(width, height int) {}

func (s *Shade) Render(ctx renderer.RenderContext) {
	if !ctx.Frame.Paused {
		return
	}
	s.fill(pauseTint)
}

func (s *Shade) fill(c mgl32.Vec4) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	s.shader.Use()
	s.shader.SetVector4("uColor", c.X(), c.Y(), c.Z(), c.W())
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

func (s *Shade) Dispose() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}
