package scene

import (
	"mini-platformer/assets"
	"mini-platformer/internal/component"
	"mini-platformer/internal/graphics"
	renderer "mini-platformer/internal/graphics/renderer"
	"mini-platformer/internal/profiling"
	"mini-platformer/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	VertShader = "shaders/scene/scene.vert"
	FragShader = "shaders/scene/scene.frag"
)

// LightPos is the single point light the scene is shaded with
var LightPos = mgl32.Vec3{4, 8, 4}

// Unit cube, position + normal per vertex, counter-clockwise faces
var CubeVertices = []float32{
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	-0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, 0.5, 0, 1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,
}

// Scene draws the platform, the player with its drop shadow and every obstacle
type Scene struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) Init() error {
	var err error
	s.shader, err = graphics.NewShader(assets.Shaders, VertShader, FragShader)
	if err != nil {
		return err
	}
	s.setupCubeVAO()
	return nil
}

func (s *Scene) SetViewport(width, height int) {}

func (s *Scene) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderScene")()
	frame := ctx.Frame
	arena := frame.World.Descriptors()
	looks := frame.World.Looks()

	s.shader.Use()
	s.shader.SetMatrix4("proj", &ctx.Proj[0])
	s.shader.SetMatrix4("view", &ctx.View[0])
	s.shader.SetVector3("lightPos", LightPos.X(), LightPos.Y(), LightPos.Z())
	s.shader.SetFloat("alpha", 1)
	gl.BindVertexArray(s.vao)

	platform := frame.World.Platform()
	playerLook, _ := arena.Get(looks.Player)
	if d, ok := arena.Get(looks.Platform); ok {
		// the platform's top face is where a resting body's bottom face sits
		top := platform.GroundHeight - playerLook.Size.Y()/2
		s.drawBox(mgl32.Vec3{0, top - d.Size.Y()/2, 0}, d.Size, d.Color)
	}

	for _, o := range frame.Obstacles {
		if d, ok := arena.Get(o.Appearance); ok {
			s.drawBox(o.Position, d.Size, d.Color)
		}
	}

	if !frame.HasPlayer {
		return
	}
	if d, ok := arena.Get(frame.Player.Appearance); ok {
		s.drawBox(frame.Player.Position, d.Size, d.Color)
	}
	if frame.Player.State != component.FallStateGrounded {
		s.drawShadow(frame.Player, platform.GroundHeight-playerLook.Size.Y()/2, frame.World)
	}
}

func (s *Scene) drawShadow(b world.Body, top float32, w *world.World) {
	ground, ok := w.Platform().ProjectToGround(b.Position)
	if !ok {
		return
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	s.shader.SetFloat("alpha", 0.35)
	s.drawBox(mgl32.Vec3{ground.X(), top + 0.01, ground.Z()}, mgl32.Vec3{0.8, 0.02, 0.8}, mgl32.Vec3{})
	s.shader.SetFloat("alpha", 1)
	gl.Disable(gl.BLEND)
}

func (s *Scene) drawBox(center, size, color mgl32.Vec3) {
	model := mgl32.Translate3D(center.X(), center.Y(), center.Z()).
		Mul4(mgl32.Scale3D(size.X(), size.Y(), size.Z()))
	s.shader.SetMatrix4("model", &model[0])
	s.shader.SetVector3("color", color.X(), color.Y(), color.Z())
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(CubeVertices)/6))
}

func (s *Scene) Dispose() {
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

func (s *Scene) setupCubeVAO() {
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(CubeVertices)*4, gl.Ptr(CubeVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
}
