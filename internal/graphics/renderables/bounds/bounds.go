package bounds

import (
	"mini-platformer/assets"
	"mini-platformer/internal/component"
	"mini-platformer/internal/config"
	"mini-platformer/internal/graphics"
	renderer "mini-platformer/internal/graphics/renderer"
	"mini-platformer/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	VertShader = "shaders/lines/lines.vert"
	FragShader = "shaders/lines/lines.frag"
)

var (
	edgeColor    = mgl32.Vec3{0.95, 0.95, 0.9}
	fallingColor = mgl32.Vec3{0.9, 0.2, 0.15}
	floorColor   = mgl32.Vec3{0.4, 0.4, 0.5}
)

// Unit square in the XZ plane as four line segments
var squareVertices = []float32{
	-0.5, 0, -0.5, 0.5, 0, -0.5,
	0.5, 0, -0.5, 0.5, 0, 0.5,
	0.5, 0, 0.5, -0.5, 0, 0.5,
	-0.5, 0, 0.5, -0.5, 0, -0.5,
}

// Bounds outlines the platform footprint a body must stay over. Under the
// threshold fall policy it also draws the respawn floor.
type Bounds struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewBounds() *Bounds {
	return &Bounds{}
}

func (b *Bounds) Init() error {
	var err error
	b.shader, err = graphics.NewShader(assets.Shaders, VertShader, FragShader)
	if err != nil {
		return err
	}
	b.setupSquareVAO()
	return nil
}

func (b *Bounds) SetViewport(width, height int) {}

func (b *Bounds) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderBounds")()
	w := ctx.Frame.World
	platform := w.Platform()
	size := mgl32.Vec3{2 * platform.HalfWidth, 1, 2 * platform.HalfLength}

	b.shader.Use()
	b.shader.SetMatrix4("proj", &ctx.Proj[0])
	b.shader.SetMatrix4("view", &ctx.View[0])
	gl.BindVertexArray(b.vao)
	gl.LineWidth(1.0)

	color := edgeColor
	if ctx.Frame.HasPlayer && ctx.Frame.Player.State == component.FallStateFallingOutOfBounds {
		color = fallingColor
	}
	// the outline sits on the platform's top face, just under a resting body
	half := float32(0.5)
	if d, ok := w.Descriptors().Get(w.Looks().Player); ok {
		half = d.Size.Y() / 2
	}
	b.drawSquare(platform.GroundHeight-half+0.01, size, color)

	if t := w.Tuning(); t.FallPolicy == config.FallPolicyThreshold {
		b.drawSquare(t.FallYThreshold, size.Mul(3), floorColor)
	}
}

func (b *Bounds) drawSquare(y float32, size, color mgl32.Vec3) {
	model := mgl32.Translate3D(0, y, 0).Mul4(mgl32.Scale3D(size.X(), 1, size.Z()))
	b.shader.SetMatrix4("model", &model[0])
	b.shader.SetVector3("color", color.X(), color.Y(), color.Z())
	gl.DrawArrays(gl.LINES, 0, int32(len(squareVertices)/3))
}

func (b *Bounds) Dispose() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.shader != nil {
		b.shader.Delete()
	}
}

func (b *Bounds) setupSquareVAO() {
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(squareVertices)*4, gl.Ptr(squareVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
}
