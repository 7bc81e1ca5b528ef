package overlay

import (
	"image/color"
	"slices"

	"mini-platformer/assets"
	"mini-platformer/internal/graphics"
	renderer "mini-platformer/internal/graphics/renderer"
	"mini-platformer/internal/hud"
	"mini-platformer/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	VertShader = "shaders/overlay/overlay.vert"
	FragShader = "shaders/overlay/overlay.frag"

	margin = 10
)

// unit quad as two triangles: position, uv
var quadVertices = []float32{
	0, 0, 0, 0,
	0, 1, 0, 1,
	1, 1, 1, 1,
	1, 1, 1, 1,
	1, 0, 1, 0,
	0, 0, 0, 0,
}

var (
	textColor  = color.RGBA{255, 255, 255, 255}
	panelColor = color.RGBA{0, 0, 0, 110}
)

// Overlay draws the status text panel in the top-left corner
type Overlay struct {
	shader  *graphics.Shader
	vao     uint32
	vbo     uint32
	texture uint32

	lines  []string
	texW   int
	texH   int
	width  int
	height int
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

func (o *Overlay) Init() error {
	var err error
	o.shader, err = graphics.NewShader(assets.Shaders, VertShader, FragShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	return nil
}

func (o *Overlay) SetViewport(width, height int) {
	o.width, o.height = width, height
}

func (o *Overlay) Render(ctx renderer.RenderContext) {
	lines := ctx.Frame.Overlay
	if len(lines) == 0 || o.width == 0 || o.height == 0 {
		return
	}
	defer profiling.Track("renderer.renderOverlay")()
	o.upload(lines)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetVector4("rect", margin, margin, float32(o.texW), float32(o.texH))
	o.shader.SetVector2("viewport", float32(o.width), float32(o.height))
	o.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// upload re-rasterizes only when the text changed
func (o *Overlay) upload(lines []string) {
	if o.texture != 0 && slices.Equal(lines, o.lines) {
		return
	}
	img := hud.Rasterize(lines, textColor, panelColor)
	if o.texture == 0 {
		o.texture = graphics.UploadTexture(img)
	} else {
		graphics.ReplaceTexture(o.texture, img)
	}
	o.lines = slices.Clone(lines)
	o.texW, o.texH = img.Rect.Dx(), img.Rect.Dy()
}

func (o *Overlay) Dispose() {
	if o.texture != 0 {
		gl.DeleteTextures(1, &o.texture)
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.shader != nil {
		o.shader.Delete()
	}
}
