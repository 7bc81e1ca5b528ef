package graphics

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shader is a linked program with its uniform locations cached by name
type Shader struct {
	ID       uint32
	uniforms map[string]int32
}

// NewShader compiles and links the vertex and fragment sources at the given
// paths in fsys
func NewShader(fsys fs.FS, vertexPath, fragmentPath string) (*Shader, error) {
	stages := []struct {
		path string
		kind uint32
	}{
		{vertexPath, gl.VERTEX_SHADER},
		{fragmentPath, gl.FRAGMENT_SHADER},
	}

	compiled := make([]uint32, 0, len(stages))
	defer func() {
		for _, id := range compiled {
			gl.DeleteShader(id)
		}
	}()
	for _, st := range stages {
		src, err := fs.ReadFile(fsys, st.path)
		if err != nil {
			return nil, fmt.Errorf("read shader %s: %w", st.path, err)
		}
		id, err := compileStage(string(src), st.kind)
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", st.path, err)
		}
		compiled = append(compiled, id)
	}

	program, err := link(compiled...)
	if err != nil {
		return nil, fmt.Errorf("link %s + %s: %w", vertexPath, fragmentPath, err)
	}
	return &Shader{ID: program, uniforms: make(map[string]int32)}, nil
}

func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
	clear(s.uniforms)
}

func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// location looks a uniform up once; -1 (optimised out) is cached too
func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

func (s *Shader) SetVector2(name string, x, y float32) {
	gl.Uniform2f(s.location(name), x, y)
}

func (s *Shader) SetVector3(name string, x, y, z float32) {
	gl.Uniform3f(s.location(name), x, y, z)
}

func (s *Shader) SetVector4(name string, x, y, z, w float32) {
	gl.Uniform4f(s.location(name), x, y, z, w)
}

// SetMatrix4 uploads a column-major 4x4 matrix, e.g. &m[0] of an mgl32.Mat4
func (s *Shader) SetMatrix4(name string, value *float32) {
	gl.UniformMatrix4fv(s.location(name), 1, false, value)
}

func compileStage(source string, kind uint32) (uint32, error) {
	id := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8) { gl.GetShaderInfoLog(id, n, nil, buf) })
		gl.DeleteShader(id)
		return 0, fmt.Errorf("%s", msg)
	}
	return id, nil
}

func link(stages ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, id := range stages {
		gl.AttachShader(program, id)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8) { gl.GetProgramInfoLog(program, n, nil, buf) })
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%s", msg)
	}
	for _, id := range stages {
		gl.DetachShader(program, id)
	}
	return program, nil
}

func infoLog(n int32, read func(*uint8)) string {
	buf := strings.Repeat("\x00", int(n+1))
	read(gl.Str(buf))
	return strings.TrimRight(buf, "\x00\n")
}
