package backend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	glmath "github.com/Faultbox/gltriangle/pkg/math"
)

// GL implements API on the OpenGL 4.1 core profile.
type GL struct{}

// NewGL returns the OpenGL-backed implementation. Init must be called after
// the context is current.
func NewGL() *GL {
	return &GL{}
}

// Init loads the OpenGL function pointers.
func (g *GL) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return nil
}

func (g *GL) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (g *GL) RendererName() string {
	return gl.GoStr(gl.GetString(gl.RENDERER))
}

func (g *GL) NewBuffer(data []byte) (uint32, error) {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	if vbo == 0 {
		return 0, fmt.Errorf("glGenBuffers produced no buffer object")
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vbo, nil
}

func (g *GL) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (g *GL) CompileShader(stage ShaderStage, source string) (uint32, error) {
	glType := uint32(gl.VERTEX_SHADER)
	if stage == FragmentStage {
		glType = gl.FRAGMENT_SHADER
	}

	shader := gl.CreateShader(glType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader compile failed: %s", stage, strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

func (g *GL) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (g *GL) LinkProgram(vertex, fragment uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("program link failed: %s", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

func (g *GL) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

func (g *GL) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (g *GL) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (g *GL) NewVertexArray(buffer uint32, attrs []VertexAttrib) (uint32, error) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	if vao == 0 {
		return 0, fmt.Errorf("glGenVertexArrays produced no array object")
	}
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)

	for _, a := range attrs {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointerWithOffset(a.Location, a.Components, gl.FLOAT, false, a.Stride, uintptr(a.Offset))
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return vao, nil
}

func (g *GL) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (g *GL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (g *GL) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (g *GL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (g *GL) UseProgram(id uint32) {
	gl.UseProgram(id)
}

func (g *GL) UniformMat4(location int32, m glmath.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (g *GL) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (g *GL) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}
