// Package backend defines the narrow GPU capability surface the render
// pipeline consumes. The real implementation wraps the OpenGL function
// table loaded by go-gl; Recorder is a no-GPU stand-in for tests.
package backend

import glmath "github.com/Faultbox/gltriangle/pkg/math"

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

// String returns the stage name used in diagnostics.
func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// VertexAttrib describes how one shader attribute reads a buffer.
// Components are 32-bit floats, never normalized.
type VertexAttrib struct {
	Location   uint32 // resolved attribute location
	Components int32  // number of floats per vertex
	Stride     int32  // bytes between consecutive vertices
	Offset     int    // byte offset of the first component
}

// API is the GPU interface the pipeline is written against. All calls must
// come from the single thread that owns the context.
type API interface {
	// Init loads the function table. Must be called after the context is
	// current and before any other method.
	Init() error
	Version() string
	RendererName() string

	// NewBuffer allocates one buffer object and uploads data once with a
	// static-draw usage hint. The contents are never updated or resized.
	NewBuffer(data []byte) (uint32, error)
	DeleteBuffer(id uint32)

	// CompileShader compiles a single-fragment source for the given stage.
	// The compile status is always queried; on failure the driver info log
	// is returned in the error.
	CompileShader(stage ShaderStage, source string) (uint32, error)
	DeleteShader(id uint32)

	// LinkProgram attaches both compiled stages to a new program object and
	// links it, checking the link status the same way.
	LinkProgram(vertex, fragment uint32) (uint32, error)
	DeleteProgram(id uint32)

	// UniformLocation and AttribLocation query the linked program by name.
	// A negative result means the name is not active in the program.
	UniformLocation(program uint32, name string) int32
	AttribLocation(program uint32, name string) int32

	// NewVertexArray records how buffer bytes map to the given attributes.
	NewVertexArray(buffer uint32, attrs []VertexAttrib) (uint32, error)
	DeleteVertexArray(id uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
	UseProgram(id uint32)
	// UniformMat4 uploads a column-major matrix without transposition.
	UniformMat4(location int32, m glmath.Mat4)
	BindVertexArray(id uint32)
	// DrawTriangles issues a triangle-list draw of count vertices starting
	// at first.
	DrawTriangles(first, count int32)
}
