// Package geometry owns the triangle's vertex data and the GPU objects
// describing it: the static vertex buffer and the vertex-array state.
package geometry

import (
	"unsafe"

	"github.com/Faultbox/gltriangle/internal/engine/backend"
)

// Vertex matches the shader inputs: a 2D position and an RGB color.
type Vertex struct {
	Pos [2]float32
	Col [3]float32
}

// Stride and ColorOffset are derived from the Vertex record itself so the
// attribute layout can never drift from the type definition.
const (
	Stride      = int32(unsafe.Sizeof(Vertex{}))
	ColorOffset = int(unsafe.Offsetof(Vertex{}.Col))
)

// VertexCount is the number of vertices one triangle draw submits.
const VertexCount = 3

// The fixed triangle. Uploaded once, never mutated.
var triangle = [VertexCount]Vertex{
	{Pos: [2]float32{-0.6, -0.4}, Col: [3]float32{1, 0, 0}},
	{Pos: [2]float32{0.6, -0.4}, Col: [3]float32{0, 1, 0}},
	{Pos: [2]float32{0, 0.6}, Col: [3]float32{0, 0, 1}},
}

// Buffer owns the GPU buffer object holding the triangle vertices.
type Buffer struct {
	api backend.API
	id  uint32
}

// NewBuffer allocates the buffer object and uploads the fixed vertex array
// with a static-draw usage hint. There is no update operation.
func NewBuffer(api backend.API) (*Buffer, error) {
	id, err := api.NewBuffer(vertexBytes(triangle[:]))
	if err != nil {
		return nil, err
	}
	return &Buffer{api: api, id: id}, nil
}

// Handle returns the buffer object.
func (b *Buffer) Handle() uint32 {
	return b.id
}

// Release deletes the buffer object.
func (b *Buffer) Release() {
	b.api.DeleteBuffer(b.id)
}

// VertexArray owns the array-state object binding the buffer's bytes to the
// program's attribute locations. Established once before the render loop and
// never re-validated at draw time.
type VertexArray struct {
	api backend.API
	id  uint32
}

// NewVertexArray binds buf as the vertex source of the two given attribute
// locations, with component counts and offsets taken from the Vertex record.
func NewVertexArray(api backend.API, buf *Buffer, position, color uint32) (*VertexArray, error) {
	attrs := []backend.VertexAttrib{
		{Location: position, Components: 2, Stride: Stride, Offset: 0},
		{Location: color, Components: 3, Stride: Stride, Offset: ColorOffset},
	}

	id, err := api.NewVertexArray(buf.Handle(), attrs)
	if err != nil {
		return nil, err
	}
	return &VertexArray{api: api, id: id}, nil
}

// Bind makes this array state current for the next draw.
func (va *VertexArray) Bind() {
	va.api.BindVertexArray(va.id)
}

// Release deletes the array-state object.
func (va *VertexArray) Release() {
	va.api.DeleteVertexArray(va.id)
}

func vertexBytes(v []Vertex) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*int(Stride))
}
