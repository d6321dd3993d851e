package backend

import (
	"fmt"
	"strings"

	glmath "github.com/Faultbox/gltriangle/pkg/math"
)

// Recorder implements API without a GPU. It hands out sequential handles,
// appends every call to an ordered trace and can be told to fail shader
// compilation or linking. Used by pipeline tests.
type Recorder struct {
	// Calls is the ordered trace of every API call.
	Calls []string

	// CompileErrs maps a stage to a fake driver info log; compiling that
	// stage fails with it.
	CompileErrs map[ShaderStage]string
	// LinkErr, when non-empty, makes LinkProgram fail with it.
	LinkErr string
	// InactiveNames lists uniform/attribute names that resolve to -1.
	InactiveNames map[string]bool

	// Buffers holds the uploaded bytes per buffer handle.
	Buffers map[uint32][]byte
	// Attribs holds the layout recorded per vertex-array handle.
	Attribs map[uint32][]VertexAttrib
	// Uniforms holds the last matrix uploaded per location.
	Uniforms map[int32]glmath.Mat4

	nextHandle uint32
	locations  map[string]int32
	nextLoc    int32
}

// NewRecorder returns an empty recording backend.
func NewRecorder() *Recorder {
	return &Recorder{
		Buffers:  make(map[uint32][]byte),
		Attribs:  make(map[uint32][]VertexAttrib),
		Uniforms: make(map[int32]glmath.Mat4),
	}
}

func (r *Recorder) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) handle() uint32 {
	r.nextHandle++
	return r.nextHandle
}

// location resolves a name to a stable location, honoring InactiveNames.
func (r *Recorder) location(name string) int32 {
	if r.InactiveNames[name] {
		return -1
	}
	if r.locations == nil {
		r.locations = make(map[string]int32)
	}
	loc, ok := r.locations[name]
	if !ok {
		loc = r.nextLoc
		r.nextLoc++
		r.locations[name] = loc
	}
	return loc
}

// DrawCount returns how many draw calls the trace contains.
func (r *Recorder) DrawCount() int {
	n := 0
	for _, c := range r.Calls {
		if strings.HasPrefix(c, "DrawTriangles") {
			n++
		}
	}
	return n
}

func (r *Recorder) Init() error {
	r.record("Init")
	return nil
}

func (r *Recorder) Version() string { return "4.1 (recorder)" }

func (r *Recorder) RendererName() string { return "recorder" }

func (r *Recorder) NewBuffer(data []byte) (uint32, error) {
	id := r.handle()
	r.Buffers[id] = append([]byte(nil), data...)
	r.record("NewBuffer(%d)=%d", len(data), id)
	return id, nil
}

func (r *Recorder) DeleteBuffer(id uint32) {
	delete(r.Buffers, id)
	r.record("DeleteBuffer(%d)", id)
}

func (r *Recorder) CompileShader(stage ShaderStage, source string) (uint32, error) {
	if msg, ok := r.CompileErrs[stage]; ok {
		r.record("CompileShader(%s)=fail", stage)
		return 0, fmt.Errorf("%s shader compile failed: %s", stage, msg)
	}
	id := r.handle()
	r.record("CompileShader(%s)=%d", stage, id)
	return id, nil
}

func (r *Recorder) DeleteShader(id uint32) {
	r.record("DeleteShader(%d)", id)
}

func (r *Recorder) LinkProgram(vertex, fragment uint32) (uint32, error) {
	if r.LinkErr != "" {
		r.record("LinkProgram(%d,%d)=fail", vertex, fragment)
		return 0, fmt.Errorf("program link failed: %s", r.LinkErr)
	}
	id := r.handle()
	r.record("LinkProgram(%d,%d)=%d", vertex, fragment, id)
	return id, nil
}

func (r *Recorder) DeleteProgram(id uint32) {
	r.record("DeleteProgram(%d)", id)
}

func (r *Recorder) UniformLocation(program uint32, name string) int32 {
	return r.location(name)
}

func (r *Recorder) AttribLocation(program uint32, name string) int32 {
	return r.location(name)
}

func (r *Recorder) NewVertexArray(buffer uint32, attrs []VertexAttrib) (uint32, error) {
	id := r.handle()
	r.Attribs[id] = append([]VertexAttrib(nil), attrs...)
	r.record("NewVertexArray(%d)=%d", buffer, id)
	return id, nil
}

func (r *Recorder) DeleteVertexArray(id uint32) {
	delete(r.Attribs, id)
	r.record("DeleteVertexArray(%d)", id)
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport(%d,%d,%d,%d)", x, y, width, height)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor(%.2f,%.2f,%.2f,%.2f)", red, green, blue, alpha)
}

func (r *Recorder) Clear() {
	r.record("Clear")
}

func (r *Recorder) UseProgram(id uint32) {
	r.record("UseProgram(%d)", id)
}

func (r *Recorder) UniformMat4(location int32, m glmath.Mat4) {
	r.Uniforms[location] = m
	r.record("UniformMat4(%d)", location)
}

func (r *Recorder) BindVertexArray(id uint32) {
	r.record("BindVertexArray(%d)", id)
}

func (r *Recorder) DrawTriangles(first, count int32) {
	r.record("DrawTriangles(%d,%d)", first, count)
}
