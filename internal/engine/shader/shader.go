// Package shader owns the triangle's GLSL program: both compiled stages,
// the linked program and the resolved uniform/attribute locations.
package shader

import (
	"fmt"

	"github.com/Faultbox/gltriangle/internal/engine/backend"
)

// Names the host binds against. A linked program where any of these is
// inactive is a configuration mismatch, not a recoverable condition.
const (
	UniformMVP     = "MVP"
	AttribPosition = "vPos"
	AttribColor    = "vCol"
)

const vertexSource = `#version 410 core
uniform mat4 MVP;
in vec2 vPos;
in vec3 vCol;
out vec3 color;
void main() {
    gl_Position = MVP * vec4(vPos, 0.0, 1.0);
    color = vCol;
}
`

const fragmentSource = `#version 410 core
in vec3 color;
out vec4 fragment;
void main() {
    fragment = vec4(color, 1.0);
}
`

// Program is the linked shader program with its resolved locations.
type Program struct {
	api backend.API

	vertex   uint32
	fragment uint32
	program  uint32

	// MVP is the model-view-projection uniform location.
	MVP int32
	// Position and Color are the vertex attribute locations.
	Position uint32
	Color    uint32
}

// Build compiles both stages, links them and resolves the required
// locations. Compile and link status are checked on every call; any failure
// carries the driver info log.
func Build(api backend.API) (*Program, error) {
	vert, err := api.CompileShader(backend.VertexStage, vertexSource)
	if err != nil {
		return nil, err
	}

	frag, err := api.CompileShader(backend.FragmentStage, fragmentSource)
	if err != nil {
		api.DeleteShader(vert)
		return nil, err
	}

	prog, err := api.LinkProgram(vert, frag)
	if err != nil {
		api.DeleteShader(frag)
		api.DeleteShader(vert)
		return nil, err
	}

	p := &Program{
		api:      api,
		vertex:   vert,
		fragment: frag,
		program:  prog,
	}

	if p.MVP = api.UniformLocation(prog, UniformMVP); p.MVP < 0 {
		p.Release()
		return nil, fmt.Errorf("uniform %q not active in program %d", UniformMVP, prog)
	}

	pos := api.AttribLocation(prog, AttribPosition)
	if pos < 0 {
		p.Release()
		return nil, fmt.Errorf("attribute %q not active in program %d", AttribPosition, prog)
	}
	p.Position = uint32(pos)

	col := api.AttribLocation(prog, AttribColor)
	if col < 0 {
		p.Release()
		return nil, fmt.Errorf("attribute %q not active in program %d", AttribColor, prog)
	}
	p.Color = uint32(col)

	return p, nil
}

// Handle returns the linked program object.
func (p *Program) Handle() uint32 {
	return p.program
}

// Use activates the program for subsequent draw calls.
func (p *Program) Use() {
	p.api.UseProgram(p.program)
}

// Release deletes the program and both stages, newest first.
func (p *Program) Release() {
	p.api.DeleteProgram(p.program)
	p.api.DeleteShader(p.fragment)
	p.api.DeleteShader(p.vertex)
}
