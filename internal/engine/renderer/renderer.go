// Package renderer drives the OpenGL pipeline for the animated triangle:
// resource creation, the per-frame draw sequence and teardown.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gltriangle/internal/engine/backend"
	"github.com/Faultbox/gltriangle/internal/engine/geometry"
	"github.com/Faultbox/gltriangle/internal/engine/shader"
	"github.com/Faultbox/gltriangle/internal/logger"
	glmath "github.com/Faultbox/gltriangle/pkg/math"
)

// Fixed background color, dark blue-gray.
var background = [4]float32{0.1, 0.1, 0.15, 1.0}

// Renderer owns the pipeline's GPU resources and issues the per-frame draw.
type Renderer struct {
	api     backend.API
	buffer  *geometry.Buffer
	program *shader.Program
	vao     *geometry.VertexArray
}

// New creates all GPU resources in dependency order: vertex buffer, shader
// program, vertex-array state. Any failure releases what was already
// created and aborts; the context is presumed unusable after a creation
// failure, so there is no degraded path.
//
// IMPORTANT: must be called AFTER the OpenGL context is current.
func New(api backend.API) (*Renderer, error) {
	if err := api.Init(); err != nil {
		return nil, err
	}

	logger.Info("OpenGL initialized",
		zap.String("version", api.Version()),
		zap.String("renderer", api.RendererName()),
	)

	buf, err := geometry.NewBuffer(api)
	if err != nil {
		return nil, fmt.Errorf("vertex buffer: %w", err)
	}

	prog, err := shader.Build(api)
	if err != nil {
		buf.Release()
		return nil, fmt.Errorf("shader program: %w", err)
	}

	vao, err := geometry.NewVertexArray(api, buf, prog.Position, prog.Color)
	if err != nil {
		prog.Release()
		buf.Release()
		return nil, fmt.Errorf("vertex array: %w", err)
	}

	return &Renderer{
		api:     api,
		buffer:  buf,
		program: prog,
		vao:     vao,
	}, nil
}

// RenderFrame draws one frame into a width x height viewport. now is the
// wall-clock time in seconds, used directly as the rotation angle in
// radians. The call order is mandatory: viewport and clear precede the
// transform upload, which precedes the draw.
func (r *Renderer) RenderFrame(now float64, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("degenerate viewport %dx%d", width, height)
	}

	r.api.Viewport(0, 0, int32(width), int32(height))
	r.api.ClearColor(background[0], background[1], background[2], background[3])
	r.api.Clear()

	aspect := float32(width) / float32(height)
	model := glmath.RotateZ(float32(now))
	projection := glmath.Ortho(-aspect, aspect, -1, 1, 1, -1)
	mvp := projection.Mul(model)

	r.program.Use()
	r.api.UniformMat4(r.program.MVP, mvp)
	r.vao.Bind()
	r.api.DrawTriangles(0, geometry.VertexCount)

	return nil
}

// Close releases the GPU resources in reverse creation order: vertex-array
// state, program and stages, then the vertex buffer.
func (r *Renderer) Close() {
	logger.Info("closing renderer")

	r.vao.Release()
	r.program.Release()
	r.buffer.Release()
}
