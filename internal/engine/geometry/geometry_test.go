package geometry

import (
	"testing"

	"github.com/Faultbox/gltriangle/internal/engine/backend"
)

// The attribute layout is derived from the Vertex record: a 2-float
// position followed immediately by a 3-float color.
func TestVertexLayout(t *testing.T) {
	if Stride != 20 {
		t.Errorf("stride: got %d, want 20", Stride)
	}
	if ColorOffset != 8 {
		t.Errorf("color offset: got %d, want 8", ColorOffset)
	}
}

func TestBufferUploadsAllVertices(t *testing.T) {
	rec := backend.NewRecorder()

	buf, err := NewBuffer(rec)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}

	data, ok := rec.Buffers[buf.Handle()]
	if !ok {
		t.Fatal("no data uploaded for buffer handle")
	}
	if want := VertexCount * int(Stride); len(data) != want {
		t.Errorf("uploaded %d bytes, want %d", len(data), want)
	}
}

func TestVertexArrayBindsRecordLayout(t *testing.T) {
	rec := backend.NewRecorder()

	buf, err := NewBuffer(rec)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}

	va, err := NewVertexArray(rec, buf, 0, 1)
	if err != nil {
		t.Fatalf("NewVertexArray: %v", err)
	}

	attrs := rec.Attribs[va.id]
	if len(attrs) != 2 {
		t.Fatalf("got %d attributes, want 2", len(attrs))
	}

	pos := attrs[0]
	if pos.Location != 0 || pos.Components != 2 || pos.Stride != Stride || pos.Offset != 0 {
		t.Errorf("position attribute: got %+v", pos)
	}

	col := attrs[1]
	if col.Location != 1 || col.Components != 3 || col.Stride != Stride || col.Offset != ColorOffset {
		t.Errorf("color attribute: got %+v", col)
	}
}
