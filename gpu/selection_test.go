package gpu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/termgeom"
)

var selTestMetrics = termgeom.Metrics{CellWidth: 10, CellHeight: 20, Cols: 8, Rows: 6}

func TestSelectionBuffers_Upload(t *testing.T) {
	device := &fakeDevice{}
	queue := &fakeQueue{}
	sb, err := NewSelectionBuffers(device, queue)
	if err != nil {
		t.Fatalf("NewSelectionBuffers: %v", err)
	}

	geom := termgeom.BuildSelection(termgeom.SelectionSpan{
		Active:   true,
		StartRow: 1, StartCol: 2,
		EndRow: 3, EndCol: 5,
	}, selTestMetrics)
	if err := sb.Upload(&geom); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if len(device.created) != 2 {
		t.Fatalf("buffers created = %d, want 2", len(device.created))
	}
	vert, idx := device.created[0], device.created[1]
	if vert.label != "termgeom-selection-verts" || vert.size != selectionVertexBytes {
		t.Errorf("vertex buffer = {%q, %d}, want {termgeom-selection-verts, %d}",
			vert.label, vert.size, selectionVertexBytes)
	}
	if vert.usage != gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst {
		t.Errorf("vertex usage = %v, want vertex|copy-dst", vert.usage)
	}
	if idx.label != "termgeom-selection-indices" || idx.size != selectionIndexBytes {
		t.Errorf("index buffer = {%q, %d}, want {termgeom-selection-indices, %d}",
			idx.label, idx.size, selectionIndexBytes)
	}
	if idx.usage != gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst {
		t.Errorf("index usage = %v, want index|copy-dst", idx.usage)
	}

	if len(queue.writes) != 2 {
		t.Fatalf("writes = %d, want 2", len(queue.writes))
	}
	if w := queue.writes[0]; w.buf != vert || w.offset != 0 || !bytes.Equal(w.data, packSelectionVertices(nil, &geom)) {
		t.Error("vertex write does not match the packed control vertices")
	}
	if w := queue.writes[1]; w.buf != idx || w.offset != 0 || !bytes.Equal(w.data, packOutline(nil, &geom)) {
		t.Error("index write does not match the packed outline")
	}

	if sb.VertexBuffer() != vert || sb.IndexBuffer() != idx {
		t.Error("buffer accessors do not return the created hal buffers")
	}
	if !sb.ShouldDraw() {
		t.Error("ShouldDraw() = false after a non-empty upload")
	}
	if sb.IndexCount() != termgeom.OutlineIndexCount {
		t.Errorf("IndexCount() = %d, want %d", sb.IndexCount(), termgeom.OutlineIndexCount)
	}

	// Uploading an empty geometry rewrites the same buffers in place.
	empty := termgeom.BuildSelection(termgeom.SelectionSpan{}, selTestMetrics)
	if err := sb.Upload(&empty); err != nil {
		t.Fatalf("Upload(empty): %v", err)
	}
	if len(device.created) != 2 {
		t.Errorf("buffers created = %d after second upload, want 2", len(device.created))
	}
	if len(queue.writes) != 4 {
		t.Errorf("writes = %d after second upload, want 4", len(queue.writes))
	}
	if sb.ShouldDraw() {
		t.Error("ShouldDraw() = true after an empty upload")
	}
}

func TestSelectionBuffers_Destroy(t *testing.T) {
	device := &fakeDevice{}
	queue := &fakeQueue{}
	sb, err := NewSelectionBuffers(device, queue)
	if err != nil {
		t.Fatalf("NewSelectionBuffers: %v", err)
	}

	geom := termgeom.BuildSelection(termgeom.SelectionSpan{
		Active:   true,
		StartRow: 0, StartCol: 0,
		EndRow: 0, EndCol: 3,
	}, selTestMetrics)
	if err := sb.Upload(&geom); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	sb.Destroy()
	if len(device.destroyed) != 2 {
		t.Errorf("buffers destroyed = %d, want 2", len(device.destroyed))
	}
	if sb.VertexBuffer() != nil || sb.IndexBuffer() != nil {
		t.Error("buffer accessors != nil after Destroy")
	}
	if err := sb.Upload(&geom); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Upload after Destroy: err = %v, want ErrDestroyed", err)
	}

	sb.Destroy()
	if len(device.destroyed) != 2 {
		t.Errorf("buffers destroyed = %d after double Destroy, want 2", len(device.destroyed))
	}
}

func TestSelectionBuffers_CreateError(t *testing.T) {
	createErr := errors.New("device lost")
	device := &fakeDevice{createErr: createErr}
	queue := &fakeQueue{}
	sb, err := NewSelectionBuffers(device, queue)
	if err != nil {
		t.Fatalf("NewSelectionBuffers: %v", err)
	}

	geom := termgeom.BuildSelection(termgeom.SelectionSpan{}, selTestMetrics)
	if err := sb.Upload(&geom); !errors.Is(err, createErr) {
		t.Errorf("Upload: err = %v, want wrapped create error", err)
	}
	if len(queue.writes) != 0 {
		t.Errorf("writes = %d after failed create, want 0", len(queue.writes))
	}
}
