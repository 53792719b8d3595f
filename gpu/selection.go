package gpu

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/termgeom"
)

// SelectionVertexStride is the byte stride of one selection control
// vertex: {x, y, insetX, insetY} as float32.
const SelectionVertexStride = 16

// selectionVertexBytes is the fixed vertex buffer size: the control set
// always holds exactly SelectionVertexCount vertices.
const selectionVertexBytes = termgeom.SelectionVertexCount * SelectionVertexStride

// selectionIndexBytes is the fixed outline index buffer size: 16 uint32
// indices regardless of shape, the padded tail being degenerate segments.
const selectionIndexBytes = termgeom.OutlineIndexCount * 4

// SelectionVertexLayout returns the vertex buffer layout shared by the
// selection fill and outline draws:
//
//	location 0: vertex position (pixels)
//	location 1: inset direction, scaled in the shader by 0 (fill) or the
//	            outline inset scalar (outline)
func SelectionVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: SelectionVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // inset
			},
		},
	}
}

// SelectionBuffers holds the fixed-size vertex and outline index buffers
// for selection rendering. Both buffers are allocated once on first
// upload and rewritten in place afterwards.
//
// The outline draw always submits IndexCount indices; unused slots hold
// degenerate zero-length segments, so the draw call size is constant and
// shape-independent.
type SelectionBuffers struct {
	device hal.Device
	queue  hal.Queue

	vertBuf hal.Buffer
	idxBuf  hal.Buffer
	empty   bool
	scratch []byte

	destroyed bool
}

// NewSelectionBuffers creates selection buffers bound to a device and
// queue.
func NewSelectionBuffers(device hal.Device, queue hal.Queue) (*SelectionBuffers, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	return &SelectionBuffers{device: device, queue: queue, empty: true}, nil
}

// Upload writes the selection geometry to the GPU. An empty geometry is
// uploaded as-is (all-zero vertices); callers should still skip the draw
// via ShouldDraw.
func (s *SelectionBuffers) Upload(geom *termgeom.SelectionGeometry) error {
	if s.destroyed {
		return ErrDestroyed
	}
	if err := s.ensureBuffers(); err != nil {
		return err
	}

	s.scratch = packSelectionVertices(s.scratch[:0], geom)
	s.queue.WriteBuffer(s.vertBuf, 0, s.scratch)

	s.scratch = packOutline(s.scratch[:0], geom)
	s.queue.WriteBuffer(s.idxBuf, 0, s.scratch)

	s.empty = geom.Empty()
	return nil
}

// ensureBuffers lazily creates the fixed-size hal buffers.
func (s *SelectionBuffers) ensureBuffers() error {
	if s.vertBuf == nil {
		buf, err := s.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "termgeom-selection-verts",
			Size:  selectionVertexBytes,
			Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create selection vertex buffer: %w", err)
		}
		s.vertBuf = buf
	}
	if s.idxBuf == nil {
		buf, err := s.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "termgeom-selection-indices",
			Size:  selectionIndexBytes,
			Usage: gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create selection index buffer: %w", err)
		}
		s.idxBuf = buf
	}
	return nil
}

// VertexBuffer returns the vertex buffer, nil before the first upload.
func (s *SelectionBuffers) VertexBuffer() hal.Buffer { return s.vertBuf }

// IndexBuffer returns the outline index buffer, nil before the first
// upload.
func (s *SelectionBuffers) IndexBuffer() hal.Buffer { return s.idxBuf }

// IndexCount returns the constant outline index count submitted per
// outline draw.
func (s *SelectionBuffers) IndexCount() uint32 { return termgeom.OutlineIndexCount }

// ShouldDraw reports whether the last uploaded geometry is non-empty.
func (s *SelectionBuffers) ShouldDraw() bool { return !s.empty }

// Destroy releases both hal buffers. Idempotent.
func (s *SelectionBuffers) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	if s.vertBuf != nil {
		s.device.DestroyBuffer(s.vertBuf)
		s.vertBuf = nil
	}
	if s.idxBuf != nil {
		s.device.DestroyBuffer(s.idxBuf)
		s.idxBuf = nil
	}
}

// packSelectionVertices appends the 10 control vertices as little-endian
// float32 bytes.
func packSelectionVertices(dst []byte, geom *termgeom.SelectionGeometry) []byte {
	verts := geom.Vertices()
	for _, v := range verts {
		dst = packFloats(dst, []float32{v.X, v.Y, v.InsetX, v.InsetY})
	}
	return dst
}

// packOutline appends the full 16-slot outline index array as
// little-endian uint32 bytes.
func packOutline(dst []byte, geom *termgeom.SelectionGeometry) []byte {
	var word [4]byte
	outline := geom.Outline()
	for _, idx := range outline {
		binary.LittleEndian.PutUint32(word[:], idx)
		dst = append(dst, word[:]...)
	}
	return dst
}
