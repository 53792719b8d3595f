// Package gpu uploads termgeom geometry to gogpu/wgpu buffers.
//
// The package owns no pipelines and records no draw calls: it packs the
// CPU-side rectangle and selection data into hal buffers with the vertex
// layouts an instanced terminal renderer binds against. Buffer growth is
// geometric and buffers are reused across frames, mirroring the reuse
// model of the CPU-side attribute buffer.
package gpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/termgeom"
)

// Package errors.
var (
	// ErrNilDevice is returned when creating a buffer without a device.
	ErrNilDevice = errors.New("gpu: device is nil")

	// ErrNilQueue is returned when creating a buffer without a queue.
	ErrNilQueue = errors.New("gpu: queue is nil")

	// ErrDestroyed is returned when operating on a destroyed buffer.
	ErrDestroyed = errors.New("gpu: buffer has been destroyed")
)

// RectInstanceStride is the byte stride of one rectangle instance record:
// 8 float32 fields {x, y, w, h, r, g, b, a}.
const RectInstanceStride = termgeom.RectFloats * 4

// RectInstanceLayout returns the vertex buffer layout for the instanced
// background-rectangle draw. The renderer binds a unit quad as vertex
// input and steps this buffer per instance:
//
//	location 1: rect origin (pixels)
//	location 2: rect size (pixels)
//	location 3: rect color (RGBA)
//
// Location 0 is reserved for the unit-quad corner position.
func RectInstanceLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: RectInstanceStride,
			StepMode:    gputypes.VertexStepModeInstance,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 1},  // origin
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 2},  // size
				{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 3}, // color
			},
		},
	}
}

// InstanceBuffer uploads the background rectangle list into a vertex
// buffer stepped per instance.
//
// The hal buffer is created lazily on first upload, grows geometrically
// when the rectangle list outgrows it, and never shrinks. InstanceBuffer
// is not safe for concurrent use.
type InstanceBuffer struct {
	device hal.Device
	queue  hal.Queue

	buf      hal.Buffer
	capacity uint64
	count    uint32
	label    string
	scratch  []byte

	destroyed bool
}

// NewInstanceBuffer creates an instance buffer bound to a device and
// queue. The label is used for GPU debugging tools.
func NewInstanceBuffer(device hal.Device, queue hal.Queue, label string) (*InstanceBuffer, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	if label == "" {
		label = "termgeom-rects"
	}
	return &InstanceBuffer{device: device, queue: queue, label: label}, nil
}

// Upload packs the valid records of buf and writes them to the GPU,
// reallocating the hal buffer if the data outgrew it.
func (b *InstanceBuffer) Upload(buf *termgeom.AttributeBuffer) error {
	if b.destroyed {
		return ErrDestroyed
	}

	b.scratch = packFloats(b.scratch[:0], buf.Floats())
	data := b.scratch
	b.count = uint32(buf.Count())
	if len(data) == 0 {
		return nil
	}

	if err := b.ensureCapacity(uint64(len(data))); err != nil {
		return err
	}
	b.queue.WriteBuffer(b.buf, 0, data)
	return nil
}

// ensureCapacity recreates the hal buffer when size exceeds the current
// capacity. Contents need no migration: Upload rewrites the full buffer.
func (b *InstanceBuffer) ensureCapacity(size uint64) error {
	if b.buf != nil && size <= b.capacity {
		return nil
	}
	newCap := b.capacity * 2
	if newCap < size {
		newCap = size
	}
	if b.buf != nil {
		b.device.DestroyBuffer(b.buf)
		b.buf = nil
	}
	buf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: b.label,
		Size:  newCap,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create %s: %w", b.label, err)
	}
	termgeom.Logger().Debug("gpu: instance buffer grown",
		slog.Uint64("from", b.capacity), slog.Uint64("to", newCap))
	b.buf = buf
	b.capacity = newCap
	return nil
}

// Buffer returns the underlying hal buffer, or nil before the first
// non-empty upload.
func (b *InstanceBuffer) Buffer() hal.Buffer { return b.buf }

// InstanceCount returns the number of rectangle instances in the last
// upload (including the viewport clear rectangle at instance 0).
func (b *InstanceBuffer) InstanceCount() uint32 { return b.count }

// Destroy releases the hal buffer. Idempotent.
func (b *InstanceBuffer) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	if b.buf != nil {
		b.device.DestroyBuffer(b.buf)
		b.buf = nil
	}
}

// packFloats appends src as little-endian float32 bytes to dst.
func packFloats(dst []byte, src []float32) []byte {
	var word [4]byte
	for _, f := range src {
		binary.LittleEndian.PutUint32(word[:], math.Float32bits(f))
		dst = append(dst, word[:]...)
	}
	return dst
}
