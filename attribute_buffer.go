package termgeom

import "log/slog"

// RectFloats is the number of float32 slots one rectangle record occupies
// in an AttributeBuffer: {x, y, width, height, r, g, b, a}.
const RectFloats = 8

// Rect is one decoded rectangle record in pixel units.
type Rect struct {
	X, Y, Width, Height float32
	R, G, B, A          float32
}

// AttributeBuffer is a growable flat float32 buffer holding one fixed-size
// record per rectangle, laid out for direct upload as instanced vertex
// attributes.
//
// The buffer grows geometrically and never shrinks; records are
// overwritten in place on every update, so a steady-state frame performs
// no allocation. Count tracks the logically valid record prefix.
//
// AttributeBuffer is not safe for concurrent use. Callers serialize
// update-then-read within a single frame cycle.
type AttributeBuffer struct {
	data  []float32
	count int
}

// EnsureCapacity grows the backing storage to hold at least minFloats
// float32 slots, copying existing contents. The new capacity is the larger
// of double the current length and minFloats. No-op if the buffer is
// already large enough. Growth never fails (unbounded memory model).
func (b *AttributeBuffer) EnsureCapacity(minFloats int) {
	if minFloats <= len(b.data) {
		return
	}
	newLen := len(b.data) * 2
	if newLen < minFloats {
		newLen = minFloats
	}
	grown := make([]float32, newLen)
	copy(grown, b.data)
	Logger().Debug("termgeom: attribute buffer grown",
		slog.Int("from", len(b.data)), slog.Int("to", newLen))
	b.data = grown
}

// Capacity returns the current backing length in float32 slots.
func (b *AttributeBuffer) Capacity() int { return len(b.data) }

// Count returns the number of valid rectangle records.
func (b *AttributeBuffer) Count() int { return b.count }

// Floats returns the valid record prefix as a flat float32 slice,
// RectFloats slots per record. The slice aliases internal storage and is
// invalidated by the next update.
func (b *AttributeBuffer) Floats() []float32 {
	return b.data[:b.count*RectFloats]
}

// Rect decodes record i. Callers must keep i within [0, Count).
func (b *AttributeBuffer) Rect(i int) Rect {
	d := b.data[i*RectFloats : i*RectFloats+RectFloats]
	return Rect{
		X: d[0], Y: d[1], Width: d[2], Height: d[3],
		R: d[4], G: d[5], B: d[6], A: d[7],
	}
}

// writeRect overwrites record slot i. The caller has already ensured
// capacity for the slot.
func (b *AttributeBuffer) writeRect(i int, x, y, w, h float32, c RGBA) {
	d := b.data[i*RectFloats : i*RectFloats+RectFloats]
	d[0] = x
	d[1] = y
	d[2] = w
	d[3] = h
	d[4] = float32(c.R)
	d[5] = float32(c.G)
	d[6] = float32(c.B)
	d[7] = float32(c.A)
}

// setCount sets the valid record prefix length.
func (b *AttributeBuffer) setCount(n int) { b.count = n }
