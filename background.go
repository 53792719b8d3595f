package termgeom

// BackgroundBatcher run-length merges the color grid into background
// rectangles.
//
// Slot 0 of the rectangle buffer always holds the viewport clear
// rectangle: a single rectangle at the origin covering the full visible
// grid in the resolved default background color. It is recomputed when
// the viewport metrics or the palette change, never by UpdateBackgrounds,
// and is not counted as a color run.
//
// Slots 1..N hold one rectangle per maximal horizontal run of same-colored
// non-default cells, in row-major, left-to-right discovery order. Runs
// never merge across row boundaries.
type BackgroundBatcher struct {
	buf     AttributeBuffer
	metrics Metrics
	palette *Palette
}

// NewBackgroundBatcher creates a batcher for the given viewport and
// palette. The palette must stay fully populated for the batcher's
// lifetime; NewPalette guarantees that.
func NewBackgroundBatcher(m Metrics, p *Palette) *BackgroundBatcher {
	b := &BackgroundBatcher{metrics: m, palette: p}
	b.buf.EnsureCapacity(RectFloats)
	b.buf.setCount(1)
	b.updateClearRect()
	return b
}

// Metrics returns the current viewport metrics.
func (b *BackgroundBatcher) Metrics() Metrics { return b.metrics }

// SetMetrics updates the viewport metrics after a resize or font change
// and recomputes the clear rectangle.
func (b *BackgroundBatcher) SetMetrics(m Metrics) {
	b.metrics = m
	b.updateClearRect()
}

// SetPalette swaps the palette after a theme change and recomputes the
// clear rectangle.
func (b *BackgroundBatcher) SetPalette(p *Palette) {
	b.palette = p
	b.updateClearRect()
}

// Buffer returns the rectangle buffer. The returned buffer is owned by
// the batcher and only valid to read between updates.
func (b *BackgroundBatcher) Buffer() *AttributeBuffer { return &b.buf }

// updateClearRect rewrites slot 0 to cover the full viewport in the
// default background color.
func (b *BackgroundBatcher) updateClearRect() {
	b.buf.writeRect(0, 0, 0, b.metrics.PixelWidth(), b.metrics.PixelHeight(),
		b.palette.Background())
}

// UpdateBackgrounds rebuilds the rectangle list from the grid.
//
// Single pass, O(rows x cols): each row is scanned left to right,
// consecutive cells sharing one non-default color are merged into a run,
// and each run flushes as one rectangle when the color changes or the row
// ends. Calling it twice with an unchanged grid yields an identical
// buffer.
//
// The grid is read through its own dimensions; cells outside the viewport
// metrics simply produce rectangles outside the visible area, so callers
// keep grid and metrics dimensions in agreement.
func (b *BackgroundBatcher) UpdateBackgrounds(grid *Grid) {
	rows, cols := grid.Rows(), grid.Cols()
	cw, ch := b.metrics.CellWidth, b.metrics.CellHeight

	slot := 1
	for y := 0; y < rows; y++ {
		runStartX := -1
		runColor := ColorDefault
		py := float32(y) * ch
		for x := 0; x < cols; x++ {
			code := grid.At(x, y)
			if code == runColor {
				continue
			}
			if runColor != ColorDefault {
				slot = b.emitRun(slot, runStartX, x, py, cw, ch, runColor, rows, cols)
			}
			runStartX = x
			runColor = code
		}
		if runColor != ColorDefault {
			slot = b.emitRun(slot, runStartX, cols, py, cw, ch, runColor, rows, cols)
		}
	}
	b.buf.setCount(slot)
}

// emitRun writes one run rectangle into the next free slot and returns
// the following slot index. Growth targets the worst case of the whole
// grid (every cell its own run) so at most one reallocation happens per
// update and never mid-row.
func (b *BackgroundBatcher) emitRun(slot, startX, endX int, py, cw, ch float32, code CellColor, rows, cols int) int {
	if (slot+1)*RectFloats > b.buf.Capacity() {
		b.buf.EnsureCapacity((1 + rows*cols) * RectFloats)
	}
	b.buf.writeRect(slot,
		float32(startX)*cw, py,
		float32(endX-startX)*cw, ch,
		b.palette.Resolve(code))
	return slot + 1
}
