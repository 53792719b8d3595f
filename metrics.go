package termgeom

// Metrics describes the visible viewport: the pixel size of one cell and
// the column/row counts. It is refreshed on resize or font change and
// passed to the geometry builders, which use it to convert cell
// coordinates into pixel coordinates.
type Metrics struct {
	// CellWidth and CellHeight are the pixel dimensions of one cell.
	CellWidth, CellHeight float32

	// Cols and Rows are the viewport dimensions in cells.
	Cols, Rows int
}

// PixelWidth returns the viewport width in pixels.
func (m Metrics) PixelWidth() float32 { return float32(m.Cols) * m.CellWidth }

// PixelHeight returns the viewport height in pixels.
func (m Metrics) PixelHeight() float32 { return float32(m.Rows) * m.CellHeight }
