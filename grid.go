package termgeom

// Grid is a rows x cols store of cell background color codes.
//
// The terminal model refreshes the grid before each UpdateBackgrounds
// call; the geometry compiler only reads it. Cells are addressed as
// (column, row) with (0, 0) at the top-left.
type Grid struct {
	cols, rows int
	cells      []CellColor
}

// NewGrid creates a grid with every cell set to ColorDefault.
func NewGrid(cols, rows int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	g := &Grid{cols: cols, rows: rows, cells: make([]CellColor, cols*rows)}
	g.Clear()
	return g
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// At returns the color code at (x, y). Out-of-range cells read as
// ColorDefault.
func (g *Grid) At(x, y int) CellColor {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return ColorDefault
	}
	return g.cells[y*g.cols+x]
}

// Set stores a color code at (x, y). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, code CellColor) {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return
	}
	g.cells[y*g.cols+x] = code
}

// Clear resets every cell to ColorDefault.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = ColorDefault
	}
}

// Resize changes the grid dimensions. Existing content is discarded and
// every cell reset to ColorDefault; the caller repopulates from the
// terminal model afterwards.
func (g *Grid) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == g.cols && rows == g.rows {
		g.Clear()
		return
	}
	g.cols = cols
	g.rows = rows
	if need := cols * rows; cap(g.cells) < need {
		g.cells = make([]CellColor, need)
	} else {
		g.cells = g.cells[:need]
	}
	g.Clear()
}
