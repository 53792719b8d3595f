package termgeom

// SelectionSpan describes the selected region in viewport row/column
// coordinates. StartRow/EndRow may lie outside the visible viewport (a
// selection scrolled partly off screen); BuildSelection clips them.
//
// A span with EndRow < StartRow is treated as an empty selection. Callers
// normalize drag direction before handing the span over.
type SelectionSpan struct {
	// Active reports whether a selection exists at all.
	Active bool

	// StartRow/StartCol locate the first selected cell.
	StartRow, StartCol int

	// EndRow locates the last selected row; EndCol is the exclusive end
	// column on that row.
	EndRow, EndCol int

	// ColumnMode selects a rectangular block over the column range,
	// ignoring text flow (block selection).
	ColumnMode bool
}

const (
	// SelectionVertexCount is the fixed number of control vertices in a
	// selection geometry.
	SelectionVertexCount = 10

	// OutlineIndexCount is the fixed number of outline vertex indices
	// (8 line segments). Unused trailing pairs repeat index 0, producing
	// degenerate zero-length segments, so an outline draw call can always
	// submit the same index count regardless of shape.
	OutlineIndexCount = 16
)

// SelectionVertex is one control vertex of the selection polygon.
//
// X and Y are pixel coordinates. InsetX and InsetY are unit direction
// components in {-1, 0, +1}, scaled at draw time by a single external
// inset scalar: 0 reproduces the filled shape, 1 shifts each vertex one
// pixel toward the shape interior for the outline pass. One vertex set
// thus serves both draws without duplicating geometry.
type SelectionVertex struct {
	X, Y           float32
	InsetX, InsetY float32
}

// SelectionGeometry is the output of BuildSelection: the fixed 10-vertex
// control set plus the outline index loop(s). The zero value is an empty
// selection (all-zero vertices, no active outline).
type SelectionGeometry struct {
	vertices   [SelectionVertexCount]SelectionVertex
	outline    [OutlineIndexCount]uint32
	outlineLen int
	middleRows int
}

// Empty reports whether the geometry describes no selection.
func (g *SelectionGeometry) Empty() bool { return g.outlineLen == 0 }

// Vertices returns the 10 control vertices. All zero when Empty.
func (g *SelectionGeometry) Vertices() [SelectionVertexCount]SelectionVertex {
	return g.vertices
}

// Outline returns the full 16-slot outline index array including the
// degenerate zero padding.
func (g *SelectionGeometry) Outline() [OutlineIndexCount]uint32 {
	return g.outline
}

// OutlineLen returns the number of meaningful indices at the front of
// Outline (8 for a single loop, 16 for two loops or the full staircase).
func (g *SelectionGeometry) OutlineLen() int { return g.outlineLen }

// MiddleRows returns the number of fully selected rows between the first
// and last row of a range selection. The fill pass instances its
// full-width middle quad this many times.
func (g *SelectionGeometry) MiddleRows() int { return g.middleRows }

// Vertex index layout of a range selection. The first row spans
// startCol..startRowEndCol, middle rows span the full viewport width, and
// the last row spans 0..endCol:
//
//	0 ------------------ 1        top partial row
//	|                    |
//	4 - 2 ---------------3
//	|     (middle rows)  |
//	5 ------- 7 -------- 6
//	|         |          bottom partial row
//	8 ------- 9
//
// Vertices 2/3 close the first-row rectangle, 4 connects the left edge,
// and 6 carries the full-width right corner of the staircase step.
const (
	vTopStart    = 0 // (startCol, startRow)
	vTopEnd      = 1 // (startRowEndCol, startRow)
	vTopStartLow = 2 // (startCol, startRow+1)
	vTopEndLow   = 3 // (startRowEndCol, startRow+1)
	vLeftEdge    = 4 // (0, startRow+1)
	vBottomLeft  = 5 // (0, endRow)
	vRightStep   = 6 // (viewportCols, endRow)
	vBottomEnd   = 7 // (endCol, endRow)
	vBottomLow   = 8 // (0, endRow+1)
	vBottomEndLo = 9 // (endCol, endRow+1)
)

// Outline index sequences. Each pair of indices is one line segment; the
// sequences form closed loops (every segment starts where the previous
// one ended).
var (
	// outlineSingle is the 4-corner loop of one rectangle.
	outlineSingle = []uint32{0, 1, 1, 3, 3, 2, 2, 0}

	// outlineDisjoint covers two horizontally non-overlapping partial
	// rows as two independent closed loops.
	outlineDisjoint = []uint32{0, 1, 1, 3, 3, 2, 2, 0, 5, 7, 7, 9, 9, 8, 8, 5}

	// outlineStaircase walks the full perimeter of the staircase shape.
	outlineStaircase = []uint32{0, 1, 1, 6, 6, 7, 7, 9, 9, 8, 8, 4, 4, 2, 2, 0}
)

// BuildSelection computes the selection geometry for a span.
//
// An inactive span, a span entirely outside the viewport, or a span with
// EndRow < StartRow all yield the empty geometry; callers skip both draw
// passes when Empty reports true.
//
// Rows are clipped to the viewport: a span starting above the visible
// area continues from column 0, and a span ending below it extends to the
// full viewport width.
func BuildSelection(span SelectionSpan, m Metrics) SelectionGeometry {
	var g SelectionGeometry
	if !span.Active || span.EndRow < span.StartRow {
		return g
	}
	if span.EndRow < 0 || span.StartRow >= m.Rows {
		return g
	}

	startRow, startCol := span.StartRow, span.StartCol
	if startRow < 0 {
		// Continuation from above the viewport.
		startRow = 0
		startCol = 0
	}
	endRow, endCol := span.EndRow, span.EndCol
	if endRow >= m.Rows {
		// Continuation below the viewport.
		endRow = m.Rows - 1
		endCol = m.Cols
	}

	if span.ColumnMode {
		g.buildColumn(startRow, endRow, startCol, endCol, m)
		return g
	}
	g.buildRange(startRow, endRow, startCol, endCol, m)
	return g
}

// buildColumn fills the geometry for a rectangular block selection:
// four active vertices from (startCol, startRow) to (endCol, endRow+1).
func (g *SelectionGeometry) buildColumn(startRow, endRow, startCol, endCol int, m Metrics) {
	cw, ch := m.CellWidth, m.CellHeight
	x0 := float32(startCol) * cw
	x1 := float32(endCol) * cw
	y0 := float32(startRow) * ch
	y1 := float32(endRow+1) * ch

	g.vertices[0] = SelectionVertex{X: x0, Y: y0, InsetX: +1, InsetY: +1}
	g.vertices[1] = SelectionVertex{X: x1, Y: y0, InsetX: -1, InsetY: +1}
	g.vertices[2] = SelectionVertex{X: x0, Y: y1, InsetX: +1, InsetY: +1}
	g.vertices[3] = SelectionVertex{X: x1, Y: y1, InsetX: -1, InsetY: +1}

	g.outlineLen = copy(g.outline[:], outlineSingle)
}

// buildRange fills the geometry for a text-flow range selection: a
// partial first row, zero or more full middle rows, and a partial last
// row, sharing one 10-vertex control set.
func (g *SelectionGeometry) buildRange(startRow, endRow, startCol, endCol int, m Metrics) {
	cw, ch := m.CellWidth, m.CellHeight

	// The first row extends to the viewport edge unless it is also the
	// last row.
	startRowEndCol := m.Cols
	if startRow == endRow {
		startRowEndCol = endCol
	}
	if n := endRow - startRow - 1; n > 0 {
		g.middleRows = n
	}

	sx := float32(startCol) * cw
	sex := float32(startRowEndCol) * cw
	ex := float32(endCol) * cw
	wx := float32(m.Cols) * cw
	ty := float32(startRow) * ch
	tly := float32(startRow+1) * ch
	by := float32(endRow) * ch
	bly := float32(endRow+1) * ch

	g.vertices[vTopStart] = SelectionVertex{X: sx, Y: ty, InsetX: +1, InsetY: +1}
	g.vertices[vTopEnd] = SelectionVertex{X: sex, Y: ty, InsetX: -1, InsetY: +1}
	g.vertices[vTopStartLow] = SelectionVertex{X: sx, Y: tly, InsetX: +1, InsetY: -1}
	g.vertices[vTopEndLow] = SelectionVertex{X: sex, Y: tly, InsetX: -1, InsetY: -1}
	g.vertices[vLeftEdge] = SelectionVertex{X: 0, Y: tly, InsetX: +1, InsetY: +1}
	g.vertices[vBottomLeft] = SelectionVertex{X: 0, Y: by, InsetX: +1, InsetY: +1}
	g.vertices[vRightStep] = SelectionVertex{X: wx, Y: by, InsetX: -1, InsetY: +1}
	g.vertices[vBottomEnd] = SelectionVertex{X: ex, Y: by, InsetX: -1, InsetY: +1}
	g.vertices[vBottomLow] = SelectionVertex{X: 0, Y: bly, InsetX: +1, InsetY: -1}
	g.vertices[vBottomEndLo] = SelectionVertex{X: ex, Y: bly, InsetX: -1, InsetY: -1}

	switch {
	case endRow == startRow:
		// One partial row: plain rectangle.
		g.outlineLen = copy(g.outline[:], outlineSingle)
	case endRow == startRow+1 && startCol > endCol:
		// Two adjacent partial rows that do not overlap horizontally:
		// two disjoint rectangles, each with its own loop.
		g.outlineLen = copy(g.outline[:], outlineDisjoint)
	default:
		// Staircase perimeter around first row, middle block, last row.
		g.outlineLen = copy(g.outline[:], outlineStaircase)
	}
}
