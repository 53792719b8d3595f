package termgeom

import "testing"

var selMetrics = Metrics{CellWidth: 10, CellHeight: 20, Cols: 8, Rows: 6}

func activeOutline(g SelectionGeometry) []uint32 {
	out := g.Outline()
	return out[:g.OutlineLen()]
}

func TestBuildSelection_Inactive(t *testing.T) {
	g := BuildSelection(SelectionSpan{Active: false, StartRow: 1, EndRow: 3}, selMetrics)
	if !g.Empty() {
		t.Fatal("Empty() = false for inactive span")
	}
	for i, v := range g.Vertices() {
		if v != (SelectionVertex{}) {
			t.Errorf("vertex %d = %+v, want zero", i, v)
		}
	}
	for i, idx := range g.Outline() {
		if idx != 0 {
			t.Errorf("outline[%d] = %d, want 0", i, idx)
		}
	}
}

func TestBuildSelection_EmptySpans(t *testing.T) {
	tests := []struct {
		name string
		span SelectionSpan
	}{
		{"end before start", SelectionSpan{Active: true, StartRow: 4, EndRow: 2}},
		{"above viewport", SelectionSpan{Active: true, StartRow: -5, EndRow: -2}},
		{"below viewport", SelectionSpan{Active: true, StartRow: 6, EndRow: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if g := BuildSelection(tt.span, selMetrics); !g.Empty() {
				t.Errorf("Empty() = false for %+v", tt.span)
			}
		})
	}
}

func TestBuildSelection_SingleRow(t *testing.T) {
	// startRow=endRow=2, cols 1..4.
	g := BuildSelection(SelectionSpan{
		Active:   true,
		StartRow: 2, StartCol: 1,
		EndRow: 2, EndCol: 4,
	}, selMetrics)

	wantOutline := []uint32{0, 1, 1, 3, 3, 2, 2, 0}
	got := activeOutline(g)
	if len(got) != len(wantOutline) {
		t.Fatalf("OutlineLen() = %d, want %d", len(got), len(wantOutline))
	}
	for i := range wantOutline {
		if got[i] != wantOutline[i] {
			t.Fatalf("outline = %v, want %v", got, wantOutline)
		}
	}
	// Padding stays zero.
	full := g.Outline()
	for i := g.OutlineLen(); i < OutlineIndexCount; i++ {
		if full[i] != 0 {
			t.Errorf("outline[%d] = %d, want zero padding", i, full[i])
		}
	}

	v := g.Vertices()
	if v[0].X != 10 || v[0].Y != 40 {
		t.Errorf("vertex 0 = %+v, want (10, 40)", v[0])
	}
	if v[1].X != 40 || v[1].Y != 40 {
		t.Errorf("vertex 1 = %+v, want (40, 40) (single row ends at endCol)", v[1])
	}
	if v[3].X != 40 || v[3].Y != 60 {
		t.Errorf("vertex 3 = %+v, want (40, 60)", v[3])
	}
	if g.MiddleRows() != 0 {
		t.Errorf("MiddleRows() = %d, want 0", g.MiddleRows())
	}
}

func TestBuildSelection_TwoRowsDisjoint(t *testing.T) {
	// First row starts right of where the second row ends: two
	// independent rectangles, two closed loops, no padding.
	g := BuildSelection(SelectionSpan{
		Active:   true,
		StartRow: 1, StartCol: 5,
		EndRow: 2, EndCol: 2,
	}, selMetrics)

	want := []uint32{0, 1, 1, 3, 3, 2, 2, 0, 5, 7, 7, 9, 9, 8, 8, 5}
	got := activeOutline(g)
	if len(got) != OutlineIndexCount {
		t.Fatalf("OutlineLen() = %d, want %d", len(got), OutlineIndexCount)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("outline = %v, want %v", got, want)
		}
	}

	v := g.Vertices()
	// First row extends to the viewport edge.
	if v[1].X != 80 {
		t.Errorf("vertex 1 x = %v, want 80 (viewport edge)", v[1].X)
	}
	// Second rectangle spans columns 0..2 on row 2.
	if v[5].X != 0 || v[5].Y != 40 {
		t.Errorf("vertex 5 = %+v, want (0, 40)", v[5])
	}
	if v[9].X != 20 || v[9].Y != 60 {
		t.Errorf("vertex 9 = %+v, want (20, 60)", v[9])
	}
}

func TestBuildSelection_Staircase(t *testing.T) {
	// Four rows selected: two middle rows, full staircase perimeter.
	g := BuildSelection(SelectionSpan{
		Active:   true,
		StartRow: 1, StartCol: 3,
		EndRow: 4, EndCol: 5,
	}, selMetrics)

	want := []uint32{0, 1, 1, 6, 6, 7, 7, 9, 9, 8, 8, 4, 4, 2, 2, 0}
	got := activeOutline(g)
	if len(got) != OutlineIndexCount {
		t.Fatalf("OutlineLen() = %d, want %d", len(got), OutlineIndexCount)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("outline = %v, want %v", got, want)
		}
	}
	if g.MiddleRows() != 2 {
		t.Errorf("MiddleRows() = %d, want 2", g.MiddleRows())
	}

	v := g.Vertices()
	checks := []struct {
		idx  int
		x, y float32
	}{
		{0, 30, 20},  // (startCol, startRow)
		{1, 80, 20},  // viewport edge
		{2, 30, 40},  // below first row start
		{4, 0, 40},   // left-edge connector
		{6, 80, 80},  // full-width right step
		{7, 50, 80},  // (endCol, endRow)
		{8, 0, 100},  // bottom-left
		{9, 50, 100}, // bottom-right at endCol
	}
	for _, c := range checks {
		if v[c.idx].X != c.x || v[c.idx].Y != c.y {
			t.Errorf("vertex %d = (%v, %v), want (%v, %v)", c.idx, v[c.idx].X, v[c.idx].Y, c.x, c.y)
		}
	}
}

func TestBuildSelection_TwoRowsOverlapping(t *testing.T) {
	// Adjacent rows that overlap horizontally use the staircase loop,
	// not two disjoint loops.
	g := BuildSelection(SelectionSpan{
		Active:   true,
		StartRow: 1, StartCol: 2,
		EndRow: 2, EndCol: 5,
	}, selMetrics)

	want := []uint32{0, 1, 1, 6, 6, 7, 7, 9, 9, 8, 8, 4, 4, 2, 2, 0}
	got := activeOutline(g)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("outline = %v, want %v", got, want)
		}
	}
}

func TestBuildSelection_ColumnMode(t *testing.T) {
	g := BuildSelection(SelectionSpan{
		Active:   true,
		StartRow: 1, StartCol: 2,
		EndRow: 3, EndCol: 5,
		ColumnMode: true,
	}, selMetrics)

	wantOutline := []uint32{0, 1, 1, 3, 3, 2, 2, 0}
	got := activeOutline(g)
	if len(got) != len(wantOutline) {
		t.Fatalf("OutlineLen() = %d, want %d", len(got), len(wantOutline))
	}
	for i := range wantOutline {
		if got[i] != wantOutline[i] {
			t.Fatalf("outline = %v, want %v", got, wantOutline)
		}
	}

	v := g.Vertices()
	wantVerts := []SelectionVertex{
		{X: 20, Y: 20, InsetX: +1, InsetY: +1},
		{X: 50, Y: 20, InsetX: -1, InsetY: +1},
		{X: 20, Y: 80, InsetX: +1, InsetY: +1},
		{X: 50, Y: 80, InsetX: -1, InsetY: +1},
	}
	for i, w := range wantVerts {
		if v[i] != w {
			t.Errorf("vertex %d = %+v, want %+v", i, v[i], w)
		}
	}
}

func TestBuildSelection_ViewportClipping(t *testing.T) {
	t.Run("continues above", func(t *testing.T) {
		g := BuildSelection(SelectionSpan{
			Active:   true,
			StartRow: -2, StartCol: 4,
			EndRow: 1, EndCol: 3,
		}, selMetrics)
		v := g.Vertices()
		// Start column is forced to 0 for a continuation from above.
		if v[0].X != 0 || v[0].Y != 0 {
			t.Errorf("vertex 0 = %+v, want (0, 0)", v[0])
		}
	})

	t.Run("continues below", func(t *testing.T) {
		g := BuildSelection(SelectionSpan{
			Active:   true,
			StartRow: 1, StartCol: 2,
			EndRow: 9, EndCol: 3,
		}, selMetrics)
		v := g.Vertices()
		// End column extends to the viewport width on the last row.
		if v[9].X != 80 || v[9].Y != 120 {
			t.Errorf("vertex 9 = %+v, want (80, 120)", v[9])
		}
	})
}

// TestBuildSelection_OutlineClosure verifies that every outline forms one
// or two closed loops: each segment starts where the previous one ended,
// and each loop returns to its first vertex.
func TestBuildSelection_OutlineClosure(t *testing.T) {
	spans := []struct {
		name string
		span SelectionSpan
	}{
		{"single row", SelectionSpan{Active: true, StartRow: 2, StartCol: 1, EndRow: 2, EndCol: 4}},
		{"disjoint rows", SelectionSpan{Active: true, StartRow: 1, StartCol: 5, EndRow: 2, EndCol: 2}},
		{"staircase", SelectionSpan{Active: true, StartRow: 0, StartCol: 3, EndRow: 5, EndCol: 5}},
		{"column block", SelectionSpan{Active: true, StartRow: 0, StartCol: 1, EndRow: 4, EndCol: 6, ColumnMode: true}},
	}

	for _, tt := range spans {
		t.Run(tt.name, func(t *testing.T) {
			g := BuildSelection(tt.span, selMetrics)
			out := activeOutline(g)
			if len(out)%2 != 0 {
				t.Fatalf("active outline length %d is odd", len(out))
			}
			loopStart := out[0]
			for i := 2; i < len(out); i += 2 {
				if out[i-1] == loopStart {
					// Previous loop closed; a new one starts here.
					loopStart = out[i]
					continue
				}
				if out[i] != out[i-1] {
					t.Fatalf("segment %d starts at %d, previous ended at %d", i/2, out[i], out[i-1])
				}
			}
			if out[len(out)-1] != loopStart {
				t.Errorf("last segment ends at %d, want loop start %d", out[len(out)-1], loopStart)
			}
		})
	}
}
