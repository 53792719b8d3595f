// Package termgeom compiles terminal cell grids into GPU-ready geometry.
//
// # Overview
//
// termgeom is the CPU side of a grid-based terminal renderer in the GoGPU
// ecosystem. Each frame it turns two inputs into plain geometry data:
//
//   - a per-cell background-color grid, run-length merged into a minimal
//     list of axis-aligned rectangles (one instanced draw call), and
//   - a selection span, encoded as a fixed 10-vertex control set that
//     serves both a filled polygon and its 1-unit-inset outline.
//
// The package produces data only. Uploading buffers and issuing draw calls
// is the responsibility of a rendering backend; the gpu subpackage provides
// a ready-made upload layer for gogpu/wgpu, and the tcellgrid subpackage
// populates grids from a live tcell screen.
//
// # Quick Start
//
//	grid := termgeom.NewGrid(80, 24)
//	grid.Set(3, 0, 1) // ANSI red background at column 3, row 0
//
//	m := termgeom.Metrics{CellWidth: 10, CellHeight: 20, Cols: 80, Rows: 24}
//	batcher := termgeom.NewBackgroundBatcher(m, termgeom.NewPalette())
//	batcher.UpdateBackgrounds(grid)
//	// batcher.Buffer() now holds the clear rect plus one rect per color run.
//
//	sel := termgeom.BuildSelection(termgeom.SelectionSpan{
//	    Active:   true,
//	    StartRow: 2, StartCol: 1,
//	    EndRow:   5, EndCol: 10,
//	}, m)
//
// # Update Model
//
// UpdateBackgrounds and BuildSelection are idempotent full recomputations,
// invoked whenever content or selection changes. Backing storage is
// allocated once, grows geometrically, and never shrinks, so a steady-state
// frame performs no allocation.
//
// # Coordinate System
//
// Pixel coordinates with origin (0,0) at the top-left; X increases right,
// Y increases down. Grid cells are addressed as (column, row).
package termgeom

// Version is the current version of the library.
const Version = "0.2.0"
