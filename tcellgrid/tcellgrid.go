// Package tcellgrid populates termgeom grids from gdamore/tcell screens.
//
// It bridges the two color models: tcell styles carry full Color values
// (default, 256-palette, or 24-bit RGB) while the geometry compiler works
// on compact cell color codes. Palette colors pass through by index, RGB
// colors are quantized to the nearest xterm-256 entry, and reverse-video
// cells map to the inverted-default sentinel so the renderer resolves
// them against the current foreground.
package tcellgrid

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/termgeom"
)

// CellColorOf maps the background of a tcell style to a cell color code.
func CellColorOf(style tcell.Style) termgeom.CellColor {
	_, bg, attrs := style.Decompose()
	if attrs&tcell.AttrReverse != 0 {
		return termgeom.ColorInverted
	}
	return colorCode(bg)
}

// colorCode maps one tcell color to a cell color code.
func colorCode(c tcell.Color) termgeom.CellColor {
	if !c.Valid() {
		return termgeom.ColorDefault
	}
	if c&tcell.ColorIsRGB == 0 {
		if idx := int(c &^ tcell.ColorValid); idx < termgeom.PaletteSize {
			return termgeom.CellColor(idx)
		}
		return termgeom.ColorDefault
	}
	r, g, b := c.RGB()
	return nearestPalette(uint8(r), uint8(g), uint8(b))
}

// nearestPalette quantizes an RGB color to the closest entry of the
// standard xterm table: the 6x6x6 cube or the grayscale ramp, whichever
// is nearer. The 16 ANSI entries are skipped because themes commonly
// remap them.
func nearestPalette(r, g, b uint8) termgeom.CellColor {
	cr, cg, cb := cubeIndex(r), cubeIndex(g), cubeIndex(b)
	cube := 16 + 36*cr + 6*cg + cb
	cubeDist := dist(r, uint8(cr*51)) + dist(g, uint8(cg*51)) + dist(b, uint8(cb*51))

	gray := grayIndex(r, g, b)
	level := uint8((gray-232)*10 + 8)
	grayDist := dist(r, level) + dist(g, level) + dist(b, level)

	if grayDist < cubeDist {
		return termgeom.CellColor(gray)
	}
	return termgeom.CellColor(cube)
}

// cubeIndex maps an 8-bit channel to the nearest 0-5 cube level
// (levels sit at multiples of 51).
func cubeIndex(v uint8) int {
	return (int(v) + 25) / 51
}

// grayIndex maps an RGB color to the nearest grayscale ramp index
// (232-255, levels 8, 18, ... 238).
func grayIndex(r, g, b uint8) int {
	luma := (int(r) + int(g) + int(b)) / 3
	idx := 232 + (luma-8+5)/10
	if idx < 232 {
		idx = 232
	}
	if idx > 255 {
		idx = 255
	}
	return idx
}

func dist(a, b uint8) int {
	d := int(a) - int(b)
	return d * d
}

// Snapshot copies the background colors of every visible cell on the
// screen into the grid, resizing the grid to the screen dimensions
// first. The screen is only read; Snapshot never draws.
func Snapshot(screen tcell.Screen, grid *termgeom.Grid) {
	cols, rows := screen.Size()
	grid.Resize(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			_, _, style, _ := screen.GetContent(x, y)
			grid.Set(x, y, CellColorOf(style))
		}
	}
}
