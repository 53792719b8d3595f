package termgeom

// CellColor is the background color code of one grid cell.
//
// Values 0-255 index the 256-color palette. Two sentinel codes sit above
// the palette range: ColorDefault marks a cell that needs no background
// rectangle at all (the viewport clear rectangle already paints it), and
// ColorInverted marks a reverse-video cell whose background resolves to
// the palette's foreground color.
type CellColor uint16

const (
	// ColorDefault is the terminal default background. Cells with this
	// code emit no rectangle.
	ColorDefault CellColor = 256

	// ColorInverted resolves to the current foreground color
	// (reverse-video cells).
	ColorInverted CellColor = 257

	// PaletteSize is the number of indexed palette entries.
	PaletteSize = 256
)

// IsDefault reports whether the code is the default background sentinel.
func (c CellColor) IsDefault() bool { return c == ColorDefault }

// Palette resolves cell color codes to RGBA values.
//
// A Palette holds the full 256-entry indexed table plus the default
// foreground and background colors. All 256 entries are always populated:
// NewPalette seeds the standard xterm table (16 ANSI colors, 6x6x6 color
// cube, 24-step grayscale ramp) and SetColor overrides individual entries.
type Palette struct {
	colors     [PaletteSize]RGBA
	foreground RGBA
	background RGBA
}

// ansiRGB holds the standard 16 ANSI colors (VGA values, ANSI order).
var ansiRGB = [16][3]uint8{
	{0, 0, 0},       // black
	{170, 0, 0},     // red
	{0, 170, 0},     // green
	{170, 85, 0},    // yellow/brown
	{0, 0, 170},     // blue
	{170, 0, 170},   // magenta
	{0, 170, 170},   // cyan
	{170, 170, 170}, // white/silver
	{85, 85, 85},    // bright black
	{255, 85, 85},   // bright red
	{85, 255, 85},   // bright green
	{255, 255, 85},  // bright yellow
	{85, 85, 255},   // bright blue
	{255, 85, 255},  // bright magenta
	{85, 255, 255},  // bright cyan
	{255, 255, 255}, // bright white
}

// paletteRGB returns the standard xterm color for an index in [0, 255].
func paletteRGB(idx int) RGBA {
	switch {
	case idx < 16:
		c := ansiRGB[idx]
		return RGB8(c[0], c[1], c[2])
	case idx < 232:
		// 6x6x6 color cube.
		idx -= 16
		b := idx % 6
		g := (idx / 6) % 6
		r := idx / 36
		return RGB8(uint8(r*51), uint8(g*51), uint8(b*51))
	default:
		// Grayscale ramp.
		gray := uint8((idx-232)*10 + 8)
		return RGB8(gray, gray, gray)
	}
}

// NewPalette creates a palette seeded with the standard xterm 256-color
// table and the common dark-theme defaults (light gray on near-black).
func NewPalette() *Palette {
	p := &Palette{
		foreground: Hex("#d4d4d4"),
		background: Hex("#1e1e1e"),
	}
	for i := range p.colors {
		p.colors[i] = paletteRGB(i)
	}
	return p
}

// Color returns the palette entry for an index in [0, PaletteSize).
func (p *Palette) Color(idx int) RGBA { return p.colors[idx] }

// SetColor overrides a palette entry. Indices outside [0, PaletteSize)
// are ignored.
func (p *Palette) SetColor(idx int, c RGBA) {
	if idx < 0 || idx >= PaletteSize {
		return
	}
	p.colors[idx] = c
}

// Foreground returns the default foreground color.
func (p *Palette) Foreground() RGBA { return p.foreground }

// SetForeground sets the default foreground color.
func (p *Palette) SetForeground(c RGBA) { p.foreground = c }

// Background returns the default background color.
func (p *Palette) Background() RGBA { return p.background }

// SetBackground sets the default background color.
func (p *Palette) SetBackground(c RGBA) { p.background = c }

// Resolve maps a cell color code to RGBA. ColorInverted resolves to the
// foreground color and indexed codes to their palette entry. ColorDefault
// resolves to the background color, though callers emitting background
// rectangles never resolve it (default cells emit no rectangle).
func (p *Palette) Resolve(code CellColor) RGBA {
	switch {
	case code == ColorInverted:
		return p.foreground
	case code == ColorDefault:
		return p.background
	case int(code) < PaletteSize:
		return p.colors[code]
	default:
		return p.background
	}
}
