package editor

import "image/color"

const (
	GridSize     = 8
	PaletteSize  = 4
	spriteExtent = 100
)

// PixelGrid holds one palette index per cell, addressed [x][y].
type PixelGrid [GridSize][GridSize]uint8

// At returns the palette index at (x, y). Out of range cells read as 0.
func (g PixelGrid) At(x, y int) uint8 {
	if !inGrid(x, y) {
		return 0
	}
	return g[x][y]
}

// Set stores index at (x, y) and reports whether the cell changed.
// Cells outside the grid and indices outside the palette are ignored.
func (g *PixelGrid) Set(x, y int, index uint8) bool {
	if !inGrid(x, y) || index >= PaletteSize {
		return false
	}
	if g[x][y] == index {
		return false
	}
	g[x][y] = index
	return true
}

// Indices returns the grid row by row, top row first.
func (g PixelGrid) Indices() []uint8 {
	out := make([]uint8, 0, GridSize*GridSize)
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			out = append(out, g[x][y])
		}
	}
	return out
}

func inGrid(x, y int) bool {
	return x >= 0 && x < GridSize && y >= 0 && y < GridSize
}

// Palette maps palette indices to colors.
type Palette [PaletteSize]color.NRGBA

// DefaultPalette is the four-shade DMG green ramp, lightest first.
var DefaultPalette = Palette{
	{R: 0xE0, G: 0xF8, B: 0xD0, A: 0xFF},
	{R: 0x88, G: 0xC0, B: 0x70, A: 0xFF},
	{R: 0x34, G: 0x68, B: 0x56, A: 0xFF},
	{R: 0x08, G: 0x18, B: 0x20, A: 0xFF},
}
