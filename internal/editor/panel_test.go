package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZStackRaise(t *testing.T) {
	z := NewZStack(ToolPanel, PalettePanel)
	require.Equal(t, ToolPanel, z.Order()[0])

	z.Raise(PalettePanel)
	require.Equal(t, []PanelID{PalettePanel, ToolPanel}, z.Order())

	z.Raise(PalettePanel)
	require.Equal(t, []PanelID{PalettePanel, ToolPanel}, z.Order())

	z.Raise(PanelID(42))
	require.Equal(t, []PanelID{PalettePanel, ToolPanel}, z.Order())

	z.Raise(ToolPanel)
	require.Equal(t, ToolPanel, z.Order()[0])
	require.Equal(t, 2, z.Len())
}

func TestZStackOrderIsACopy(t *testing.T) {
	z := NewZStack(ToolPanel, PalettePanel)
	order := z.Order()
	order[0] = PalettePanel
	require.Equal(t, ToolPanel, z.Order()[0])
}

func TestPanelRegions(t *testing.T) {
	p := Panel{ID: PalettePanel, Pos: Point{X: 10, Y: 10}, Width: 80, Height: 180}
	require.True(t, p.TitleBar().Contains(Point{X: 10, Y: 10}))
	require.False(t, p.TitleBar().Contains(Point{X: 10, Y: 30}))
	require.True(t, p.Body().Contains(Point{X: 10, Y: 30}))
	require.False(t, p.Rect().Contains(Point{X: 90, Y: 30}))
	require.Equal(t, "PALETTE", p.ID.String())
}

func TestGridIndicesRowMajor(t *testing.T) {
	var g PixelGrid
	require.True(t, g.Set(1, 0, 2))
	require.True(t, g.Set(0, 1, 3))
	require.False(t, g.Set(0, 1, 3))
	require.False(t, g.Set(8, 0, 1))
	require.False(t, g.Set(0, 0, PaletteSize))

	idx := g.Indices()
	require.Len(t, idx, GridSize*GridSize)
	require.Equal(t, uint8(2), idx[1])
	require.Equal(t, uint8(3), idx[GridSize])
	require.Equal(t, uint8(0), g.At(-1, 3))
}
