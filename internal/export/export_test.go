package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ha1tch/spritedit/internal/editor"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		name  string
		paint func(g *editor.PixelGrid)
		want  [editor.GridSize]uint16
	}{
		{"blank", func(g *editor.PixelGrid) {}, [editor.GridSize]uint16{}},
		{"left pixel color 1", func(g *editor.PixelGrid) { g.Set(0, 0, 1) }, [editor.GridSize]uint16{0x0080}},
		{"left pixel color 2", func(g *editor.PixelGrid) { g.Set(0, 0, 2) }, [editor.GridSize]uint16{0x8000}},
		{"right pixel color 3", func(g *editor.PixelGrid) { g.Set(7, 0, 3) }, [editor.GridSize]uint16{0x0101}},
		{"second row", func(g *editor.PixelGrid) { g.Set(2, 1, 1) }, [editor.GridSize]uint16{0, 0x0020}},
		{"solid row", func(g *editor.PixelGrid) {
			for x := 0; x < editor.GridSize; x++ {
				g.Set(x, 7, 3)
			}
		}, [editor.GridSize]uint16{7: 0xFFFF}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g editor.PixelGrid
			tc.paint(&g)
			require.Equal(t, tc.want, Encode(g))
		})
	}
}

func TestFormat(t *testing.T) {
	words := [editor.GridSize]uint16{0x0080, 0xFFFF, 0x1A2B}
	require.Equal(t, "0x0080 0xFFFF 0x1A2B 0x0000 0x0000 0x0000 0x0000 0x0000", Format(words))
}

func TestHexDumpWritesLine(t *testing.T) {
	var buf bytes.Buffer
	dump := &HexDump{Out: &buf}

	var g editor.PixelGrid
	g.Set(0, 0, 1)
	dump.GridChanged(g)

	require.Equal(t, "0x0080 0x0000 0x0000 0x0000 0x0000 0x0000 0x0000 0x0000\n", buf.String())
}
