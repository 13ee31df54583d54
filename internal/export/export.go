// Package export turns sprite grids into GameBoy 2bpp tile words.
package export

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ha1tch/spritedit/internal/editor"
)

// Encode packs each grid row into one word. The low byte holds bit 0 of
// every pixel and the high byte bit 1, leftmost pixel in the top bit.
func Encode(g editor.PixelGrid) [editor.GridSize]uint16 {
	var words [editor.GridSize]uint16
	indices := g.Indices()
	for y := 0; y < editor.GridSize; y++ {
		var lo, hi uint16
		row := indices[y*editor.GridSize : (y+1)*editor.GridSize]
		for x, idx := range row {
			c := uint16(idx)
			shift := uint(editor.GridSize - 1 - x)
			lo |= (c & 0x01) << shift
			hi |= ((c & 0x02) >> 1) << shift
		}
		words[y] = hi<<8 | lo
	}
	return words
}

// Format renders words as space separated 0xHHHH literals.
func Format(words [editor.GridSize]uint16) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("0x%04X", w)
	}
	return strings.Join(parts, " ")
}

// HexDump logs every grid it receives and, when Out is set, writes one dump
// line per grid to it.
type HexDump struct {
	Log *slog.Logger
	Out io.Writer
}

func (h *HexDump) GridChanged(g editor.PixelGrid) {
	line := Format(Encode(g))
	if h.Log != nil {
		h.Log.Debug("sprite bytes", "words", line)
	}
	if h.Out != nil {
		fmt.Fprintln(h.Out, line)
	}
}
