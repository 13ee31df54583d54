package editor

import "image/color"

// Align selects which end of a text run sits on the anchor point.
type Align int

const (
	AlignStart Align = iota
	AlignEnd
)

// Surface is the drawing target supplied by the host. Text anchors are
// baseline positions.
type Surface interface {
	Size() (width, height int)
	Clear(c color.Color)
	FillRect(r Rect, c color.Color)
	StrokeLine(from, to Point, c color.Color)
	Text(s string, at Point, size float64, align Align, c color.Color)
}

// GridSink receives a copy of the grid after every paint that changed it.
type GridSink interface {
	GridChanged(g PixelGrid)
}
