package editor

const (
	titleBarHeight = 20

	toolPanelWidth  = 120
	toolPanelHeight = 80

	palettePanelWidth  = 80
	palettePanelHeight = titleBarHeight + PaletteSize*40
)

// PanelID names one of the floating panels.
type PanelID int

const (
	ToolPanel PanelID = iota
	PalettePanel
)

func (id PanelID) String() string {
	switch id {
	case ToolPanel:
		return "TOOLS"
	case PalettePanel:
		return "PALETTE"
	}
	return "UNKNOWN"
}

// Panel is a draggable box overlaid on the canvas.
type Panel struct {
	ID     PanelID
	Pos    Point
	Width  float64
	Height float64
}

// Rect covers the whole panel, title bar included.
func (p Panel) Rect() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}
}

func (p Panel) TitleBar() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: titleBarHeight}
}

// Body is the panel below its title bar.
func (p Panel) Body() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y + titleBarHeight, W: p.Width, H: p.Height - titleBarHeight}
}

// ZStack orders panels front to back. Index 0 is frontmost.
type ZStack struct {
	order []PanelID
}

func NewZStack(ids ...PanelID) *ZStack {
	return &ZStack{order: append([]PanelID(nil), ids...)}
}

// Raise moves id to the front. Unknown ids are ignored.
func (z *ZStack) Raise(id PanelID) {
	idx := -1
	for i, cur := range z.order {
		if cur == id {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return
	}
	copy(z.order[1:idx+1], z.order[:idx])
	z.order[0] = id
}

// Order returns a copy of the stack, front first.
func (z *ZStack) Order() []PanelID {
	return append([]PanelID(nil), z.order...)
}

func (z *ZStack) Len() int {
	return len(z.order)
}
