// Package editor implements the sprite editor's interaction and rendering
// state machine. Hosts feed it input events and call Tick at a fixed rate;
// it draws each frame through a Surface and reports paint edits to a
// GridSink.
//
// An Editor is not safe for concurrent use. Handlers and Tick must be called
// from one goroutine.
package editor

import (
	"errors"
	"log/slog"
	"math"
)

// ErrNoSurface is returned by New when no drawing surface is supplied.
var ErrNoSurface = errors.New("editor: no surface")

const indicatorTicks = 100

// Button is a logical pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// KeyEvent is a key press with the accelerator modifiers that matter here.
type KeyEvent struct {
	Key  rune
	Ctrl bool
	Meta bool
}

func (k KeyEvent) accelerated() bool {
	return k.Ctrl || k.Meta
}

type pointerState struct {
	painting    bool
	paintAnchor Point

	panning   bool
	panAnchor Point

	grabbed    bool
	grabbedID  PanelID
	grabOffset Point
}

// Editor owns all mutable editor state.
type Editor struct {
	surface Surface
	sink    GridSink
	log     *slog.Logger

	width  int
	height int

	grid     PixelGrid
	palette  Palette
	selected uint8

	view      View
	pointer   pointerState
	panels    [2]Panel
	zorder    *ZStack
	indicator int
}

// Option configures an Editor.
type Option func(*Editor)

func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithSink registers the collaborator notified on every grid change.
func WithSink(s GridSink) Option {
	return func(e *Editor) { e.sink = s }
}

func WithPalette(p Palette) Option {
	return func(e *Editor) { e.palette = p }
}

// WithPanelOrigins overrides the initial top-left corners of the panels.
func WithPanelOrigins(tool, palette Point) Option {
	return func(e *Editor) {
		e.panels[ToolPanel].Pos = tool
		e.panels[PalettePanel].Pos = palette
	}
}

// New creates an editor drawing to s. The grid starts all zero.
func New(s Surface, opts ...Option) (*Editor, error) {
	if s == nil {
		return nil, ErrNoSurface
	}
	e := &Editor{
		surface: s,
		log:     slog.New(slog.DiscardHandler),
		palette: DefaultPalette,
		view:    newView(),
		panels: [2]Panel{
			ToolPanel:    {ID: ToolPanel, Pos: Point{X: 20, Y: 20}, Width: toolPanelWidth, Height: toolPanelHeight},
			PalettePanel: {ID: PalettePanel, Pos: Point{X: 20, Y: 120}, Width: palettePanelWidth, Height: palettePanelHeight},
		},
		zorder: NewZStack(ToolPanel, PalettePanel),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.width, e.height = s.Size()
	return e, nil
}

// SpriteRect is where the sprite is drawn this frame, centered and scaled by
// the animated zoom and shifted by the negated animated offset.
func (e *Editor) SpriteRect() Rect {
	size := spriteExtent * e.view.Zoom.Current
	return Rect{
		X: float64(e.width)/2 - size/2 - e.view.OffsetX.Current,
		Y: float64(e.height)/2 - size/2 - e.view.OffsetY.Current,
		W: size,
		H: size,
	}
}

// Screen to grid cell. The result may lie outside the grid.
func (e *Editor) cellAt(p Point) (int, int) {
	r := e.SpriteRect()
	cell := r.W / GridSize
	return int(math.Floor((p.X - r.X) / cell)), int(math.Floor((p.Y - r.Y) / cell))
}

func (e *Editor) paintAt(p Point) {
	x, y := e.cellAt(p)
	e.PaintCell(x, y)
}

// PaintCell sets cell (x, y) to the selected palette index. It reports
// whether (x, y) lies in the grid; cells outside are ignored.
func (e *Editor) PaintCell(x, y int) bool {
	if !inGrid(x, y) {
		return false
	}
	if e.grid.Set(x, y, e.selected) && e.sink != nil {
		e.sink.GridChanged(e.grid)
	}
	return true
}

// SelectPalette makes index the current color. Out of range indices are ignored.
func (e *Editor) SelectPalette(index int) {
	if index < 0 || index >= PaletteSize {
		return
	}
	e.selected = uint8(index)
	e.log.Debug("palette selected", "index", index)
}

// panelAt returns the frontmost panel whose rectangle holds p.
func (e *Editor) panelAt(p Point) (Panel, bool) {
	for _, id := range e.zorder.Order() {
		if pn := e.panels[id]; pn.Rect().Contains(p) {
			return pn, true
		}
	}
	return Panel{}, false
}

// paletteBand maps a point in the palette panel body to a swatch index.
func (e *Editor) paletteBand(p Point) (int, bool) {
	body := e.panels[PalettePanel].Body()
	if !body.Contains(p) {
		return 0, false
	}
	band := int(math.Floor((p.Y - body.Y) / (body.H / PaletteSize)))
	if band < 0 || band >= PaletteSize {
		return 0, false
	}
	return band, true
}

func (e *Editor) raise(id PanelID) {
	e.zorder.Raise(id)
	e.log.Debug("panel raised", "panel", id)
}

// PointerDown starts a paint, panel drag, or palette pick (primary) or a pan
// (secondary). The sprite takes precedence over panels.
func (e *Editor) PointerDown(p Point, b Button) {
	switch b {
	case ButtonPrimary:
		if e.SpriteRect().Contains(p) {
			e.pointer.painting = true
			e.pointer.paintAnchor = p
			e.paintAt(p)
			return
		}
		pn, ok := e.panelAt(p)
		if !ok {
			return
		}
		if pn.TitleBar().Contains(p) {
			e.pointer.grabbed = true
			e.pointer.grabbedID = pn.ID
			e.pointer.grabOffset = Point{X: pn.Pos.X - p.X, Y: pn.Pos.Y - p.Y}
			e.raise(pn.ID)
			return
		}
		if pn.ID == PalettePanel {
			if band, ok := e.paletteBand(p); ok {
				e.SelectPalette(band)
			}
		}
	case ButtonSecondary:
		e.pointer.panning = true
		e.pointer.panAnchor = Point{X: p.X + e.view.OffsetX.Target, Y: p.Y + e.view.OffsetY.Target}
	}
}

// PointerMove pans, drag-paints, or drags the grabbed panel.
func (e *Editor) PointerMove(p Point) {
	switch {
	case e.pointer.panning:
		e.view.OffsetX.Target = e.pointer.panAnchor.X - p.X
		e.view.OffsetY.Target = e.pointer.panAnchor.Y - p.Y
	case e.pointer.painting:
		e.paintAt(p)
	case e.pointer.grabbed:
		e.panels[e.pointer.grabbedID].Pos = Point{X: p.X + e.pointer.grabOffset.X, Y: p.Y + e.pointer.grabOffset.Y}
	}
}

// PointerUp ends the session belonging to b only.
func (e *Editor) PointerUp(p Point, b Button) {
	switch b {
	case ButtonPrimary:
		e.pointer.painting = false
		e.pointer.grabbed = false
	case ButtonSecondary:
		e.pointer.panning = false
	}
}

// PointerLeave drops every held button and grab.
func (e *Editor) PointerLeave() {
	e.pointer.painting = false
	e.pointer.panning = false
	e.pointer.grabbed = false
}

// ContextMenu reports whether the host should suppress its context menu at p.
func (e *Editor) ContextMenu(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(e.width) && p.Y < float64(e.height)
}

// Wheel zooms by deltaY/600; negative deltas zoom in. Zero and non-finite
// deltas are ignored.
func (e *Editor) Wheel(deltaY float64) {
	if deltaY == 0 || math.IsNaN(deltaY) || math.IsInf(deltaY, 0) {
		return
	}
	e.view.adjustZoom(-deltaY / wheelDivisor)
	e.armIndicator()
}

// KeyDown handles the accelerator shortcuts: 0 resets the view, + and -
// step the zoom. It reports whether the key was consumed.
func (e *Editor) KeyDown(k KeyEvent) bool {
	if !k.accelerated() {
		return false
	}
	switch k.Key {
	case '0':
		e.view.reset()
		e.pointer.panAnchor = Point{}
		e.log.Debug("view reset", "zoom", e.view.Zoom.Target)
	case '+', '=':
		e.view.adjustZoom(1)
	case '-', '_':
		e.view.adjustZoom(-1)
	default:
		return false
	}
	e.armIndicator()
	return true
}

// Resize snaps the logical surface size. Drags in progress continue.
func (e *Editor) Resize(width, height int) {
	e.width, e.height = width, height
	e.log.Debug("surface resized", "width", width, "height", height)
}

func (e *Editor) armIndicator() {
	e.indicator = indicatorTicks
}

// Grid returns a copy of the pixel grid.
func (e *Editor) Grid() PixelGrid {
	return e.grid
}

// Selected returns the current palette index.
func (e *Editor) Selected() int {
	return int(e.selected)
}

func (e *Editor) View() View {
	return e.view
}

// Panels returns the panels front first.
func (e *Editor) Panels() []Panel {
	out := make([]Panel, 0, e.zorder.Len())
	for _, id := range e.zorder.Order() {
		out = append(out, e.panels[id])
	}
	return out
}

// Animating reports whether another tick would change the frame.
func (e *Editor) Animating() bool {
	return e.indicator > 0 || !e.view.settled()
}

// ZoomPercent is the indicator text value, the animated zoom truncated to
// a tenth.
func (e *Editor) ZoomPercent() int {
	return int(math.Floor(e.view.Zoom.Current*10)) * 10
}

// IndicatorAlpha is the zoom indicator opacity for the coming tick.
func (e *Editor) IndicatorAlpha() float64 {
	switch {
	case e.indicator <= 0:
		return 0
	case e.indicator <= indicatorFade:
		return float64(e.indicator) / indicatorFade
	}
	return 1
}
