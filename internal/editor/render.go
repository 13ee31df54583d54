package editor

import (
	"fmt"
	"image/color"
)

const (
	indicatorFade     = 20
	indicatorFontSize = 20
	indicatorMarginX  = 40
	indicatorMarginY  = 30

	titleFontSize = 10
	labelFontSize = 8

	extenderLength = 24
	extenderDepth  = 6
	extenderGap    = 6

	swatchInset = 4
)

var (
	colorBackground = color.NRGBA{R: 45, G: 45, B: 45, A: 255}
	colorSpriteBase = color.NRGBA{R: 180, G: 180, B: 180, A: 77}
	colorGridLine   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorExtender   = color.NRGBA{R: 150, G: 150, B: 150, A: 255}

	colorPanelBody   = color.NRGBA{R: 50, G: 50, B: 50, A: 255}
	colorTitleFront  = color.NRGBA{R: 80, G: 80, B: 120, A: 255}
	colorTitleRear   = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
	colorPanelBorder = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	colorSelected    = color.NRGBA{R: 100, G: 100, B: 150, A: 255}
	colorText        = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorLabel       = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
)

// Tick advances the animation one step and draws a full frame.
func (e *Editor) Tick() {
	e.view.step()

	e.surface.Clear(colorBackground)
	sprite := e.SpriteRect()
	e.drawSprite(sprite)
	e.drawExtenders(sprite)

	// Back to front so the frontmost panel lands on top.
	order := e.zorder.Order()
	for i := len(order) - 1; i >= 0; i-- {
		e.drawPanel(e.panels[order[i]], i == 0)
	}

	if e.indicator > 0 {
		e.drawZoomIndicator()
		e.indicator--
	}
}

func (e *Editor) drawSprite(r Rect) {
	s := e.surface
	s.FillRect(r, colorSpriteBase)

	cell := r.W / GridSize
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			s.FillRect(Rect{
				X: r.X + cell*float64(x),
				Y: r.Y + cell*float64(y),
				W: cell,
				H: cell,
			}, e.palette[e.grid[x][y]])
		}
	}

	for i := 0; i <= GridSize; i++ {
		off := cell * float64(i)
		s.StrokeLine(Point{X: r.X + off, Y: r.Y}, Point{X: r.X + off, Y: r.Y + r.H}, colorGridLine)
		s.StrokeLine(Point{X: r.X, Y: r.Y + off}, Point{X: r.X + r.W, Y: r.Y + off}, colorGridLine)
	}
}

// Extender marks sit just outside the midpoint of each sprite edge.
func (e *Editor) drawExtenders(r Rect) {
	c := r.Center()
	marks := [4]Rect{
		{X: c.X - extenderLength/2, Y: r.Y - extenderGap - extenderDepth, W: extenderLength, H: extenderDepth},
		{X: c.X - extenderLength/2, Y: r.Y + r.H + extenderGap, W: extenderLength, H: extenderDepth},
		{X: r.X - extenderGap - extenderDepth, Y: c.Y - extenderLength/2, W: extenderDepth, H: extenderLength},
		{X: r.X + r.W + extenderGap, Y: c.Y - extenderLength/2, W: extenderDepth, H: extenderLength},
	}
	for _, m := range marks {
		e.surface.FillRect(m, colorExtender)
	}
}

func (e *Editor) drawPanel(p Panel, front bool) {
	s := e.surface
	s.FillRect(p.Rect(), colorPanelBody)

	title := colorTitleRear
	if front {
		title = colorTitleFront
	}
	s.FillRect(p.TitleBar(), title)
	s.Text(p.ID.String(), Point{X: p.Pos.X + 6, Y: p.Pos.Y + 14}, titleFontSize, AlignStart, colorText)

	switch p.ID {
	case ToolPanel:
		e.drawToolBody(p.Body())
	case PalettePanel:
		e.drawPaletteBody(p.Body())
	}

	strokeRect(s, p.Rect(), colorPanelBorder)
}

// Only the pixel pen exists, so the tool box shows it permanently selected.
func (e *Editor) drawToolBody(body Rect) {
	btn := Rect{X: body.X + 10, Y: body.Y + 10, W: 36, H: 36}
	e.surface.FillRect(btn, colorSelected)
	strokeRect(e.surface, btn, colorPanelBorder)
	e.surface.Text("P", Point{X: btn.X + btn.W/2 - 3, Y: btn.Y + btn.H/2 + 4}, titleFontSize, AlignStart, colorText)
	e.surface.Text("PIXEL", Point{X: btn.X + btn.W + 8, Y: btn.Y + btn.H/2 + 3}, labelFontSize, AlignStart, colorLabel)
}

func (e *Editor) drawPaletteBody(body Rect) {
	band := body.H / PaletteSize
	for i, c := range e.palette {
		r := Rect{
			X: body.X + swatchInset,
			Y: body.Y + band*float64(i) + swatchInset,
			W: body.W - 2*swatchInset,
			H: band - 2*swatchInset,
		}
		e.surface.FillRect(r, c)
		if i == int(e.selected) {
			strokeRect(e.surface, r, colorText)
		}
	}
}

func (e *Editor) drawZoomIndicator() {
	c := colorText
	c.A = uint8(e.IndicatorAlpha() * 255)
	at := Point{X: float64(e.width - indicatorMarginX), Y: float64(e.height - indicatorMarginY)}
	e.surface.Text(fmt.Sprintf("%d%%", e.ZoomPercent()), at, indicatorFontSize, AlignEnd, c)
}

func strokeRect(s Surface, r Rect, c color.Color) {
	tl := Point{X: r.X, Y: r.Y}
	tr := Point{X: r.X + r.W, Y: r.Y}
	br := Point{X: r.X + r.W, Y: r.Y + r.H}
	bl := Point{X: r.X, Y: r.Y + r.H}
	s.StrokeLine(tl, tr, c)
	s.StrokeLine(tr, br, c)
	s.StrokeLine(br, bl, c)
	s.StrokeLine(bl, tl, c)
}
