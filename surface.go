package main

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/spritedit/internal/editor"
)

// rlSurface draws editor frames into the current raylib frame.
type rlSurface struct{}

func (rlSurface) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (rlSurface) Clear(c color.Color) {
	rl.ClearBackground(toRL(c))
}

func (rlSurface) FillRect(r editor.Rect, c color.Color) {
	rl.DrawRectangleRec(rl.Rectangle{X: float32(r.X), Y: float32(r.Y), Width: float32(r.W), Height: float32(r.H)}, toRL(c))
}

func (rlSurface) StrokeLine(from, to editor.Point, c color.Color) {
	rl.DrawLineV(rl.Vector2{X: float32(from.X), Y: float32(from.Y)}, rl.Vector2{X: float32(to.X), Y: float32(to.Y)}, toRL(c))
}

// raylib positions text by its top-left corner, so lift it off the baseline.
func (rlSurface) Text(s string, at editor.Point, size float64, align editor.Align, c color.Color) {
	fontSize := int32(size)
	x := int32(at.X)
	if align == editor.AlignEnd {
		x -= rl.MeasureText(s, fontSize)
	}
	rl.DrawText(s, x, int32(at.Y)-fontSize, fontSize, toRL(c))
}

func toRL(c color.Color) rl.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
