package input

import (
	"image/color"

	"github.com/ha1tch/spritedit/internal/editor"
)

type nullSurface struct{ w, h int }

func (n *nullSurface) Size() (int, int) { return n.w, n.h }
func (n *nullSurface) Clear(color.Color) {}
func (n *nullSurface) FillRect(editor.Rect, color.Color) {}
func (n *nullSurface) StrokeLine(editor.Point, editor.Point, color.Color) {}
func (n *nullSurface) Text(string, editor.Point, float64, editor.Align, color.Color) {}
