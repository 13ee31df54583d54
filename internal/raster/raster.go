// Package raster is a headless editor surface backed by the gg software
// rasterizer.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ha1tch/spritedit/internal/editor"
)

// Surface draws editor frames into an in-memory image.
type Surface struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[float64]text.Face

	// err is the first fill or stroke failure since the last Clear.
	err error
}

// New allocates a width x height surface.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: load font: %w", err)
	}
	return &Surface{
		dc:     gg.NewContext(width, height),
		source: source,
		faces:  make(map[float64]text.Face),
	}, nil
}

func (s *Surface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *Surface) Clear(c color.Color) {
	s.err = nil
	s.dc.ClearWithColor(gg.FromColor(c))
}

func (s *Surface) FillRect(r editor.Rect, c color.Color) {
	s.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	s.dc.SetColor(c)
	s.record(s.dc.Fill())
}

func (s *Surface) StrokeLine(from, to editor.Point, c color.Color) {
	s.dc.SetLineWidth(1)
	s.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	s.dc.SetColor(c)
	s.record(s.dc.Stroke())
}

func (s *Surface) Text(str string, at editor.Point, size float64, align editor.Align, c color.Color) {
	s.dc.SetFont(s.face(size))
	s.dc.SetColor(c)
	ax := 0.0
	if align == editor.AlignEnd {
		ax = 1
	}
	s.dc.DrawStringAnchored(str, at.X, at.Y, ax, 0)
}

func (s *Surface) face(size float64) text.Face {
	f, ok := s.faces[size]
	if !ok {
		f = s.source.Face(size)
		s.faces[size] = f
	}
	return f
}

func (s *Surface) record(err error) {
	if err != nil && s.err == nil {
		s.err = fmt.Errorf("raster: draw: %w", err)
	}
}

// Err reports the first drawing failure in the current frame.
func (s *Surface) Err() error {
	return s.err
}

// Image returns the current frame.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the current frame to path. Frames with a drawing failure
// are not written.
func (s *Surface) SavePNG(path string) error {
	if s.err != nil {
		return s.err
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}
