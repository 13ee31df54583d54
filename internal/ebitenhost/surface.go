package ebitenhost

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ha1tch/spritedit/internal/editor"
)

// surface draws into the screen image handed to Draw. Calls outside Draw
// are dropped.
type surface struct {
	target        *ebiten.Image
	width, height int
	source        *text.GoTextFaceSource
	faces         map[float64]*text.GoTextFace
}

func newSurface(width, height int) (*surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: load font: %w", err)
	}
	return &surface{
		width:  width,
		height: height,
		source: src,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

func (s *surface) Size() (int, int) {
	return s.width, s.height
}

func (s *surface) Clear(c color.Color) {
	if s.target == nil {
		return
	}
	s.target.Fill(c)
}

func (s *surface) FillRect(r editor.Rect, c color.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *surface) StrokeLine(from, to editor.Point, c color.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeLine(s.target, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1, c, false)
}

func (s *surface) Text(str string, at editor.Point, size float64, align editor.Align, c color.Color) {
	if s.target == nil {
		return
	}
	face := s.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)
	if align == editor.AlignEnd {
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(s.target, str, face, op)
}

func (s *surface) face(size float64) *text.GoTextFace {
	f, ok := s.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: s.source, Size: size}
		s.faces[size] = f
	}
	return f
}
