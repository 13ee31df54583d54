package raster

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ha1tch/spritedit/internal/editor"
)

func TestNewRejectsEmptySize(t *testing.T) {
	_, err := New(0, 10)
	require.Error(t, err)
}

func TestFrameRendersBackground(t *testing.T) {
	s, err := New(320, 240)
	require.NoError(t, err)

	e, err := editor.New(s)
	require.NoError(t, err)
	e.Tick()

	w, h := s.Size()
	require.Equal(t, 320, w)
	require.Equal(t, 240, h)

	// The top right corner holds no sprite, panel or indicator.
	r, g, b, a := s.Image().At(w-2, 1).RGBA()
	require.Equal(t, []uint32{45, 45, 45, 255}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestSavePNG(t *testing.T) {
	s, err := New(200, 200)
	require.NoError(t, err)

	e, err := editor.New(s)
	require.NoError(t, err)
	e.SelectPalette(3)
	e.PaintCell(4, 4)
	e.Wheel(-100)
	e.Tick()

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, s.SavePNG(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestSavePNGRefusesFailedFrame(t *testing.T) {
	s, err := New(100, 100)
	require.NoError(t, err)

	failure := errors.New("fill failed")
	s.record(failure)
	s.record(errors.New("later failure"))
	require.ErrorIs(t, s.Err(), failure)

	path := filepath.Join(t.TempDir(), "frame.png")
	require.ErrorIs(t, s.SavePNG(path), failure)
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// A new frame starts clean.
	e, err := editor.New(s)
	require.NoError(t, err)
	e.Tick()
	require.NoError(t, s.Err())
	require.NoError(t, s.SavePNG(path))
}
