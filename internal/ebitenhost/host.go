// Package ebitenhost runs the editor in an ebiten window.
package ebitenhost

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ha1tch/spritedit/internal/config"
	"github.com/ha1tch/spritedit/internal/editor"
	"github.com/ha1tch/spritedit/internal/input"
)

// Run opens the window and blocks until it closes.
func Run(cfg config.Config, log *slog.Logger, sink editor.GridSink) error {
	g, err := newGame(cfg, log, sink)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Editor.TickHz)
	log.Info("editor started", "host", "ebiten", "tick_hz", cfg.Editor.TickHz)
	return ebiten.RunGame(g)
}

type game struct {
	editor     *editor.Editor
	surface    *surface
	dispatcher *input.Dispatcher
	secondary  input.Chord

	reported [2]int
}

func newGame(cfg config.Config, log *slog.Logger, sink editor.GridSink) (*game, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	s, err := newSurface(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return nil, err
	}
	ed, err := editor.New(s,
		editor.WithLogger(log),
		editor.WithPalette(palette),
		editor.WithSink(sink),
	)
	if err != nil {
		return nil, err
	}
	return &game{
		editor:     ed,
		surface:    s,
		dispatcher: input.NewDispatcher(ed),
		reported:   [2]int{cfg.Window.Width, cfg.Window.Height},
	}, nil
}

func (g *game) Update() error {
	g.dispatcher.Dispatch(g.poll())
	return nil
}

func (g *game) poll() input.Frame {
	x, y := ebiten.CursorPosition()
	w, h := g.surface.Size()
	_, wheelY := ebiten.Wheel()
	f := input.Frame{
		Pos:    editor.Point{X: float64(x), Y: float64(y)},
		Inside: x >= 0 && y >= 0 && x < w && y < h,
		WheelY: -wheelY * input.WheelNotch,
	}

	if g.reported != [2]int{w, h} {
		g.reported = [2]int{w, h}
		f.Resized = true
		f.Width, f.Height = w, h
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.Pressed = append(f.Pressed, editor.ButtonPrimary)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		f.Released = append(f.Released, editor.ButtonPrimary)
	}

	var pressed, released int
	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		if inpututil.IsMouseButtonJustPressed(b) {
			pressed++
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			released++
		}
	}
	down, up := g.secondary.Update(pressed, released)
	if down {
		f.Pressed = append(f.Pressed, editor.ButtonSecondary)
	}
	if up {
		f.Released = append(f.Released, editor.ButtonSecondary)
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	meta := ebiten.IsKeyPressed(ebiten.KeyMeta)
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if r, ok := keyRune(k); ok {
			f.Keys = append(f.Keys, editor.KeyEvent{Key: r, Ctrl: ctrl, Meta: meta})
		}
	}
	return f
}

func keyRune(k ebiten.Key) (rune, bool) {
	switch k {
	case ebiten.Key0, ebiten.KeyNumpad0:
		return '0', true
	case ebiten.KeyEqual:
		return '=', true
	case ebiten.KeyNumpadAdd:
		return '+', true
	case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
		return '-', true
	}
	return 0, false
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surface.target = screen
	g.editor.Tick()
	g.surface.target = nil
}

// Layout keeps one logical pixel per screen pixel; the new size reaches the
// editor on the next Update.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surface.width, g.surface.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
