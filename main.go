package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/spritedit/internal/config"
	"github.com/ha1tch/spritedit/internal/editor"
	"github.com/ha1tch/spritedit/internal/export"
	"github.com/ha1tch/spritedit/internal/input"
)

// App couples the raylib window to the editor
type App struct {
	editor     *editor.Editor
	dispatcher *input.Dispatcher
	log        *slog.Logger
	secondary  input.Chord
}

// Initialize application
func NewApp(cfg config.Config, log *slog.Logger) (*App, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	ed, err := editor.New(rlSurface{},
		editor.WithLogger(log),
		editor.WithPalette(palette),
		editor.WithSink(&export.HexDump{Log: log}),
	)
	if err != nil {
		return nil, err
	}
	return &App{
		editor:     ed,
		dispatcher: input.NewDispatcher(ed),
		log:        log,
	}, nil
}

// Update polls raylib input and forwards it to the editor
func (app *App) Update() {
	app.dispatcher.Dispatch(app.poll())
}

func (app *App) poll() input.Frame {
	mousePos := rl.GetMousePosition()
	f := input.Frame{
		Pos:    editor.Point{X: float64(mousePos.X), Y: float64(mousePos.Y)},
		Inside: rl.IsCursorOnScreen(),
		WheelY: -float64(rl.GetMouseWheelMove()) * input.WheelNotch,
	}

	if rl.IsWindowResized() {
		f.Resized = true
		f.Width, f.Height = rl.GetScreenWidth(), rl.GetScreenHeight()
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		f.Pressed = append(f.Pressed, editor.ButtonPrimary)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		f.Released = append(f.Released, editor.ButtonPrimary)
	}

	// Right and middle both pan, as in the paint tools.
	var pressed, released int
	for _, b := range []rl.MouseButton{rl.MouseRightButton, rl.MouseMiddleButton} {
		if rl.IsMouseButtonPressed(b) {
			pressed++
		}
		if rl.IsMouseButtonReleased(b) {
			released++
		}
	}
	down, up := app.secondary.Update(pressed, released)
	if down {
		f.Pressed = append(f.Pressed, editor.ButtonSecondary)
	}
	if up {
		f.Released = append(f.Released, editor.ButtonSecondary)
	}

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	meta := rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if r, ok := keyRune(key); ok {
			f.Keys = append(f.Keys, editor.KeyEvent{Key: r, Ctrl: ctrl, Meta: meta})
		}
	}
	return f
}

func keyRune(key int32) (rune, bool) {
	switch key {
	case rl.KeyZero, rl.KeyKp0:
		return '0', true
	case rl.KeyEqual:
		return '=', true
	case rl.KeyKpAdd:
		return '+', true
	case rl.KeyMinus, rl.KeyKpSubtract:
		return '-', true
	}
	return 0, false
}

// Draw application
func (app *App) Draw() {
	rl.BeginDrawing()
	app.editor.Tick()
	rl.EndDrawing()
}

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := cfg.Logger()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Editor.TickHz))

	app, err := NewApp(cfg, log)
	if err != nil {
		rl.CloseWindow()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Info("editor started", "width", cfg.Window.Width, "height", cfg.Window.Height, "tick_hz", cfg.Editor.TickHz)

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}

	rl.CloseWindow()
}
