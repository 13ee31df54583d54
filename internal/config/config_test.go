package config

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ha1tch/spritedit/internal/editor"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SPRITEDIT_CONFIG", "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 1280, c.Window.Width)
	require.Equal(t, 800, c.Window.Height)
	require.Equal(t, 100, c.Editor.TickHz)

	p, err := c.Palette()
	require.NoError(t, err)
	require.Equal(t, editor.DefaultPalette, p)

	level, err := c.LogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, level)
}

func TestLoadFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "spritedit.toml")
	data := `
[window]
width = 640
height = 480

[editor]
tick_hz = 50
palette = ["#000000", "#555555", "#AAAAAA", "#FFFFFF"]

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 640, c.Window.Width)
	require.Equal(t, 50, c.Editor.TickHz)
	require.Equal(t, "Sprite Editor", c.Window.Title)

	p, err := c.Palette()
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}, p[1])

	level, err := c.LogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)
}

func TestEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SPRITEDIT_WINDOW_HEIGHT", "600")

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 600, c.Window.Height)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	good := Config{
		Window: WindowConfig{Width: 10, Height: 10},
		Editor: EditorConfig{TickHz: 100, Palette: []string{"#000000", "#111111", "#222222", "#333333"}},
		Log:    LogConfig{Level: "info"},
	}
	require.NoError(t, good.Validate())

	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative tick", func(c *Config) { c.Editor.TickHz = -1 }},
		{"short palette", func(c *Config) { c.Editor.Palette = c.Editor.Palette[:3] }},
		{"bad hex", func(c *Config) { c.Editor.Palette = []string{"#000000", "#111111", "#22222", "#333333"} }},
		{"not hex", func(c *Config) { c.Editor.Palette = []string{"#000000", "#111111", "#zz2222", "#333333"} }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := good
			c.Editor.Palette = append([]string(nil), good.Editor.Palette...)
			tc.mutate(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}
