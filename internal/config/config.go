// Package config loads spritedit settings from defaults, an optional TOML
// file and SPRITEDIT_ environment variables.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ha1tch/spritedit/internal/editor"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Window WindowConfig
	Editor EditorConfig
	Log    LogConfig
}

// WindowConfig holds the host window settings.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

type EditorConfig struct {
	TickHz  int `mapstructure:"tick_hz"`
	Palette []string
}

type LogConfig struct {
	Level string
}

// Load reads configuration from path, or from SPRITEDIT_CONFIG or the user
// config directory when path is empty. A missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "Sprite Editor")
	v.SetDefault("editor.tick_hz", 100)
	v.SetDefault("editor.palette", []string{"#E0F8D0", "#88C070", "#346856", "#081820"})
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SPRITEDIT_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "spritedit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SPRITEDIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks sizes, rates, palette and log level.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Editor.TickHz <= 0 {
		return fmt.Errorf("%w: tick_hz %d", ErrInvalid, c.Editor.TickHz)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// Palette parses the configured colors.
func (c Config) Palette() (editor.Palette, error) {
	var p editor.Palette
	if len(c.Editor.Palette) != editor.PaletteSize {
		return p, fmt.Errorf("%w: palette needs %d colors, got %d", ErrInvalid, editor.PaletteSize, len(c.Editor.Palette))
	}
	for i, s := range c.Editor.Palette {
		col, err := parseHex(s)
		if err != nil {
			return p, fmt.Errorf("%w: palette[%d]: %v", ErrInvalid, i, err)
		}
		p[i] = col
	}
	return p, nil
}

// LogLevel maps log.level onto slog levels.
func (c Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return l, nil
}

// Logger builds a text logger on stderr at the configured level.
func (c Config) Logger() *slog.Logger {
	level, err := c.LogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func parseHex(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("want #RRGGBB, got %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
