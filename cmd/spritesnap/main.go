// Command spritesnap paints a sprite without opening a window, renders one
// settled frame to PNG and prints the sprite's tile words.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/ha1tch/spritedit/internal/config"
	"github.com/ha1tch/spritedit/internal/editor"
	"github.com/ha1tch/spritedit/internal/export"
	"github.com/ha1tch/spritedit/internal/raster"
)

// settleLimit bounds the ticks spent waiting for the view to come to rest.
const settleLimit = 1000

var errBadCell = errors.New("bad cell")

type cell struct {
	x, y, color int
}

// parseCells reads "x,y,c;x,y,c" lists.
func parseCells(s string) ([]cell, error) {
	var cells []cell
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %q", errBadCell, part)
		}
		var v [3]int
		for i, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", errBadCell, part, err)
			}
			v[i] = n
		}
		if v[0] < 0 || v[0] >= editor.GridSize || v[1] < 0 || v[1] >= editor.GridSize {
			return nil, fmt.Errorf("%w: %q outside the grid", errBadCell, part)
		}
		if v[2] < 0 || v[2] >= editor.PaletteSize {
			return nil, fmt.Errorf("%w: %q color out of range", errBadCell, part)
		}
		cells = append(cells, cell{x: v[0], y: v[1], color: v[2]})
	}
	return cells, nil
}

type options struct {
	out   string
	cells []cell
	zoom  float64
}

func run(cfg config.Config, opts options, log *slog.Logger, stdout io.Writer) error {
	palette, err := cfg.Palette()
	if err != nil {
		return err
	}
	s, err := raster.New(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	ed, err := editor.New(s, editor.WithLogger(log), editor.WithPalette(palette))
	if err != nil {
		return err
	}

	for _, c := range opts.cells {
		ed.SelectPalette(c.color)
		ed.PaintCell(c.x, c.y)
	}
	if opts.zoom != 0 {
		// Browser wheel convention: negative deltas zoom in.
		ed.Wheel(-(opts.zoom - ed.View().Zoom.Target) * 600)
	}

	ed.Tick()
	for i := 0; ed.Animating() && i < settleLimit; i++ {
		ed.Tick()
	}

	if err := s.SavePNG(opts.out); err != nil {
		return err
	}
	log.Info("snapshot written", "path", opts.out, "zoom", ed.ZoomPercent())

	_, err = fmt.Fprintln(stdout, export.Format(export.Encode(ed.Grid())))
	return err
}

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file.")
	out := flag.String("o", "sprite.png", "Output PNG path.")
	cellList := flag.String("cells", "", "Cells to paint as x,y,c;x,y,c.")
	zoom := flag.Float64("zoom", 0, "Target zoom before settling (1-10, 0 keeps the default).")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := cfg.Logger()
	gg.SetLogger(log)

	cells, err := parseCells(*cellList)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg, options{out: *out, cells: cells, zoom: *zoom}, log, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
