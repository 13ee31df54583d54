package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ha1tch/spritedit/internal/config"
)

func TestParseCells(t *testing.T) {
	cells, err := parseCells("2,3,1; 0,0,3;")
	require.NoError(t, err)
	require.Equal(t, []cell{{x: 2, y: 3, color: 1}, {x: 0, y: 0, color: 3}}, cells)

	cells, err = parseCells("")
	require.NoError(t, err)
	require.Empty(t, cells)

	for _, bad := range []string{"1,2", "a,2,1", "8,0,1", "0,-1,1", "0,0,4"} {
		_, err := parseCells(bad)
		require.ErrorIs(t, err, errBadCell, bad)
	}
}

func TestRunWritesSnapshotAndWords(t *testing.T) {
	cfg := config.Config{
		Window: config.WindowConfig{Width: 320, Height: 240},
		Editor: config.EditorConfig{TickHz: 100, Palette: []string{"#E0F8D0", "#88C070", "#346856", "#081820"}},
		Log:    config.LogConfig{Level: "info"},
	}
	out := filepath.Join(t.TempDir(), "snap.png")
	var stdout bytes.Buffer

	err := run(cfg, options{out: out, cells: []cell{{x: 0, y: 0, color: 1}}, zoom: 2}, slog.New(slog.DiscardHandler), &stdout)
	require.NoError(t, err)
	require.Equal(t, "0x0080 0x0000 0x0000 0x0000 0x0000 0x0000 0x0000 0x0000\n", stdout.String())

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}
