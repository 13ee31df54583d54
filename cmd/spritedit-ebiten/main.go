package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ha1tch/spritedit/internal/config"
	"github.com/ha1tch/spritedit/internal/ebitenhost"
	"github.com/ha1tch/spritedit/internal/export"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := cfg.Logger()

	if err := ebitenhost.Run(cfg, log, &export.HexDump{Log: log}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
