package main

import (
	"io"
	"os"

	"github.com/pterm/pterm"

	"termjack/internal/config"
	"termjack/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Fatal.Printfln("Failed to load config: %v", err)
	}

	// The board owns the terminal while a session runs, so logs go to
	// LOG_FILE or nowhere.
	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			pterm.Fatal.Printfln("Failed to open log file: %v", err)
		}
		defer f.Close()
		w = f
	}
	logger := cfg.Logger(w)

	app := tui.New(logger)
	logger.Info("session started")
	if err := app.Run(); err != nil {
		logger.Error("session failed", "error", err)
		pterm.Error.Printfln("%v", err)
		os.Exit(1)
	}

	pterm.Println()
	pterm.Info.Println(app.Tally().String())
	logger.Info("session ended", "hands", app.Tally().Games)
}
