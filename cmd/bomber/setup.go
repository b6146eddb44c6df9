package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bomber/internal/applog"
	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

// loadGame resolves the config file and the difficulty preset.
// The preset is returned unapplied so menus can offer the others.
func loadGame() (config.BomberConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BomberConfig{}, "", err
	}
	cfg, err := config.LoadBomber(flagConfig)
	if err != nil {
		return config.BomberConfig{}, "", err
	}
	return cfg, preset, nil
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger builds the logger for a command. Interactive commands log to
// --log-file or nowhere, since the alt screen owns the terminal.
func newLogger(interactive bool) (*log.Logger, func() error, error) {
	return applog.New(applog.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Prefix: "bomber",
		Quiet:  interactive,
	})
}

// openStore opens the history database. Play continues without history
// when it cannot be opened.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return nil
	}
	return store
}
