package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the difficulty and history menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Leaving a match with Esc or B returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  bomber menu
  bomber menu --difficulty classic
  bomber menu --db ./history.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadGame()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(tui.SessionOptions{
		Store:      store,
		Config:     cfg,
		Difficulty: preset,
		Runtime:    runtimeConfig(),
		Logger:     logger,
	}); err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
