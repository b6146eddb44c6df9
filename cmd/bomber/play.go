package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a match",
	Long: `Start a two-player match right away.

Controls (defaults, see 'bomber config'):
  Player 1   W/A/S/D move, Space bomb
  Player 2   Arrow keys move, Enter bomb
  P          Pause
  R          Next round (after a round) / new match (after a match)
  Esc/B/Q    Quit

Difficulty options:
  easy     - Slow fuses, frequent power-ups
  normal   - Rules from your config file
  hard     - Short fuses, rare power-ups, faster players
  classic  - Strict rules, a bomb blocks its owner

Examples:
  bomber play
  bomber play --difficulty hard
  bomber play --seed 42 --config ./my-bomber.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadGame()
	if err != nil {
		return err
	}
	config.ApplyBomberPreset(&cfg, preset)

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting match", "difficulty", preset, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(tui.GameOptions{
		Config:     cfg,
		Difficulty: preset,
		Runtime:    runtimeConfig(),
		Saver:      tui.SaverFor(store),
		Logger:     logger,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
