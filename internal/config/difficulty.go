package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyClassic DifficultyPreset = "classic"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyClassic}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return DifficultyNormal, nil
	}
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or classic)", s)
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Slow fuses, frequent power-ups"
	case DifficultyHard:
		return "Short fuses, rare power-ups"
	case DifficultyClassic:
		return "Strict rules, a bomb blocks its owner"
	default:
		return "Rules from your config file"
	}
}

// ApplyBomberPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyBomberPreset(cfg *BomberConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.BombTimer = 3.0
		cfg.Rules.PowerUpSpawnChance = 0.45
	case DifficultyHard:
		cfg.Rules.BombTimer = 2.0
		cfg.Rules.PowerUpSpawnChance = 0.15
		cfg.Rules.PlayerSpeed = 5.0
	case DifficultyClassic:
		defaults := DefaultBomberConfig().Rules
		defaults.WalkOffBombs = false
		cfg.Rules = defaults
	}
}
