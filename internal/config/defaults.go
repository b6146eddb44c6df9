package config

import (
	_ "embed"
)

//go:embed defaults/bomber.yaml
var defaultBomberYAML []byte

// DefaultBomberConfig returns the default bomber configuration.
func DefaultBomberConfig() BomberConfig {
	return BomberConfig{
		Rules: RulesConfig{
			PlayerSpeed:        4.0,
			BombTimer:          2.5,
			ExplosionDuration:  0.5,
			BaseFlameLength:    2,
			BaseBombCount:      1,
			PowerUpSpawnChance: 0.3,
			WalkOffBombs:       true,
		},
		Match: MatchConfig{
			RoundsToWin: 3,
		},
		Controls: ControlsConfig{
			HoldMS: 160,
			Player1: Bindings{
				Up:    []string{"w"},
				Down:  []string{"s"},
				Left:  []string{"a"},
				Right: []string{"d"},
				Bomb:  []string{"space"},
			},
			Player2: Bindings{
				Up:    []string{"up"},
				Down:  []string{"down"},
				Left:  []string{"left"},
				Right: []string{"right"},
				Bomb:  []string{"enter"},
			},
		},
		Render: RenderConfig{
			CellWidth: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBomberYAML
}
