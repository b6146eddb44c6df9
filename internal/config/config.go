// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for the bomber arena.
package config

// BomberConfig contains all configuration for a bomber match.
type BomberConfig struct {
	Rules    RulesConfig    `yaml:"rules"`
	Match    MatchConfig    `yaml:"match"`
	Controls ControlsConfig `yaml:"controls"`
	Render   RenderConfig   `yaml:"render"`
}

// RulesConfig defines the simulation constants.
type RulesConfig struct {
	PlayerSpeed        float64 `yaml:"player_speed"`       // tiles per second
	BombTimer          float64 `yaml:"bomb_timer"`         // seconds
	ExplosionDuration  float64 `yaml:"explosion_duration"` // seconds
	BaseFlameLength    int     `yaml:"base_flame_length"`
	BaseBombCount      int     `yaml:"base_bomb_count"`
	PowerUpSpawnChance float64 `yaml:"powerup_spawn_chance"`
	WalkOffBombs       bool    `yaml:"walk_off_bombs"`
}

// MatchConfig defines how a match is won.
type MatchConfig struct {
	RoundsToWin int `yaml:"rounds_to_win"`
}

// ControlsConfig maps keys to each seat.
type ControlsConfig struct {
	// HoldMS is how long a movement key counts as held after the terminal
	// last reported it. Terminals send repeats, never releases.
	HoldMS  int      `yaml:"hold_ms"`
	Player1 Bindings `yaml:"player1"`
	Player2 Bindings `yaml:"player2"`
}

// Bindings lists the keys for one player's actions, using Bubble Tea key
// names ("w", "up", "enter"). "space" is accepted for the space bar.
type Bindings struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Bomb  []string `yaml:"bomb"`
}

// All returns every key in the bindings.
func (b Bindings) All() []string {
	var keys []string
	for _, group := range [][]string{b.Up, b.Down, b.Left, b.Right, b.Bomb} {
		keys = append(keys, group...)
	}
	return keys
}

// RenderConfig controls terminal drawing.
type RenderConfig struct {
	CellWidth int `yaml:"cell_width"` // terminal columns per arena tile
}

// NormalizeKey maps config key names to the strings Bubble Tea reports.
func NormalizeKey(k string) string {
	if k == "space" {
		return " "
	}
	return k
}
