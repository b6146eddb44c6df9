package config

import (
	"errors"
	"fmt"
)

// ReservedKeys are handled by the game itself and cannot be bound to a
// player.
var ReservedKeys = map[string]bool{
	"p": true, "r": true, "q": true, "b": true, "esc": true, "ctrl+c": true,
}

// Validate checks the configuration for values the game cannot run with.
// All problems are reported together.
func (c BomberConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	r := c.Rules
	if r.PlayerSpeed <= 0 {
		add("rules.player_speed must be positive, got %v", r.PlayerSpeed)
	}
	if r.BombTimer <= 0 {
		add("rules.bomb_timer must be positive, got %v", r.BombTimer)
	}
	if r.ExplosionDuration <= 0 {
		add("rules.explosion_duration must be positive, got %v", r.ExplosionDuration)
	}
	if r.BaseFlameLength < 1 {
		add("rules.base_flame_length must be at least 1, got %d", r.BaseFlameLength)
	}
	if r.BaseBombCount < 1 {
		add("rules.base_bomb_count must be at least 1, got %d", r.BaseBombCount)
	}
	if r.PowerUpSpawnChance < 0 || r.PowerUpSpawnChance > 1 {
		add("rules.powerup_spawn_chance must be within [0, 1], got %v", r.PowerUpSpawnChance)
	}

	if c.Match.RoundsToWin < 1 {
		add("match.rounds_to_win must be at least 1, got %d", c.Match.RoundsToWin)
	}
	if c.Controls.HoldMS < 0 {
		add("controls.hold_ms must not be negative, got %d", c.Controls.HoldMS)
	}
	if c.Render.CellWidth < 1 || c.Render.CellWidth > 4 {
		add("render.cell_width must be within [1, 4], got %d", c.Render.CellWidth)
	}

	seats := []struct {
		name string
		b    Bindings
	}{{"player1", c.Controls.Player1}, {"player2", c.Controls.Player2}}
	owner := map[string]string{}
	for _, seat := range seats {
		groups := map[string][]string{
			"up": seat.b.Up, "down": seat.b.Down, "left": seat.b.Left,
			"right": seat.b.Right, "bomb": seat.b.Bomb,
		}
		for _, action := range []string{"up", "down", "left", "right", "bomb"} {
			if len(groups[action]) == 0 {
				add("controls.%s.%s has no keys", seat.name, action)
			}
		}
		for _, k := range seat.b.All() {
			k = NormalizeKey(k)
			if ReservedKeys[k] {
				add("controls.%s: key %q is reserved for game controls", seat.name, k)
				continue
			}
			if prev, ok := owner[k]; ok && prev != seat.name {
				add("controls: key %q bound to both %s and %s", k, prev, seat.name)
			}
			owner[k] = seat.name
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
