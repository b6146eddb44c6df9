package sim

import (
	"fmt"
	"slices"
)

// Power-ups live both on their tile and in s.powerUps. spawnPowerUp and
// consumePowerUp are the only code that changes either.

func (s *State) spawnPowerUp(t Point, kind PowerUpType) bool {
	if !s.arena.PlacePowerUp(t.X, t.Y, kind) {
		return false
	}
	s.powerUps = append(s.powerUps, PowerUp{Tile: t, Type: kind})
	return true
}

func (s *State) consumePowerUp(t Point) (PowerUpType, bool) {
	kind, ok := s.arena.CollectPowerUp(t.X, t.Y)
	if !ok {
		return NoPowerUp, false
	}
	s.powerUps = slices.DeleteFunc(s.powerUps, func(p PowerUp) bool {
		return p.Tile == t
	})
	return kind, true
}

func (s *State) collectPowerUps() {
	for i := range s.players {
		p := &s.players[i]
		if !p.Alive {
			continue
		}
		kind, ok := s.consumePowerUp(p.Tile())
		if !ok {
			continue
		}
		switch kind {
		case BombCapacity:
			p.BombCapacity++
		case FlameLength:
			p.FlameLength++
		}
	}
}

// checkPowerUpInvariant returns an error when the tracked list and the
// tile grid disagree.
func (s *State) checkPowerUpInvariant() error {
	onTiles := 0
	s.arena.ForEach(func(x, y int, t Tile) {
		if t.PowerUp != NoPowerUp {
			onTiles++
		}
	})
	if onTiles != len(s.powerUps) {
		return fmt.Errorf("sim: %d power-ups on tiles, %d tracked", onTiles, len(s.powerUps))
	}
	seen := make(map[Point]bool, len(s.powerUps))
	for _, p := range s.powerUps {
		if seen[p.Tile] {
			return fmt.Errorf("sim: power-up at %v tracked twice", p.Tile)
		}
		seen[p.Tile] = true
		if got := s.arena.Tile(p.Tile.X, p.Tile.Y); got.PowerUp != p.Type || got.Type != Floor {
			return fmt.Errorf("sim: tracked %s at %v but tile holds %s on %s", p.Type, p.Tile, got.PowerUp, got.Type)
		}
	}
	return nil
}
