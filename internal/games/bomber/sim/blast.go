package sim

import "slices"

// tickBombs counts every bomb down and detonates the expired ones in
// placement order. Bombs already set off by a chain earlier in the same
// pass are skipped.
func (s *State) tickBombs(dt float64) {
	pending := slices.Clone(s.bombs)
	for _, b := range pending {
		if !slices.Contains(s.bombs, b) {
			continue
		}
		b.Timer -= dt
		if b.Timer <= 0 {
			s.detonate(b)
		}
	}
}

// detonate explodes b and every bomb its blast reaches, directly or
// through other bombs, before returning. Caught bombs are queued in
// placement order and processed first in, first out.
func (s *State) detonate(b *Bomb) {
	queue := []*Bomb{b}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !s.removeBomb(cur) {
			continue
		}
		if owner := s.player(cur.Owner); owner != nil {
			owner.ActiveBombs = max(0, owner.ActiveBombs-1)
		}

		tiles := s.blastTiles(cur)
		s.explosions = append(s.explosions, Explosion{Tiles: tiles, Timer: s.rules.ExplosionDuration})
		s.applyBlast(tiles)

		for _, other := range s.bombs {
			if slices.Contains(tiles, other.Tile) && !slices.Contains(queue, other) {
				other.Timer = 0
				queue = append(queue, other)
			}
		}
	}
}

func (s *State) removeBomb(b *Bomb) bool {
	i := slices.Index(s.bombs, b)
	if i < 0 {
		return false
	}
	s.bombs = slices.Delete(s.bombs, i, i+1)
	return true
}

// blastTiles returns the blast set of b: its own tile plus up to
// FlameLength tiles in each direction. A ray stops before the border or
// a solid tile and stops after the first destructible block.
func (s *State) blastTiles(b *Bomb) []Point {
	tiles := []Point{b.Tile}
	for _, d := range directions {
		for step := 1; step <= b.FlameLength; step++ {
			t := b.Tile.Add(d, step)
			if !s.arena.InBounds(t.X, t.Y) {
				break
			}
			kind := s.arena.Tile(t.X, t.Y).Type
			if kind == Solid {
				break
			}
			tiles = append(tiles, t)
			if kind == Destructible {
				break
			}
		}
	}
	return tiles
}

// applyBlast destroys blocks in the blast set, rolls a power-up drop for
// each destroyed block and kills living players standing in it.
func (s *State) applyBlast(tiles []Point) {
	for _, t := range tiles {
		if _, destroyed := s.arena.DestroyTile(t.X, t.Y); destroyed {
			if s.rng.Float64() < s.rules.PowerUpSpawnChance {
				kind := powerUpKinds[s.rng.Intn(len(powerUpKinds))]
				s.spawnPowerUp(t, kind)
			}
		}
		for i := range s.players {
			p := &s.players[i]
			if p.Alive && p.Tile() == t {
				p.Alive = false
			}
		}
	}
}
