package sim

import "cmp"

// movePlayer applies one tick of movement. X is resolved before Y and
// each axis is kept only when every tile from the current one to the
// candidate is open, so a player blocked on one axis still slides along
// the other and a long tick cannot carry anyone over a pillar or a bomb.
func (s *State) movePlayer(p *Player, in Intent, dt float64) {
	if !in.Moving() {
		return
	}
	p.Direction = Vec2{X: in.MoveX, Y: in.MoveY}

	step := p.Speed * dt
	target := Vec2{
		X: p.Position.X + in.MoveX*step,
		Y: p.Position.Y + in.MoveY*step,
	}

	if s.pathOpen(p.Tile(), tileOf(Vec2{X: target.X, Y: p.Position.Y})) {
		p.Position.X = target.X
	}
	if s.pathOpen(p.Tile(), tileOf(Vec2{X: p.Position.X, Y: target.Y})) {
		p.Position.Y = target.Y
	}
}

// pathOpen reports whether a player on from may reach to along one axis.
// A move that stays on from only needs from itself to be open.
func (s *State) pathOpen(from, to Point) bool {
	if from == to {
		return s.tileOpen(to, from)
	}
	dx, dy := cmp.Compare(to.X, from.X), cmp.Compare(to.Y, from.Y)
	for t := from; t != to; {
		t = Point{X: t.X + dx, Y: t.Y + dy}
		if !s.tileOpen(t, from) {
			return false
		}
	}
	return true
}

// tileOpen reports whether a player standing on from may enter t:
// in bounds, floor and free of bombs. With WalkOffBombs the player's own
// tile stays open even when a bomb sits on it.
func (s *State) tileOpen(t, from Point) bool {
	if !s.arena.IsPassable(t.X, t.Y) {
		return false
	}
	if s.bombAt(t) != nil {
		return s.rules.WalkOffBombs && t == from
	}
	return true
}
