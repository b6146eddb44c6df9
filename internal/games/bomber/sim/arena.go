package sim

import "fmt"

// Tile is one arena cell. PowerUp is NoPowerUp when the cell holds none.
type Tile struct {
	Type    TileType
	PowerUp PowerUpType
}

// Arena is the fixed-size tile grid.
type Arena struct {
	tiles [Height][Width]Tile
}

// carved are forced to Floor so both spawn corners have room to move.
var carved = [...]Point{
	{1, 1}, {1, 2}, {2, 1},
	{Width - 2, Height - 2}, {Width - 2, Height - 3}, {Width - 3, Height - 2},
}

// NewArena returns an arena with the default layout.
func NewArena() *Arena {
	a := &Arena{}
	a.GenerateDefaultLayout()
	return a
}

// GenerateDefaultLayout rebuilds the grid: solid border and pillars at
// even/even coordinates, destructible blocks elsewhere, spawn corners
// carved to floor. The result is always the same.
func (a *Arena) GenerateDefaultLayout() {
	for y := range Height {
		for x := range Width {
			t := Destructible
			if x == 0 || y == 0 || x == Width-1 || y == Height-1 || (x%2 == 0 && y%2 == 0) {
				t = Solid
			}
			a.tiles[y][x] = Tile{Type: t}
		}
	}
	for _, p := range carved {
		a.tiles[p.Y][p.X] = Tile{Type: Floor}
	}
}

// Reset regenerates the layout. Used between rounds only.
func (a *Arena) Reset() {
	a.GenerateDefaultLayout()
}

// Width returns the number of columns.
func (a *Arena) Width() int { return Width }

// Height returns the number of rows.
func (a *Arena) Height() int { return Height }

// InBounds reports whether (x, y) is a valid tile.
func (a *Arena) InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

func (a *Arena) mustBeInBounds(x, y int) {
	if !a.InBounds(x, y) {
		panic(fmt.Sprintf("sim: tile (%d, %d) out of range %dx%d", x, y, Width, Height))
	}
}

// Tile returns the tile at (x, y). It panics when the coordinate is
// outside the grid.
func (a *Arena) Tile(x, y int) Tile {
	a.mustBeInBounds(x, y)
	return a.tiles[y][x]
}

// SetTile replaces the tile at (x, y). It panics when the coordinate is
// outside the grid.
func (a *Arena) SetTile(x, y int, t Tile) {
	a.mustBeInBounds(x, y)
	a.tiles[y][x] = t
}

// IsPassable reports whether (x, y) is in bounds and floor. Bombs are not
// considered here.
func (a *Arena) IsPassable(x, y int) bool {
	return a.InBounds(x, y) && a.tiles[y][x].Type == Floor
}

// DestroyTile turns a destructible block into floor, keeping any power-up
// already recorded on it. It returns the previous type and true, or
// false when the tile was not destructible.
func (a *Arena) DestroyTile(x, y int) (TileType, bool) {
	a.mustBeInBounds(x, y)
	t := &a.tiles[y][x]
	if t.Type != Destructible {
		return 0, false
	}
	prev := t.Type
	t.Type = Floor
	return prev, true
}

// PlacePowerUp puts a power-up on a floor tile that has none.
func (a *Arena) PlacePowerUp(x, y int, p PowerUpType) bool {
	a.mustBeInBounds(x, y)
	t := &a.tiles[y][x]
	if t.Type != Floor || t.PowerUp != NoPowerUp || p == NoPowerUp {
		return false
	}
	t.PowerUp = p
	return true
}

// CollectPowerUp removes and returns the power-up at (x, y), if any.
func (a *Arena) CollectPowerUp(x, y int) (PowerUpType, bool) {
	a.mustBeInBounds(x, y)
	t := &a.tiles[y][x]
	if t.PowerUp == NoPowerUp {
		return NoPowerUp, false
	}
	p := t.PowerUp
	t.PowerUp = NoPowerUp
	return p, true
}

// ForEach calls fn for every tile in row-major order.
func (a *Arena) ForEach(fn func(x, y int, t Tile)) {
	for y := range Height {
		for x := range Width {
			fn(x, y, a.tiles[y][x])
		}
	}
}
