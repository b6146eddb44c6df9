package core

import "fmt"

// PlayerID identifies one of the two seats at the terminal.
// The zero value means "no player" (for example, a drawn round).
type PlayerID int

const (
	NoPlayer PlayerID = iota
	Player1
	Player2
)

// Players lists the seats in the order the simulation processes them.
var Players = [...]PlayerID{Player1, Player2}

// String returns "P1", "P2" or "none".
func (p PlayerID) String() string {
	switch p {
	case Player1, Player2:
		return fmt.Sprintf("P%d", int(p))
	default:
		return "none"
	}
}

// Valid reports whether p is one of the two seats.
func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}
