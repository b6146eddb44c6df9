package core

import "testing"

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		dx, dy  float64
	}{
		{"none", nil, 0, 0},
		{"right", []Action{ActionRight}, 1, 0},
		{"up-left", []Action{ActionUp, ActionLeft}, -1, -1},
		{"opposites cancel", []Action{ActionLeft, ActionRight, ActionDown}, 0, 1},
		{"bomb is not movement", []Action{ActionBomb}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tt.actions {
				f.Set(a)
			}
			dx, dy := f.Axis()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("Axis() = (%v, %v), expected (%v, %v)", dx, dy, tt.dx, tt.dy)
			}
		})
	}
}

func TestMultiInputFrame(t *testing.T) {
	m := NewMultiInputFrame()
	m.SetAction(Player2, ActionBomb)
	m.System.Set(ActionPause)

	if !m.Player(Player2).Has(ActionBomb) {
		t.Error("P2 should have Bomb")
	}
	if m.Player(Player1).Has(ActionBomb) {
		t.Error("P1 should have no input")
	}

	m.Clear()
	if m.Player(Player2).Has(ActionBomb) || m.System.Has(ActionPause) {
		t.Error("Clear should drop all actions")
	}
}

func TestPlayerID(t *testing.T) {
	if Player1.String() != "P1" || Player2.String() != "P2" || NoPlayer.String() != "none" {
		t.Errorf("String() = %q %q %q", Player1, Player2, NoPlayer)
	}
	if NoPlayer.Valid() || !Player2.Valid() {
		t.Error("Valid() mismatch")
	}
}
