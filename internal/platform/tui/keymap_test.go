package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
)

// keyMsg builds the message Bubble Tea delivers for a key name.
func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

func TestKeyMapLookup(t *testing.T) {
	keys := NewKeyMap(config.DefaultBomberConfig().Controls)

	tests := []struct {
		key    string
		player core.PlayerID
		action core.Action
	}{
		{"w", core.Player1, core.ActionUp},
		{"a", core.Player1, core.ActionLeft},
		{"s", core.Player1, core.ActionDown},
		{"d", core.Player1, core.ActionRight},
		{" ", core.Player1, core.ActionBomb},
		{"up", core.Player2, core.ActionUp},
		{"left", core.Player2, core.ActionLeft},
		{"right", core.Player2, core.ActionRight},
		{"enter", core.Player2, core.ActionBomb},
		{"x", core.NoPlayer, core.ActionNone},
		{"p", core.NoPlayer, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			id, action := keys.Lookup(keyMsg(tt.key))
			if id != tt.player || action != tt.action {
				t.Errorf("Lookup(%q) = (%v, %v), expected (%v, %v)", tt.key, id, action, tt.player, tt.action)
			}
		})
	}
}

func TestKeyMapCustomBindings(t *testing.T) {
	ctrl := config.DefaultBomberConfig().Controls
	ctrl.Player1.Bomb = []string{"f"}
	ctrl.Player2.Bomb = []string{"space"}
	keys := NewKeyMap(ctrl)

	if id, action := keys.Lookup(keyMsg("f")); id != core.Player1 || action != core.ActionBomb {
		t.Errorf("Lookup(f) = (%v, %v), expected P1 bomb", id, action)
	}
	if id, action := keys.Lookup(keyMsg(" ")); id != core.Player2 || action != core.ActionBomb {
		t.Errorf("Lookup(space) = (%v, %v), expected P2 bomb", id, action)
	}
}

func TestHeldKeysHoldWindow(t *testing.T) {
	held := NewHeldKeys(160 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	held.Press(core.Player1, core.ActionRight, t0)

	frame := held.Frame(t0.Add(100 * time.Millisecond))
	if !frame.Player(core.Player1).Has(core.ActionRight) {
		t.Error("Right should be held inside the hold window")
	}
	if frame.Player(core.Player2).Has(core.ActionRight) {
		t.Error("P2 should not see P1's key")
	}

	frame = held.Frame(t0.Add(200 * time.Millisecond))
	if frame.Player(core.Player1).Has(core.ActionRight) {
		t.Error("Right should be released after the hold window")
	}

	// A repeat extends the hold.
	held.Press(core.Player1, core.ActionRight, t0.Add(150*time.Millisecond))
	frame = held.Frame(t0.Add(250 * time.Millisecond))
	if !frame.Player(core.Player1).Has(core.ActionRight) {
		t.Error("repeat should keep Right held")
	}
}

func TestHeldKeysNewDirectionReplaces(t *testing.T) {
	held := NewHeldKeys(time.Second)
	t0 := time.Unix(1000, 0)

	held.Press(core.Player2, core.ActionUp, t0)
	held.Press(core.Player2, core.ActionLeft, t0.Add(10*time.Millisecond))

	frame := held.Frame(t0.Add(20 * time.Millisecond))
	p2 := frame.Player(core.Player2)
	if p2.Has(core.ActionUp) || !p2.Has(core.ActionLeft) {
		t.Errorf("P2 frame = %v, expected only Left", p2.Actions)
	}
}

func TestHeldKeysBombIsEdgeTriggered(t *testing.T) {
	held := NewHeldKeys(time.Second)
	t0 := time.Unix(1000, 0)

	held.Press(core.Player1, core.ActionBomb, t0)
	held.Press(core.Player1, core.ActionBomb, t0)

	if !held.Frame(t0).Player(core.Player1).Has(core.ActionBomb) {
		t.Error("first frame should carry the bomb press")
	}
	if held.Frame(t0).Player(core.Player1).Has(core.ActionBomb) {
		t.Error("bomb press should be consumed after one frame")
	}
}

func TestHeldKeysReset(t *testing.T) {
	held := NewHeldKeys(time.Second)
	t0 := time.Unix(1000, 0)
	held.Press(core.Player1, core.ActionDown, t0)
	held.Press(core.Player2, core.ActionBomb, t0)

	held.Reset()

	frame := held.Frame(t0)
	if frame.Player(core.Player1).Has(core.ActionDown) || frame.Player(core.Player2).Has(core.ActionBomb) {
		t.Error("Reset should drop every held key")
	}
}
