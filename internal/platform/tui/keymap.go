package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
)

// PlayerKeys holds one seat's bindings.
type PlayerKeys struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Bomb  key.Binding
}

// KeyMap defines the in-game key bindings. Both seats share one keyboard.
type KeyMap struct {
	Players map[core.PlayerID]PlayerKeys
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// NewKeyMap builds the in-game bindings from the controls config.
func NewKeyMap(ctrl config.ControlsConfig) KeyMap {
	return KeyMap{
		Players: map[core.PlayerID]PlayerKeys{
			core.Player1: newPlayerKeys(ctrl.Player1),
			core.Player2: newPlayerKeys(ctrl.Player2),
		},
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "next round"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newPlayerKeys(b config.Bindings) PlayerKeys {
	return PlayerKeys{
		Up:    binding(b.Up, ""),
		Down:  binding(b.Down, ""),
		Left:  binding(b.Left, ""),
		Right: binding(b.Right, ""),
		Bomb:  binding(b.Bomb, "bomb"),
	}
}

func binding(keys []string, desc string) key.Binding {
	normalized := make([]string, len(keys))
	for i, k := range keys {
		normalized[i] = config.NormalizeKey(k)
	}
	opts := []key.BindingOpt{key.WithKeys(normalized...)}
	if desc != "" {
		opts = append(opts, key.WithHelp(strings.Join(keys, "/"), desc))
	}
	return key.NewBinding(opts...)
}

var arrowGlyphs = map[string]string{"up": "↑", "down": "↓", "left": "←", "right": "→"}

// moveHelp describes a seat's movement keys for the help line.
func moveHelp(name string, k PlayerKeys) key.Binding {
	var keys, labels []string
	for _, b := range []key.Binding{k.Up, k.Left, k.Down, k.Right} {
		ks := b.Keys()
		if len(ks) == 0 {
			continue
		}
		keys = append(keys, ks[0])
		if glyph, ok := arrowGlyphs[ks[0]]; ok {
			labels = append(labels, glyph)
		} else {
			labels = append(labels, ks[0])
		}
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, ""), name+" move"),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	p1, p2 := k.Players[core.Player1], k.Players[core.Player2]
	bomb1 := p1.Bomb
	bomb1.SetHelp(bomb1.Help().Key, "P1 bomb")
	bomb2 := p2.Bomb
	bomb2.SetHelp(bomb2.Help().Key, "P2 bomb")
	return []key.Binding{
		moveHelp("P1", p1), bomb1,
		moveHelp("P2", p2), bomb2,
		k.Pause, k.Restart, k.Back, k.Quit,
	}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	short := k.ShortHelp()
	return [][]key.Binding{short[:4], short[4:]}
}

// Lookup resolves a key press to the seat and action it controls.
// System keys are not seat keys and return NoPlayer.
func (k KeyMap) Lookup(msg tea.KeyMsg) (core.PlayerID, core.Action) {
	for _, id := range core.Players {
		pk, ok := k.Players[id]
		if !ok {
			continue
		}
		switch {
		case key.Matches(msg, pk.Up):
			return id, core.ActionUp
		case key.Matches(msg, pk.Down):
			return id, core.ActionDown
		case key.Matches(msg, pk.Left):
			return id, core.ActionLeft
		case key.Matches(msg, pk.Right):
			return id, core.ActionRight
		case key.Matches(msg, pk.Bomb):
			return id, core.ActionBomb
		}
	}
	return core.NoPlayer, core.ActionNone
}

// HeldKeys turns key presses into per-tick input frames.
// Terminals report presses and auto-repeats but never releases, so a
// movement key counts as held until the hold window passes without a
// repeat. Bomb presses are edge-triggered and fire on the next tick only.
type HeldKeys struct {
	hold    time.Duration
	moves   map[core.PlayerID]map[core.Action]time.Time
	pending map[core.PlayerID]bool
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{
		hold:    hold,
		moves:   make(map[core.PlayerID]map[core.Action]time.Time),
		pending: make(map[core.PlayerID]bool),
	}
}

// Press records a seat action at time now.
func (h *HeldKeys) Press(id core.PlayerID, a core.Action, now time.Time) {
	switch a {
	case core.ActionBomb:
		h.pending[id] = true
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		// Terminals repeat only the most recent key, so a new direction
		// replaces the previous one.
		h.moves[id] = map[core.Action]time.Time{a: now}
	}
}

// Frame returns the input active at time now and consumes bomb presses.
func (h *HeldKeys) Frame(now time.Time) core.MultiInputFrame {
	frame := core.NewMultiInputFrame()
	for _, id := range core.Players {
		for a, at := range h.moves[id] {
			if now.Sub(at) <= h.hold {
				frame.SetAction(id, a)
			} else {
				delete(h.moves[id], a)
			}
		}
		if h.pending[id] {
			frame.SetAction(id, core.ActionBomb)
			delete(h.pending, id)
		}
	}
	return frame
}

// Reset forgets every held key.
func (h *HeldKeys) Reset() {
	clear(h.moves)
	clear(h.pending)
}

// MenuKeyMap defines the key bindings for menus.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Back, k.Quit}}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
