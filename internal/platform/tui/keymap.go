package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// GameKeyMap defines the key bindings while playing.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Pause, k.Restart},
		{k.Back, k.Quit, k.Screenshot},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MenuKeyMap defines the key bindings for the title menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyHold turns terminal key presses into key-down/key-up pairs.
// Terminals report presses and auto-repeats but never releases, so a
// direction counts as released when no repeat arrives in time: initial after
// the first press, repeat after each auto-repeat. Pressing the opposite
// direction releases the other one at once.
type KeyHold struct {
	initial  time.Duration
	repeat   time.Duration
	deadline map[core.Key]time.Time
}

// holdKeys is the fixed release order for Expire.
var holdKeys = [...]core.Key{core.KeyLeft, core.KeyRight}

// NewKeyHold creates a tracker with the given release timeouts.
func NewKeyHold(initial, repeat time.Duration) *KeyHold {
	return &KeyHold{
		initial:  initial,
		repeat:   repeat,
		deadline: make(map[core.Key]time.Time, len(holdKeys)),
	}
}

// Press records a press of k at now and returns the events it produces.
// Repeats of a held key produce nothing.
func (h *KeyHold) Press(k core.Key, now time.Time) []core.InputEvent {
	if _, held := h.deadline[k]; held {
		h.deadline[k] = now.Add(h.repeat)
		return nil
	}

	var events []core.InputEvent
	if other := opposite(k); other != core.KeyOther {
		if _, held := h.deadline[other]; held {
			delete(h.deadline, other)
			events = append(events, core.KeyUp(other))
		}
	}
	h.deadline[k] = now.Add(h.initial)
	return append(events, core.KeyDown(k))
}

// Expire releases every key whose deadline has passed at now.
func (h *KeyHold) Expire(now time.Time) []core.InputEvent {
	var events []core.InputEvent
	for _, k := range holdKeys {
		if d, held := h.deadline[k]; held && !now.Before(d) {
			delete(h.deadline, k)
			events = append(events, core.KeyUp(k))
		}
	}
	return events
}

// Held reports whether k is currently considered down.
func (h *KeyHold) Held(k core.Key) bool {
	_, held := h.deadline[k]
	return held
}

// Reset forgets all held keys without producing events.
func (h *KeyHold) Reset() {
	clear(h.deadline)
}

func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyLeft:
		return core.KeyRight
	case core.KeyRight:
		return core.KeyLeft
	default:
		return core.KeyOther
	}
}
