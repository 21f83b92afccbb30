package core

// Key identifies a physical control after platform-specific key names have
// been resolved (arrow keys, letters, buttons).
type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyPause
	KeyRestart
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyPause:
		return "Pause"
	case KeyRestart:
		return "Restart"
	default:
		return "Other"
	}
}

// EventKind distinguishes the raw events delivered by an input source.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventPointerMove
)

// InputEvent is one raw event from the input source. Key is set for key
// events; X is the pointer position relative to the arena's left edge, in
// arena units, for pointer events.
type InputEvent struct {
	Kind EventKind
	Key  Key
	X    float64
}

// KeyDown creates a key-down event.
func KeyDown(k Key) InputEvent {
	return InputEvent{Kind: EventKeyDown, Key: k}
}

// KeyUp creates a key-up event.
func KeyUp(k Key) InputEvent {
	return InputEvent{Kind: EventKeyUp, Key: k}
}

// PointerMove creates a pointer-move event at arena x.
func PointerMove(x float64) InputEvent {
	return InputEvent{Kind: EventPointerMove, X: x}
}
