package breakout

import "github.com/vovakirdan/brickbreaker/internal/core"

// IntentKind is what an input event asks the game to do.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentMoveLeft
	IntentStopLeft
	IntentMoveRight
	IntentStopRight
	IntentSetPaddle
	IntentTogglePause
	IntentRestart
)

// Intent is a translated input event. X is set for IntentSetPaddle only.
type Intent struct {
	Kind IntentKind
	X    float64
}

// Translate maps a raw input event to a game intent. Pause and restart fire
// on key press only; unknown keys translate to IntentNone.
func Translate(ev core.InputEvent) Intent {
	switch ev.Kind {
	case core.EventPointerMove:
		return Intent{Kind: IntentSetPaddle, X: ev.X}
	case core.EventKeyDown:
		switch ev.Key {
		case core.KeyLeft:
			return Intent{Kind: IntentMoveLeft}
		case core.KeyRight:
			return Intent{Kind: IntentMoveRight}
		case core.KeyPause:
			return Intent{Kind: IntentTogglePause}
		case core.KeyRestart:
			return Intent{Kind: IntentRestart}
		}
	case core.EventKeyUp:
		switch ev.Key {
		case core.KeyLeft:
			return Intent{Kind: IntentStopLeft}
		case core.KeyRight:
			return Intent{Kind: IntentStopRight}
		}
	}
	return Intent{Kind: IntentNone}
}

// Controls is the held-direction state read by the engine each tick.
// PointerPending marks a pointer write since the last tick; the engine skips
// intent movement for that tick so the most recent input wins.
type Controls struct {
	MovingLeft     bool
	MovingRight    bool
	PointerPending bool
}

// Apply updates the controls for a movement intent and reports whether the
// intent was a movement intent.
func (c *Controls) Apply(in Intent) bool {
	switch in.Kind {
	case IntentMoveLeft:
		c.MovingLeft = true
		c.PointerPending = false
	case IntentStopLeft:
		c.MovingLeft = false
	case IntentMoveRight:
		c.MovingRight = true
		c.PointerPending = false
	case IntentStopRight:
		c.MovingRight = false
	default:
		return false
	}
	return true
}
