package breakout

import "fmt"

// Phase is the state machine value governing whether ticks advance.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome is carried by the Ended phase.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// PhaseState is the full state machine value. Outcome and FinalScore are only
// meaningful when Phase is PhaseEnded.
type PhaseState struct {
	Phase      Phase
	Outcome    Outcome
	FinalScore int
}

// Running is the initial phase.
func Running() PhaseState {
	return PhaseState{Phase: PhaseRunning}
}

// Ended builds the terminal phase.
func Ended(outcome Outcome, finalScore int) PhaseState {
	return PhaseState{Phase: PhaseEnded, Outcome: outcome, FinalScore: finalScore}
}

// IsRunning reports whether ticks advance.
func (p PhaseState) IsRunning() bool { return p.Phase == PhaseRunning }

// IsPaused reports whether the game is suspended.
func (p PhaseState) IsPaused() bool { return p.Phase == PhasePaused }

// IsEnded reports whether the session is over.
func (p PhaseState) IsEnded() bool { return p.Phase == PhaseEnded }

// TogglePause flips Running and Paused. Ended is left unchanged.
func (p PhaseState) TogglePause() PhaseState {
	switch p.Phase {
	case PhaseRunning:
		return PhaseState{Phase: PhasePaused}
	case PhasePaused:
		return Running()
	default:
		return p
	}
}

func (p PhaseState) String() string {
	if p.Phase == PhaseEnded {
		return fmt.Sprintf("ended(%s, %d)", p.Outcome, p.FinalScore)
	}
	return p.Phase.String()
}
