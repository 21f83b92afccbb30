package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventWallBounce EventKind = iota
	EventCeilingBounce
	EventPaddleBounce
	EventBrickDestroyed
	EventNewHighScore
	EventWon
	EventLost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall_bounce"
	case EventCeilingBounce:
		return "ceiling_bounce"
	case EventPaddleBounce:
		return "paddle_bounce"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventNewHighScore:
		return "new_high_score"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event is emitted by Tick. Col and Row are set for brick events, Score for
// score events.
type Event struct {
	Kind  EventKind
	Col   int
	Row   int
	Score int
}

// TickResult is the outcome of one tick.
type TickResult struct {
	Events []Event
	Phase  PhaseState
}

// Has reports whether an event of the given kind was emitted.
func (r TickResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Engine advances a State by one tick: collisions, scoring, paddle movement
// and integration.
type Engine struct {
	cfg        config.GameConfig
	scores     *Scorekeeper
	difficulty *config.DifficultyManager
}

// NewEngine creates an engine for cfg reporting scores to scores.
func NewEngine(cfg config.GameConfig, scores *Scorekeeper) *Engine {
	return &Engine{
		cfg:        cfg,
		scores:     scores,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// Tick advances s by one step. Nothing happens unless the phase is running.
// Collisions are resolved against the current position and the ball is moved
// last; a win or a loss ends the tick immediately.
func (e *Engine) Tick(s *State, c *Controls) TickResult {
	if !s.Phase.IsRunning() {
		return TickResult{Phase: s.Phase}
	}
	s.Ticks++

	var events []Event
	ball := &s.Ball

	// Bricks: every alive brick containing the ball's center is hit.
	for i := range s.Grid.Bricks {
		b := &s.Grid.Bricks[i]
		if !b.Alive() || !b.Rect.ContainsStrict(ball.X, ball.Y) {
			continue
		}
		ball.BounceY()
		b.Status = BrickDestroyed
		s.Score++
		events = append(events, Event{Kind: EventBrickDestroyed, Col: b.Col, Row: b.Row, Score: s.Score})
		if e.scores.Observe(s.Score) {
			events = append(events, Event{Kind: EventNewHighScore, Score: s.Score})
		}
		if s.Score == s.Grid.Len() {
			s.Phase = Ended(OutcomeWon, s.Score)
			events = append(events, Event{Kind: EventWon, Score: s.Score})
			return TickResult{Events: events, Phase: s.Phase}
		}
	}

	w, h := e.cfg.Arena.Width, e.cfg.Arena.Height
	r := ball.Radius

	// Side walls
	if nx := ball.X + ball.DX; nx > w-r || nx < r {
		ball.BounceX()
		events = append(events, Event{Kind: EventWallBounce})
	}

	// Ceiling, then floor
	if ny := ball.Y + ball.DY; ny < r {
		ball.BounceY()
		events = append(events, Event{Kind: EventCeilingBounce})
	} else if ny > h-r {
		if !s.Paddle.Spans(ball.X) {
			s.Phase = Ended(OutcomeLost, s.Score)
			events = append(events, Event{Kind: EventLost, Score: s.Score})
			return TickResult{Events: events, Phase: s.Phase}
		}
		ball.BounceY()
		e.speedUp(ball)
		events = append(events, Event{Kind: EventPaddleBounce})
	}

	// Paddle
	if !c.PointerPending {
		speed := e.difficulty.Speed(e.cfg.Paddle.Speed, s.Score, s.Ticks)
		if c.MovingRight && s.Paddle.X < w-s.Paddle.Width {
			s.Paddle.X += speed
		} else if c.MovingLeft && s.Paddle.X > 0 {
			s.Paddle.X -= speed
		}
	}
	c.PointerPending = false
	s.Paddle.Clamp(w)

	ball.Move()

	return TickResult{Events: events, Phase: s.Phase}
}

// speedUp scales the ball velocity after a paddle hit, capping each axis.
func (e *Engine) speedUp(ball *Ball) {
	k := e.cfg.Gameplay.BounceSpeedup
	if k <= 1 {
		return
	}
	ball.DX *= k
	ball.DY *= k
	if limit := e.cfg.Gameplay.MaxBallSpeed; limit > 0 {
		ball.DX = math.Copysign(math.Min(math.Abs(ball.DX), limit), ball.DX)
		ball.DY = math.Copysign(math.Min(math.Abs(ball.DY), limit), ball.DY)
	}
}
