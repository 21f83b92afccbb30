// Package breakout implements the brick breaker game: entity state, the
// collision and scoring engine, input translation and the render contract.
// It has no knowledge of terminals, clocks or databases.
package breakout

import (
	"math/rand/v2"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Game owns one running game: configuration, the current session and the
// high score that outlives restarts.
type Game struct {
	cfg      config.GameConfig
	engine   *Engine
	palette  *Palette
	scores   *Scorekeeper
	controls Controls
	state    *State
}

// New creates a game in the Running phase. The high score is read from store
// once; a nil store keeps it in memory. seed drives brick colors only.
func New(cfg config.GameConfig, store ScoreStore, seed int64) *Game {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)) //#nosec G115,G404 -- cosmetic colors
	scores := NewScorekeeper(store)

	g := &Game{
		cfg:     cfg,
		engine:  NewEngine(cfg, scores),
		palette: NewPalette(cfg.Bricks, rng),
		scores:  scores,
	}
	g.state = newState(cfg, g.palette.Next)
	return g
}

// ID returns the identifier used for score records.
func (g *Game) ID() string {
	return "breakout"
}

// Tick advances the game by one step. It is a no-op unless Running.
func (g *Game) Tick() TickResult {
	return g.engine.Tick(g.state, &g.controls)
}

// HandleInput applies one input event and returns the translated intent.
func (g *Game) HandleInput(ev core.InputEvent) Intent {
	in := Translate(ev)
	if g.controls.Apply(in) {
		return in
	}

	switch in.Kind {
	case IntentSetPaddle:
		g.setPaddle(in.X)
	case IntentTogglePause:
		g.TogglePause()
	case IntentRestart:
		g.Restart()
	}
	return in
}

// setPaddle centers the paddle on x. Positions outside the arena are ignored,
// and so is everything while the game is not running.
func (g *Game) setPaddle(x float64) {
	if !g.state.Phase.IsRunning() || x <= 0 || x >= g.cfg.Arena.Width {
		return
	}
	p := &g.state.Paddle
	p.X = x - p.Width/2
	p.Clamp(g.cfg.Arena.Width)
	g.controls.PointerPending = true
}

// TogglePause flips Running and Paused. It does nothing once the game has ended.
func (g *Game) TogglePause() {
	g.state.Phase = g.state.Phase.TogglePause()
}

// Restart discards the current session and starts a new one. The high score
// is kept; held directions are released.
func (g *Game) Restart() {
	g.controls = Controls{}
	g.state = newState(g.cfg, g.palette.Next)
}

// Phase returns the current phase.
func (g *Game) Phase() PhaseState {
	return g.state.Phase
}

// Score returns the score of the current session.
func (g *Game) Score() int {
	return g.state.Score
}

// HighScore returns the best score across sessions.
func (g *Game) HighScore() int {
	return g.scores.HighScore()
}

// SessionID returns the identifier of the current session.
func (g *Game) SessionID() string {
	return g.state.SessionID
}

// BricksLeft returns how many bricks are still alive.
func (g *Game) BricksLeft() int {
	return g.state.Grid.Alive()
}

// Controls returns the current held-direction state.
func (g *Game) Controls() Controls {
	return g.controls
}

// Render draws the current frame to surface.
func (g *Game) Render(surface Surface) {
	Draw(g.state, g.cfg.Arena, surface)
}
