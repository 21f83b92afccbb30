package breakout

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// State is one play session: everything a restart throws away.
type State struct {
	SessionID string
	Ball      Ball
	Paddle    Paddle
	Grid      *Grid
	Score     int // Bricks destroyed this session
	Phase     PhaseState
	Ticks     int // Ticks advanced while running
}

// newState builds a fresh session: ball above the floor with the configured
// serve velocity, paddle centered, and every brick alive.
func newState(cfg config.GameConfig, colors func() core.Color) *State {
	return &State{
		SessionID: uuid.NewString(),
		Ball: Ball{
			X:      cfg.Arena.Width / 2,
			Y:      cfg.Arena.Height - cfg.Ball.StartOffsetBottom,
			DX:     cfg.Ball.VelocityX,
			DY:     cfg.Ball.VelocityY,
			Radius: cfg.Ball.Radius,
		},
		Paddle: Paddle{
			X:      (cfg.Arena.Width - cfg.Paddle.Width) / 2,
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
		Grid:  NewGrid(cfg.Bricks, colors),
		Phase: Running(),
	}
}
