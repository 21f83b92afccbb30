package breakout

import "math"

// Snapshot is a flat copy of the session state, used for comparisons.
type Snapshot struct {
	Ticks      int
	BallX      float64
	BallY      float64
	BallDX     float64
	BallDY     float64
	PaddleX    float64
	Score      int
	Phase      Phase
	Outcome    Outcome
	FinalScore int

	// Brick states in grid order: 1 alive, 0 destroyed
	BrickData []int
}

// Snapshot returns the current session state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	brickData := make([]int, len(s.Grid.Bricks))
	for i := range s.Grid.Bricks {
		if s.Grid.Bricks[i].Alive() {
			brickData[i] = 1
		}
	}

	return Snapshot{
		Ticks:      s.Ticks,
		BallX:      s.Ball.X,
		BallY:      s.Ball.Y,
		BallDX:     s.Ball.DX,
		BallDY:     s.Ball.DY,
		PaddleX:    s.Paddle.X,
		Score:      s.Score,
		Phase:      s.Phase.Phase,
		Outcome:    s.Phase.Outcome,
		FinalScore: s.Phase.FinalScore,
		BrickData:  brickData,
	}
}

// Hash returns a simple hash of the entity state. Phase is left out so a
// pause round trip hashes the same as the state it started from.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Ticks) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
