package breakout

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

func newTestGame(t *testing.T, mutate func(*config.GameConfig)) (*Game, *MemoryScoreStore) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, cfg.Validate())
	store := NewMemoryScoreStore(0)
	return New(cfg, store, 12345), store
}

// placeBall puts the ball somewhere harmless: below the bricks, above the
// paddle, away from the walls.
func placeBall(g *Game, x, y, dx, dy float64) {
	g.state.Ball.X, g.state.Ball.Y = x, y
	g.state.Ball.DX, g.state.Ball.DY = dx, dy
}

func TestNewGameInitialState(t *testing.T) {
	g, _ := newTestGame(t, nil)
	s := g.state

	assert.Equal(t, 240.0, s.Ball.X)
	assert.Equal(t, 290.0, s.Ball.Y)
	assert.Equal(t, 4.0, s.Ball.DX)
	assert.Equal(t, -4.0, s.Ball.DY)
	assert.Equal(t, 202.5, s.Paddle.X)
	assert.Equal(t, 15, s.Grid.Len())
	assert.Equal(t, 15, s.Grid.Alive())
	assert.True(t, g.Phase().IsRunning())
	assert.Equal(t, 0, g.Score())
	assert.NotEmpty(t, g.SessionID())
}

func TestTickWithoutInputMovesBall(t *testing.T) {
	g, _ := newTestGame(t, nil)

	res := g.Tick()

	assert.Empty(t, res.Events)
	assert.Equal(t, 244.0, g.state.Ball.X)
	assert.Equal(t, 286.0, g.state.Ball.Y)
	assert.True(t, res.Phase.IsRunning())
}

func TestBrickHitFromCurrentCenter(t *testing.T) {
	g, store := newTestGame(t, nil)
	brick := g.state.Grid.At(0, 0)
	require.NotNil(t, brick)
	require.Equal(t, core.NewRect(30, 30, 75, 20), brick.Rect)

	placeBall(g, 60, 40, 4, -4)
	res := g.Tick()

	assert.Equal(t, BrickDestroyed, brick.Status)
	assert.Equal(t, 1, g.Score())
	assert.Equal(t, 4.0, g.state.Ball.DY, "vertical velocity flips")
	assert.Equal(t, 64.0, g.state.Ball.X)
	assert.Equal(t, 44.0, g.state.Ball.Y)
	assert.True(t, res.Has(EventBrickDestroyed))
	assert.True(t, res.Has(EventNewHighScore))
	assert.Equal(t, 1, store.ReadHighScore())
	assert.Equal(t, 14, g.BricksLeft())
}

func TestBrickEdgesAreExclusive(t *testing.T) {
	g, _ := newTestGame(t, nil)

	// Exactly on the left edge of brick (0,0)
	placeBall(g, 30, 40, 0, 4)
	res := g.Tick()

	assert.False(t, res.Has(EventBrickDestroyed))
	assert.Equal(t, 0, g.Score())
}

func TestOverlappingBricksAllScoreInOneTick(t *testing.T) {
	g, _ := newTestGame(t, func(c *config.GameConfig) {
		c.Bricks.Padding = -10 // neighbours overlap by 10 units
	})

	// Inside column 0 and column 1 of row 0
	placeBall(g, 100, 35, 0, -4)
	res := g.Tick()

	count := 0
	for _, e := range res.Events {
		if e.Kind == EventBrickDestroyed {
			count++
			assert.Equal(t, 0, e.Row)
		}
	}
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, g.Score())
	assert.Equal(t, -4.0, g.state.Ball.DY, "two flips compose")
}

func TestWallBounces(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		dx, dy   float64
		wantDX   float64
		wantDY   float64
		wantKind EventKind
		wantX    float64
		wantY    float64
	}{
		{"right wall", 468, 200, 4, -4, -4, -4, EventWallBounce, 464, 196},
		{"left wall", 12, 200, -4, 4, 4, 4, EventWallBounce, 16, 204},
		{"ceiling", 200, 12, 4, -4, 4, 4, EventCeilingBounce, 204, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, nil)
			placeBall(g, tt.x, tt.y, tt.dx, tt.dy)

			res := g.Tick()

			assert.True(t, res.Has(tt.wantKind))
			assert.Equal(t, tt.wantDX, g.state.Ball.DX)
			assert.Equal(t, tt.wantDY, g.state.Ball.DY)
			assert.Equal(t, tt.wantX, g.state.Ball.X)
			assert.Equal(t, tt.wantY, g.state.Ball.Y)
		})
	}
}

func TestPaddleBounce(t *testing.T) {
	g, _ := newTestGame(t, nil)
	placeBall(g, 240, 308, 4, 4)

	res := g.Tick()

	assert.True(t, res.Has(EventPaddleBounce))
	assert.True(t, g.Phase().IsRunning())
	assert.Equal(t, -4.0, g.state.Ball.DY)
	assert.Equal(t, 304.0, g.state.Ball.Y)
}

func TestPaddleBounceSpeedupIsCapped(t *testing.T) {
	g, _ := newTestGame(t, func(c *config.GameConfig) {
		c.Gameplay.BounceSpeedup = 2
		c.Gameplay.MaxBallSpeed = 6
	})
	placeBall(g, 240, 308, 4, 4)

	g.Tick()

	assert.Equal(t, 6.0, g.state.Ball.DX)
	assert.Equal(t, -6.0, g.state.Ball.DY)
}

func TestFloorMissLoses(t *testing.T) {
	g, _ := newTestGame(t, nil)
	placeBall(g, 50, 308, 4, 4)

	res := g.Tick()

	require.True(t, res.Has(EventLost))
	assert.Equal(t, Ended(OutcomeLost, 0), g.Phase())
	assert.Equal(t, 15, g.BricksLeft(), "lost regardless of remaining bricks")
	assert.Equal(t, 50.0, g.state.Ball.X, "ended tick does not integrate")

	before := g.Snapshot()
	res = g.Tick()
	assert.Empty(t, res.Events)
	assert.Equal(t, before, g.Snapshot(), "ticks do nothing once ended")
}

func TestPaddleEdgeIsExclusive(t *testing.T) {
	g, _ := newTestGame(t, nil)
	placeBall(g, g.state.Paddle.X, 308, 0, 4)

	g.Tick()

	assert.Equal(t, OutcomeLost, g.Phase().Outcome)
}

func TestClearingAllBricksWins(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		g, _ := newTestGame(t, nil)
		order := rand.New(rand.NewPCG(seed, seed)).Perm(g.state.Grid.Len())

		var last TickResult
		for _, i := range order {
			require.True(t, g.Phase().IsRunning())
			cx, cy := g.state.Grid.Bricks[i].Rect.Center()
			placeBall(g, cx, cy, 4, -4)
			last = g.Tick()
		}

		assert.True(t, last.Has(EventWon))
		assert.Equal(t, Ended(OutcomeWon, 15), g.Phase())
		assert.Equal(t, 0, g.BricksLeft())
	}
}

func TestPaddleMovement(t *testing.T) {
	g, _ := newTestGame(t, func(c *config.GameConfig) {
		c.Difficulty.Enabled = false
	})
	start := g.state.Paddle.X

	g.HandleInput(core.KeyDown(core.KeyRight))
	g.Tick()
	assert.Equal(t, start+7, g.state.Paddle.X)

	// Right wins while both are held
	g.HandleInput(core.KeyDown(core.KeyLeft))
	g.Tick()
	assert.Equal(t, start+14, g.state.Paddle.X)

	g.HandleInput(core.KeyUp(core.KeyRight))
	g.Tick()
	assert.Equal(t, start+7, g.state.Paddle.X)

	g.HandleInput(core.KeyUp(core.KeyLeft))
	g.Tick()
	assert.Equal(t, start+7, g.state.Paddle.X)
}

func TestPaddleStaysInArena(t *testing.T) {
	g, _ := newTestGame(t, nil)
	maxX := g.cfg.Arena.Width - g.cfg.Paddle.Width
	rng := rand.New(rand.NewPCG(7, 7))

	keys := []core.Key{core.KeyLeft, core.KeyRight}
	for i := 0; i < 500 && g.Phase().IsRunning(); i++ {
		k := keys[rng.IntN(2)]
		switch rng.IntN(3) {
		case 0:
			g.HandleInput(core.KeyDown(k))
		case 1:
			g.HandleInput(core.KeyUp(k))
		default:
			g.HandleInput(core.PointerMove(rng.Float64()*600 - 60))
		}
		// Keep the ball in play so the paddle keeps moving
		placeBall(g, 240, 200, 4, -4)
		g.Tick()

		x := g.state.Paddle.X
		require.GreaterOrEqual(t, x, 0.0)
		require.LessOrEqual(t, x, maxX)
	}
}

func TestPointerMovesPaddle(t *testing.T) {
	g, _ := newTestGame(t, nil)

	g.HandleInput(core.PointerMove(100))
	assert.Equal(t, 62.5, g.state.Paddle.X)

	g.HandleInput(core.PointerMove(5))
	assert.Equal(t, 0.0, g.state.Paddle.X, "clamped to the left wall")

	g.HandleInput(core.PointerMove(479))
	assert.Equal(t, 405.0, g.state.Paddle.X, "clamped to the right wall")

	// Outside the arena is ignored
	g.HandleInput(core.PointerMove(0))
	g.HandleInput(core.PointerMove(480))
	g.HandleInput(core.PointerMove(-20))
	assert.Equal(t, 405.0, g.state.Paddle.X)
}

func TestPointerOverridesHeldKeyForOneTick(t *testing.T) {
	g, _ := newTestGame(t, func(c *config.GameConfig) {
		c.Difficulty.Enabled = false
	})

	g.HandleInput(core.KeyDown(core.KeyRight))
	g.HandleInput(core.PointerMove(100))
	g.Tick()
	assert.Equal(t, 62.5, g.state.Paddle.X, "pointer was the last write")

	g.Tick()
	assert.Equal(t, 69.5, g.state.Paddle.X, "held key applies again next tick")

	g.HandleInput(core.PointerMove(100))
	g.HandleInput(core.KeyDown(core.KeyRight))
	g.Tick()
	assert.Equal(t, 69.5, g.state.Paddle.X, "key was the last write")
}

func TestPauseRoundTripKeepsState(t *testing.T) {
	g, _ := newTestGame(t, nil)
	for range 5 {
		g.Tick()
	}
	before := g.Snapshot()

	g.HandleInput(core.KeyDown(core.KeyPause))
	assert.True(t, g.Phase().IsPaused())
	g.HandleInput(core.KeyDown(core.KeyPause))
	assert.True(t, g.Phase().IsRunning())

	after := g.Snapshot()
	assert.Equal(t, before, after)
	assert.Equal(t, before.Hash(), after.Hash())
}

func TestPausedGameDoesNotAdvance(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.TogglePause()
	before := g.Snapshot()

	for range 10 {
		res := g.Tick()
		assert.True(t, res.Phase.IsPaused())
	}
	g.HandleInput(core.PointerMove(100))

	assert.Equal(t, before, g.Snapshot())
}

func TestPauseIgnoredWhenEnded(t *testing.T) {
	g, _ := newTestGame(t, nil)
	placeBall(g, 50, 308, 4, 4)
	g.Tick()
	require.True(t, g.Phase().IsEnded())

	g.TogglePause()

	assert.True(t, g.Phase().IsEnded())
}

func TestRestartAfterLoss(t *testing.T) {
	g, _ := newTestGame(t, nil)
	placeBall(g, 60, 40, 4, -4)
	g.Tick()
	oldColors := colorsOf(g.state.Grid)
	oldSession := g.SessionID()
	placeBall(g, 50, 308, 4, 4)
	g.Tick()
	require.Equal(t, Ended(OutcomeLost, 1), g.Phase())

	g.HandleInput(core.KeyDown(core.KeyRestart))

	assert.True(t, g.Phase().IsRunning())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 15, g.BricksLeft())
	assert.Equal(t, 1, g.HighScore())
	assert.NotEqual(t, oldSession, g.SessionID())
	assert.NotEqual(t, oldColors, colorsOf(g.state.Grid))
	assert.Equal(t, Controls{}, g.Controls())

	for _, b := range g.state.Grid.Bricks {
		hue, err := HueOf(b.Color)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, hue, 199.0)
		assert.Less(t, hue, 241.0)
	}
}

func TestHighScoreIsMaxAcrossRestarts(t *testing.T) {
	g, store := newTestGame(t, nil)

	play := func(hits int) {
		for i := 0; i < hits; i++ {
			cx, cy := g.state.Grid.Bricks[i].Rect.Center()
			placeBall(g, cx, cy, 4, -4)
			g.Tick()
		}
		g.Restart()
	}

	play(3)
	play(1)
	play(5)
	play(2)

	assert.Equal(t, 5, g.HighScore())
	assert.Equal(t, 5, store.ReadHighScore())
	assert.Equal(t, 5, store.Writes(), "written once per new record")
}

func TestStoredHighScoreIsRespected(t *testing.T) {
	store := NewMemoryScoreStore(4)
	g := New(config.Default(), store, 1)

	for i := 0; i < 4; i++ {
		cx, cy := g.state.Grid.Bricks[i].Rect.Center()
		placeBall(g, cx, cy, 4, -4)
		res := g.Tick()
		assert.False(t, res.Has(EventNewHighScore))
	}
	assert.Equal(t, 0, store.Writes())

	cx, cy := g.state.Grid.Bricks[4].Rect.Center()
	placeBall(g, cx, cy, 4, -4)
	res := g.Tick()

	assert.True(t, res.Has(EventNewHighScore))
	assert.Equal(t, 5, store.ReadHighScore())
}

func TestNilStoreKeepsScoreInMemory(t *testing.T) {
	g := New(config.Default(), nil, 1)
	placeBall(g, 60, 40, 4, -4)
	g.Tick()
	assert.Equal(t, 1, g.HighScore())
}

func TestDimensionsConstantAcrossSession(t *testing.T) {
	g, _ := newTestGame(t, nil)
	rects := make([]core.Rect, 0, g.state.Grid.Len())
	for _, b := range g.state.Grid.Bricks {
		rects = append(rects, b.Rect)
	}

	for i := 0; i < 200 && g.Phase().IsRunning(); i++ {
		g.HandleInput(core.PointerMove(g.state.Ball.X))
		g.Tick()
		assert.Equal(t, 10.0, g.state.Ball.Radius)
	}

	for i, b := range g.state.Grid.Bricks {
		assert.Equal(t, rects[i], b.Rect)
	}
}

func TestScoreIsMonotonic(t *testing.T) {
	g, _ := newTestGame(t, nil)
	last := 0
	for i := 0; i < 2000 && g.Phase().IsRunning(); i++ {
		// Follow the ball so the session lasts
		g.HandleInput(core.PointerMove(g.state.Ball.X))
		g.Tick()
		require.GreaterOrEqual(t, g.Score(), last)
		last = g.Score()
	}
	assert.Positive(t, last)
}

func colorsOf(g *Grid) []core.Color {
	out := make([]core.Color, 0, g.Len())
	for _, b := range g.Bricks {
		out = append(out, b.Color)
	}
	return out
}
