package breakout

import (
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Ball represents the ball. X and Y are the center.
type Ball struct {
	X, Y   float64
	DX, DY float64 // Velocity per tick
	Radius float64
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Paddle represents the player's paddle. It sits on the arena floor.
type Paddle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
}

// Right returns the right edge.
func (p *Paddle) Right() float64 {
	return p.X + p.Width
}

// Spans reports whether x lies strictly between the paddle's edges.
func (p *Paddle) Spans(x float64) bool {
	return x > p.X && x < p.Right()
}

// Clamp keeps the paddle inside [0, arenaW-width].
func (p *Paddle) Clamp(arenaW float64) {
	p.X = core.ClampF(p.X, 0, arenaW-p.Width)
}

// BrickStatus is the lifecycle state of a brick.
type BrickStatus int

const (
	BrickAlive BrickStatus = iota
	BrickDestroyed
)

// String returns a human-readable name for the status.
func (s BrickStatus) String() string {
	if s == BrickAlive {
		return "alive"
	}
	return "destroyed"
}

// Brick is one cell of the grid.
type Brick struct {
	Col, Row int
	Rect     core.Rect // Arena bounds, fixed at grid creation
	Status   BrickStatus
	Color    core.Color // Cosmetic only
}

// Alive reports whether the brick can still be hit.
func (b *Brick) Alive() bool {
	return b.Status == BrickAlive
}

// Grid is the fixed-shape brick collection. Bricks are stored column-major:
// all rows of column 0, then column 1, and so on.
type Grid struct {
	Columns int
	Rows    int
	Bricks  []Brick
}

// NewGrid builds a grid of alive bricks laid out by cfg, coloring each brick
// with the next color from colors.
func NewGrid(cfg config.BricksConfig, colors func() core.Color) *Grid {
	g := &Grid{
		Columns: cfg.Columns,
		Rows:    cfg.Rows,
		Bricks:  make([]Brick, 0, cfg.Columns*cfg.Rows),
	}

	for c := 0; c < cfg.Columns; c++ {
		for r := 0; r < cfg.Rows; r++ {
			x := float64(c)*(cfg.Width+cfg.Padding) + cfg.OffsetLeft
			y := float64(r)*(cfg.Height+cfg.Padding) + cfg.OffsetTop
			g.Bricks = append(g.Bricks, Brick{
				Col:    c,
				Row:    r,
				Rect:   core.NewRect(x, y, cfg.Width, cfg.Height),
				Status: BrickAlive,
				Color:  colors(),
			})
		}
	}
	return g
}

// Len returns the total number of bricks.
func (g *Grid) Len() int {
	return len(g.Bricks)
}

// At returns the brick at (col, row), or nil when out of range.
func (g *Grid) At(col, row int) *Brick {
	if col < 0 || col >= g.Columns || row < 0 || row >= g.Rows {
		return nil
	}
	return &g.Bricks[col*g.Rows+row]
}

// Alive returns the number of bricks not yet destroyed.
func (g *Grid) Alive() int {
	count := 0
	for i := range g.Bricks {
		if g.Bricks[i].Alive() {
			count++
		}
	}
	return count
}
