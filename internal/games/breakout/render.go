package breakout

import (
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Align is the horizontal anchor of drawn text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Font describes drawn text. Surfaces without font support may ignore Size.
type Font struct {
	Size float64
	Bold bool
}

var (
	FontHeadline = Font{Size: 30, Bold: true}
	FontDetail   = Font{Size: 20}
)

// Surface is a 2D drawing target in arena coordinates.
type Surface interface {
	Clear()
	DrawRect(r core.Rect, fill core.Color)
	DrawCircle(cx, cy, radius float64, fill core.Color)
	DrawText(text string, x, y float64, font Font, color core.Color, align Align)
}

// Overlay messages.
const (
	PausedText    = "PAUSED"
	ResumeText    = "Press P to resume"
	WonText       = "MORE THAN A CONQUEROR"
	LostText      = "Game Over"
	finalScoreFmt = "Final Score: %d"
)

// FinalScoreText returns the detail line shown when the game ends.
func FinalScoreText(score int) string {
	return fmt.Sprintf(finalScoreFmt, score)
}

// Draw renders s: clear, alive bricks, ball, paddle, then the overlay while
// paused or ended.
func Draw(s *State, arena config.ArenaConfig, surface Surface) {
	surface.Clear()

	for i := range s.Grid.Bricks {
		b := &s.Grid.Bricks[i]
		if b.Alive() {
			surface.DrawRect(b.Rect, b.Color)
		}
	}

	surface.DrawCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius, BallColor)

	// Two halves stand in for the left-to-right gradient.
	p := s.Paddle
	top := arena.Height - p.Height
	half := p.Width / 2
	surface.DrawRect(core.NewRect(p.X, top, half, p.Height), PaddleColorLeft)
	surface.DrawRect(core.NewRect(p.X+half, top, p.Width-half, p.Height), PaddleColorRight)

	var headline, detail string
	switch {
	case s.Phase.IsPaused():
		headline, detail = PausedText, ResumeText
	case s.Phase.IsEnded() && s.Phase.Outcome == OutcomeWon:
		headline, detail = WonText, FinalScoreText(s.Phase.FinalScore)
	case s.Phase.IsEnded():
		headline, detail = LostText, FinalScoreText(s.Phase.FinalScore)
	default:
		return
	}

	cx, cy := arena.Width/2, arena.Height/2
	surface.DrawRect(core.NewRect(0, 0, arena.Width, arena.Height), OverlayColor)
	surface.DrawText(headline, cx, cy, FontHeadline, TextColor, AlignCenter)
	surface.DrawText(detail, cx, cy+40, FontDetail, TextColor, AlignCenter)
}
