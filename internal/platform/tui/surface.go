package tui

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

// Glyphs used to rasterize the arena.
const (
	blockGlyph = '█'
	ballGlyph  = '●'
)

// TermSurface draws arena coordinates into a rectangular area of a
// core.Screen, stretching the arena to fill it.
type TermSurface struct {
	screen *core.Screen
	area   cellArea
	arenaW float64
	arenaH float64
}

// cellArea is the cell area the arena maps onto.
type cellArea struct {
	x, y int // Top-left cell
	w, h int // Size in cells
}

var _ breakout.Surface = (*TermSurface)(nil)

// NewTermSurface maps an arena of arenaW x arenaH units onto the w x h cells
// of screen starting at (x, y).
func NewTermSurface(screen *core.Screen, x, y, w, h int, arenaW, arenaH float64) *TermSurface {
	return &TermSurface{
		screen: screen,
		area:   cellArea{x: x, y: y, w: max(w, 0), h: max(h, 0)},
		arenaW: arenaW,
		arenaH: arenaH,
	}
}

func (t *TermSurface) scaleX() float64 { return float64(t.area.w) / t.arenaW }
func (t *TermSurface) scaleY() float64 { return float64(t.area.h) / t.arenaH }

// cellX converts an arena x to a column inside the area.
func (t *TermSurface) cellX(x float64) int {
	return core.Clamp(int(math.Floor(x*t.scaleX())), 0, t.area.w-1)
}

// cellY converts an arena y to a row inside the area.
func (t *TermSurface) cellY(y float64) int {
	return core.Clamp(int(math.Floor(y*t.scaleY())), 0, t.area.h-1)
}

// span converts [from, to) in arena units to a cell range of at least one cell.
func span(from, to, scale float64, limit int) (int, int) {
	start := int(math.Round(from * scale))
	end := int(math.Round(to * scale))
	if end <= start {
		end = start + 1
	}
	return core.Clamp(start, 0, limit), core.Clamp(end, 0, limit)
}

// Clear blanks the arena area.
func (t *TermSurface) Clear() {
	t.screen.FillRect(t.area.x, t.area.y, t.area.w, t.area.h, core.Cell{Rune: ' '})
}

// DrawRect fills the cells covered by r. Translucent fills dim what is
// underneath instead of covering it; fills under half opacity are skipped.
func (t *TermSurface) DrawRect(r core.Rect, fill core.Color) {
	x0, x1 := span(r.X, r.Right(), t.scaleX(), t.area.w)
	y0, y1 := span(r.Y, r.Bottom(), t.scaleY(), t.area.h)

	solid, alpha := splitAlpha(fill)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sx, sy := t.area.x+x, t.area.y+y
			if alpha >= 1 {
				t.screen.SetCell(sx, sy, core.Cell{Rune: blockGlyph, Color: solid})
				continue
			}
			if alpha >= 0.5 {
				c := t.screen.GetCell(sx, sy)
				c.Color = core.ColorGray
				c.Bold = false
				t.screen.SetCell(sx, sy, c)
			}
		}
	}
}

// DrawCircle marks the cell holding the center.
func (t *TermSurface) DrawCircle(cx, cy, _ float64, fill core.Color) {
	t.screen.SetCell(t.area.x+t.cellX(cx), t.area.y+t.cellY(cy), core.Cell{Rune: ballGlyph, Color: fill})
}

// DrawText writes text on the row holding y. Font size is ignored.
func (t *TermSurface) DrawText(text string, x, y float64, font breakout.Font, color core.Color, align breakout.Align) {
	col := t.cellX(x)
	if align == breakout.AlignCenter {
		col = int(math.Round(x*t.scaleX())) - utf8.RuneCountInString(text)/2
	}
	// Keep the text inside the area when it fits
	col = core.Clamp(col, 0, max(t.area.w-utf8.RuneCountInString(text), 0))

	row := t.cellY(y)
	x0 := t.area.x + col
	for i, r := range []rune(text) {
		if col+i >= t.area.w {
			break
		}
		t.screen.SetCell(x0+i, t.area.y+row, core.Cell{Rune: r, Color: color, Bold: font.Bold})
	}
}

// ArenaX converts a screen column to the arena x at the center of that
// column. ok is false when the column lies outside the arena area.
func (t *TermSurface) ArenaX(column int) (x float64, ok bool) {
	col := column - t.area.x
	if col < 0 || col >= t.area.w || t.area.w == 0 {
		return 0, false
	}
	return (float64(col) + 0.5) / t.scaleX(), true
}

// splitAlpha separates "#rrggbbaa" into the solid color and its opacity.
// Colors without an alpha byte are opaque.
func splitAlpha(c core.Color) (core.Color, float64) {
	s := string(c)
	if len(s) != 9 {
		return c, 1
	}
	a, err := strconv.ParseUint(s[7:], 16, 8)
	if err != nil {
		return core.Color(s[:7]), 1
	}
	return core.Color(s[:7]), float64(a) / 255
}
