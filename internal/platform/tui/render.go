package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// cellStyle is the part of a cell that maps to terminal attributes.
type cellStyle struct {
	color core.Color
	bold  bool
}

// styleFor returns the lipgloss style for a cell style. Colors are hex
// strings; lipgloss degrades them to the terminal's color profile.
func styleFor(cs cellStyle, cache map[cellStyle]lipgloss.Style) lipgloss.Style {
	if style, ok := cache[cs]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if cs.color != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(string(cs.color)))
	}
	if cs.bold {
		style = style.Bold(true)
	}
	cache[cs] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	cache := make(map[cellStyle]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{color: cell.Color, bold: cell.Bold}

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{color: cell.Color, bold: cell.Bold}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start, cache).Render(run.String()))
		}
	}
	return sb.String()
}
