package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-worlds/internal/core"
)

// cellColors is the color pair of a run of cells.
type cellColors struct {
	fg, bg core.Color
}

// styleCache memoizes lipgloss styles per color pair.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) get(cc cellColors) lipgloss.Style {
	if style, ok := c[cc]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if !cc.fg.IsDefault() {
		style = style.Foreground(lipgloss.Color(cc.fg.Hex()))
	}
	if !cc.bg.IsDefault() {
		style = style.Background(lipgloss.Color(cc.bg.Hex()))
	}
	c[cc] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellColors{cell.FG, cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{cell.FG, cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
