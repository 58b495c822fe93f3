package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/polyfall/internal/core"
)

// styleCache memoizes lipgloss styles per ANSI-256 color code. Piece palettes
// span the whole color cube, so styles are built on demand instead of from a
// fixed table.
var (
	styleMu    sync.Mutex
	styleCache = map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
)

func styleFor(c core.Color) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()

	if style, ok := styleCache[c]; ok {
		return style
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(int(c))))
	styleCache[c] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
