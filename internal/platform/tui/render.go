package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// upperHalf shows the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const upperHalf = '▀'

type colorPair struct {
	fg, bg core.RGB
}

// ScreenRenderer converts Screen buffers to styled strings.
// Styles are cached per color pair.
type ScreenRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

// NewScreenRenderer creates a renderer bound to r, or to the default
// lipgloss renderer when r is nil. SSH sessions pass their own.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

func (sr *ScreenRenderer) style(p colorPair) lipgloss.Style {
	if st, ok := sr.styles[p]; ok {
		return st
	}
	st := sr.renderer.NewStyle().
		Foreground(lipgloss.Color(p.fg.Hex())).
		Background(lipgloss.Color(p.bg.Hex()))
	sr.styles[p] = st
	return st
}

// cellGlyph returns what a cell displays and in which colors.
func cellGlyph(c core.Cell) (rune, colorPair) {
	if c.Rune != 0 {
		return c.Rune, colorPair{fg: c.Fg, bg: c.Top}
	}
	return upperHalf, colorPair{fg: c.Top, bg: c.Bottom}
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			_, start := cellGlyph(s.Cell(x, y))

			run.Reset()
			for x < s.Width() {
				r, p := cellGlyph(s.Cell(x, y))
				if p != start {
					break
				}
				run.WriteRune(r)
				x++
			}

			sb.WriteString(sr.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
