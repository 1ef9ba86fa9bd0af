package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hue-recall/internal/core"
)

// cellStyle is the color pair shared by a run of cells.
type cellStyle struct {
	fg, bg string
}

// ScreenRenderer converts Screen buffers to styled strings. Swatch colors
// are "#rrggbb" values, so the output is truecolor where the terminal
// supports it and degraded by lipgloss otherwise.
type ScreenRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[cellStyle]lipgloss.Style
}

// NewScreenRenderer creates a renderer bound to r. A nil r uses the
// process-wide default renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		renderer: r,
		styles:   make(map[cellStyle]lipgloss.Style),
	}
}

// style returns the cached lipgloss style for a color pair.
func (sr *ScreenRenderer) style(k cellStyle) lipgloss.Style {
	if st, ok := sr.styles[k]; ok {
		return st
	}
	st := sr.renderer.NewStyle()
	if k.fg != "" {
		st = st.Foreground(lipgloss.Color(k.fg))
	}
	if k.bg != "" {
		st = st.Background(lipgloss.Color(k.bg))
	}
	sr.styles[k] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.FG, bg: cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != key.fg || cell.BG != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(key).Render(run.String()))
		}
	}
	return sb.String()
}
