package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// styleCache maps core styles to lipgloss styles, built on first use.
// Not safe for concurrent use; each model owns one.
type styleCache struct {
	renderer *lipgloss.Renderer // nil uses the default renderer (local stdout)
	styles   map[core.Style]lipgloss.Style
}

func newStyleCache(r *lipgloss.Renderer) *styleCache {
	return &styleCache{
		renderer: r,
		styles:   make(map[core.Style]lipgloss.Style),
	}
}

// base returns an empty style bound to the cache's renderer.
func (c *styleCache) base() lipgloss.Style {
	if c.renderer != nil {
		return c.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

func (c *styleCache) get(s core.Style) lipgloss.Style {
	if style, ok := c.styles[s]; ok {
		return style
	}
	style := c.base()
	if s.Fg != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(s.Fg))
	}
	if s.Bg != core.ColorDefault {
		style = style.Background(lipgloss.Color(s.Bg))
	}
	c.styles[s] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, newStyleCache(nil))
}

func renderScreen(s *core.Screen, styles *styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
