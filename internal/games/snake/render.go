package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Terminal layout of the board.
const (
	hudHeight = 1 // Score line above the board
	tileCols  = 2 // Terminal columns per tile, so tiles look square
)

// Tile glyphs.
const (
	glyphEmpty = '·'
	glyphHead  = '█'
	glyphTail  = '▓'
	glyphFood  = '▒'
)

// FrameSize returns the screen area needed to draw the HUD and the framed board.
func (g *Game) FrameSize() (w, h int) {
	return g.grid.TilesX()*tileCols + 2, g.grid.TilesY() + 2 + hudHeight
}

// Render draws the session into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	frame := g.frameRect(dst)
	g.renderHUD(dst, frame)

	if g.tooSmall {
		g.renderOverlay(dst, dst.Bounds(), "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst, frame)

	if g.state.IsGameOver() {
		g.renderOverlay(dst, frame,
			"Game Over",
			fmt.Sprintf("Your score is %d", g.DisplayScore()),
			`Hit "Enter" to restart`,
		)
	}
}

// frameRect returns the box around the board, centered horizontally below the HUD.
func (g *Game) frameRect(dst *core.Screen) core.Rect {
	w, h := g.FrameSize()
	x := core.Clamp((dst.Width()-w)/2, 0, dst.Width())
	return core.NewRect(x, hudHeight, w, h-hudHeight)
}

// renderHUD draws the score line.
func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	hud := fmt.Sprintf(" %s — Score: %d", g.Title(), g.DisplayScore())
	dst.DrawText(frame.X, 0, hud, core.Style{Fg: core.Color(g.cfg.Theme.Text)})
}

// renderBoard draws the frame, the grid, the snake and the food.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	theme := g.cfg.Theme
	dst.DrawBox(frame, core.Style{Fg: core.Color(theme.Background)})

	originX, originY := frame.X+1, frame.Y+1
	empty := core.Cell{
		Rune:  glyphEmpty,
		Style: core.Style{Fg: core.Color(theme.Background), Bg: core.Color(theme.Grid)},
	}
	for ty := range g.grid.TilesY() {
		for tx := range g.grid.TilesX() {
			x := originX + tx*tileCols
			dst.SetCell(x, originY+ty, empty)
			dst.SetCell(x+1, originY+ty, core.Cell{Rune: ' ', Style: empty.Style})
		}
	}

	tile := func(p Position, glyph rune, color string) {
		if !g.grid.Contains(p) {
			return // Initial tail segments start off the board
		}
		c := core.Cell{Rune: glyph, Style: core.Style{Fg: core.Color(color), Bg: core.Color(theme.Grid)}}
		x := originX + (p.X/g.grid.TileSize)*tileCols
		y := originY + p.Y/g.grid.TileSize
		for i := range tileCols {
			dst.SetCell(x+i, y, c)
		}
	}

	tile(g.state.head, glyphHead, theme.Head)
	for _, seg := range g.state.tail {
		tile(seg, glyphTail, theme.Tail)
	}
	tile(g.state.food, glyphFood, theme.Food)
}

// renderOverlay draws a centered box with one message per line.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := area.Centered(maxLen+4, len(lines)*2+1)
	style := core.Style{Fg: core.Color(g.cfg.Theme.Text)}

	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, style)

	for i, line := range lines {
		x := box.X + (box.W-len([]rune(line)))/2
		dst.DrawText(x, box.Y+1+i*2, line, style)
	}
}
