package inkball

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-inkball/internal/core"
	"github.com/vovakirdan/tui-inkball/internal/games/inkball/engine"
)

// Each board cell is two terminal columns by one row; the top bar is two rows.
const (
	colsPerCell = 2
	hudRows     = engine.TopBar / engine.CellSize

	unitsPerCol = engine.CellSize / colsPerCell
	unitsPerRow = engine.CellSize

	ViewWidth  = engine.BoardWidth * colsPerCell
	ViewHeight = hudRows + engine.BoardHeight

	// lineStep is the sampling distance used to rasterize drawn lines.
	lineStep = unitsPerCol / 2
)

// Visual characters for rendering
const (
	WallGlyph      = '█'
	HoleGlyph      = '▒'
	EntryLeft      = '['
	EntryRight     = ']'
	LineGlyph      = '•'
	BallGlyph      = '●'
	SmallBallGlyph = '•'
	FastBallGlyph  = '◉'
	AccelGlyph     = '»'
	AccelUpGlyph   = '↑'
	AccelDownGlyph = '↓'
)

var ballColors = [engine.ColorCount]core.Color{
	engine.ColorGrey:   core.ColorGray,
	engine.ColorOrange: core.ColorOrange,
	engine.ColorBlue:   core.ColorBrightBlue,
	engine.ColorGreen:  core.ColorBrightGreen,
	engine.ColorYellow: core.ColorBrightYellow,
}

// screenColor maps an engine color to a terminal color.
func screenColor(c engine.ColorIndex) core.Color {
	if !c.Valid() {
		return core.ColorGray
	}
	return ballColors[c]
}

// viewport places the board on the screen, centered.
type viewport struct {
	x, y     int
	tooSmall bool
}

func newViewport(w, h int) viewport {
	return viewport{
		x:        max((w-ViewWidth)/2, 0),
		y:        max((h-ViewHeight)/2, 0),
		tooSmall: w < ViewWidth || h < ViewHeight,
	}
}

// boardRect is the screen area covered by the board cells, HUD excluded.
func (v viewport) boardRect() core.Rect {
	return core.NewRect(v.x, v.y+hudRows, ViewWidth, engine.BoardHeight)
}

// toBoard converts a screen cell to the board-space point at its center.
// The second result is false outside the board.
func (v viewport) toBoard(sx, sy int) (engine.Vec2, bool) {
	if !v.boardRect().Contains(sx, sy) {
		return engine.Vec2{}, false
	}
	col := sx - v.x
	row := sy - v.y
	return engine.V(
		float64(col*unitsPerCol+unitsPerCol/2),
		float64(row*unitsPerRow+unitsPerRow/2),
	), true
}

// toScreen converts a board-space point to the screen cell containing it.
func (v viewport) toScreen(p engine.Vec2) (int, int) {
	return v.x + int(math.Floor(p.X/unitsPerCol)), v.y + int(math.Floor(p.Y/unitsPerRow))
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCenteredColored(dst.Height()/2, "Cannot load levels", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		return
	}
	if g.engine == nil {
		return
	}
	if g.view.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small!")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", ViewWidth, ViewHeight))
		return
	}

	g.renderBoard(dst)
	g.renderLines(dst)
	g.renderBalls(dst)
	g.renderHUD(dst)
}

func (g *Game) renderBoard(dst *core.Screen) {
	board := g.engine.Board()
	for row := 0; row < engine.BoardHeight; row++ {
		for col := 0; col < engine.BoardWidth; col++ {
			tag, err := board.CellAt(col, row)
			if err != nil {
				continue
			}
			sx := g.view.x + col*colsPerCell
			sy := g.view.y + hudRows + row

			switch tag {
			case engine.CellWall, engine.CellWallOrange, engine.CellWallBlue,
				engine.CellWallGreen, engine.CellWallYellow:
				c := screenColor(board.WallColor(col, row))
				dst.SetColored(sx, sy, WallGlyph, c)
				dst.SetColored(sx+1, sy, WallGlyph, c)
			case engine.CellAccel:
				dst.SetColored(sx, sy, AccelGlyph, core.ColorCyan)
				dst.SetColored(sx+1, sy, AccelGlyph, core.ColorCyan)
			case engine.CellAccelUp:
				dst.SetColored(sx, sy, AccelUpGlyph, core.ColorCyan)
				dst.SetColored(sx+1, sy, AccelUpGlyph, core.ColorCyan)
			case engine.CellAccelDown:
				dst.SetColored(sx, sy, AccelDownGlyph, core.ColorCyan)
				dst.SetColored(sx+1, sy, AccelDownGlyph, core.ColorCyan)
			case engine.CellEntry:
				dst.SetColored(sx, sy, EntryLeft, core.ColorBrightWhite)
				dst.SetColored(sx+1, sy, EntryRight, core.ColorBrightWhite)
			}
		}
	}

	// Holes are painted as a whole so all four cells carry the hole's color.
	for _, h := range board.Holes() {
		c := screenColor(h.Color)
		for dr := 0; dr < 2; dr++ {
			for dc := 0; dc < 2; dc++ {
				if !engine.InBounds(h.Col+dc, h.Row+dr) {
					continue
				}
				sx := g.view.x + (h.Col+dc)*colsPerCell
				sy := g.view.y + hudRows + h.Row + dr
				dst.SetColored(sx, sy, HoleGlyph, c)
				dst.SetColored(sx+1, sy, HoleGlyph, c)
			}
		}
	}
}

func (g *Game) renderLines(dst *core.Screen) {
	lines := g.engine.Lines()
	for _, l := range lines {
		g.plotLine(dst, l, core.ColorWhite)
	}
	if cur := g.engine.CurrentLine(); cur != nil {
		g.plotLine(dst, cur, core.ColorBrightWhite)
	}
}

// plotLine samples every segment at lineStep intervals.
func (g *Game) plotLine(dst *core.Screen, l *engine.Line, c core.Color) {
	pts := l.Points()
	if len(pts) == 0 {
		return
	}
	plot := func(p engine.Vec2) {
		sx, sy := g.view.toScreen(p)
		if g.view.boardRect().Contains(sx, sy) {
			dst.SetColored(sx, sy, LineGlyph, c)
		}
	}

	plot(pts[0])
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		steps := int(a.Dist(b)/lineStep) + 1
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			plot(a.Add(b.Sub(a).Scale(t)))
		}
	}
}

func (g *Game) renderBalls(dst *core.Screen) {
	for _, b := range g.engine.Balls() {
		if b.Captured {
			continue
		}
		glyph := BallGlyph
		switch {
		case b.Accelerated:
			glyph = FastBallGlyph
		case b.Scale < 0.5:
			glyph = SmallBallGlyph
		}
		sx, sy := g.view.toScreen(b.Pos)
		dst.SetColored(sx, sy, glyph, screenColor(b.Color))
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	e := g.engine
	x, y := g.view.x, g.view.y

	left := fmt.Sprintf("Score:%d  Lv %d/%d", e.Score(), e.LevelIndex()+1, e.LevelCount())
	dst.DrawText(x, y, left)

	timeText := fmt.Sprintf("Time:%d", e.TimeLeft())
	dst.DrawText(x+ViewWidth-len(timeText), y, timeText)

	// Second row: spawn queue on the left, status banner on the right.
	if e.QueueLen() > 0 {
		next := "Next:"
		dst.DrawText(x, y+1, next)
		for i, c := range e.QueuePreview(engine.PreviewSize) {
			dst.SetColored(x+len(next)+i, y+1, BallGlyph, screenColor(c))
		}
		if !e.PostLevel() {
			countdown := fmt.Sprintf("%.1fs", e.SpawnCountdown())
			dst.DrawText(x+len(next)+engine.PreviewSize+1, y+1, countdown)
		}
	}

	if banner, c := g.banner(); banner != "" {
		dst.DrawTextColored(x+ViewWidth-len([]rune(banner)), y+1, banner, c)
	}
}

// banner returns the status text shown in the HUD, if any.
func (g *Game) banner() (string, core.Color) {
	e := g.engine
	switch {
	case e.GameEnded():
		return "=== ENDED ===", core.ColorBrightYellow
	case e.TimeUp():
		return "=== TIME'S UP ===", core.ColorBrightRed
	case e.Paused():
		return "*** PAUSED ***", core.ColorBrightCyan
	case e.PostLevel():
		return "LEVEL CLEAR", core.ColorBrightGreen
	default:
		return "", core.ColorDefault
	}
}
