package engine

import (
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLayout populates a board from layout text rows.
//
// Cell characters:
//
//	' '      empty
//	'X'      gray wall
//	'1'-'4'  colored wall
//	'S'      entry point
//	"B<d>"   ball of color d (the digit cell stays empty)
//	"H<d>"   top-left of a 2x2 hole of color d
//	"AU"     acceleration zone pushing up ("AD" pushes down)
//
// Rows and columns past the board size are dropped. Markers missing their
// lookahead character, and holes whose 2x2 block would cross the board edge,
// become empty cells and are reported as warnings.
// Parsing never fails: malformed layouts load as far as they make sense.
func ParseLayout(lines []string, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.Default()
	}
	b := NewBoard()

	for y := 0; y < len(lines) && y < BoardHeight; y++ {
		line := strings.TrimRight(lines[y], "\r\n")

		for x := 0; x < len(line) && x < BoardWidth; x++ {
			// Cells already claimed by a hole stamped from the row above keep their tag.
			if b.cells[y][x] == CellHole {
				if line[x] == 'H' || line[x] == 'A' || line[x] == 'B' {
					x++
				}
				continue
			}

			ch := line[x]
			switch ch {
			case ' ', '.':
				b.cells[y][x] = CellEmpty

			case 'X':
				b.cells[y][x] = CellWall

			case '1', '2', '3', '4':
				c, _ := ColorFromDigit(ch)
				b.cells[y][x] = WallTag(c)

			case 'S':
				b.cells[y][x] = CellEntry
				b.entries = append(b.entries, CellOrigin(x, y))

			case 'B':
				c, ok := lookaheadColor(line, x)
				if !ok {
					logger.Warn("layout: ball marker without color", "col", x, "row", y)
					b.cells[y][x] = CellEmpty
					continue
				}
				b.cells[y][x] = CellBallSpawn
				b.spawns = append(b.spawns, BallSpawn{Pos: CellOrigin(x, y), Color: c})
				x++

			case 'H':
				c, ok := lookaheadColor(line, x)
				if !ok {
					logger.Warn("layout: hole marker without color", "col", x, "row", y)
					b.cells[y][x] = CellEmpty
					continue
				}
				if x+1 >= BoardWidth || y+1 >= BoardHeight {
					logger.Warn("layout: hole does not fit on the board", "col", x, "row", y)
					b.cells[y][x] = CellEmpty
					x++
					continue
				}
				b.addHole(x, y, c)
				x++

			case 'A':
				if x+1 >= len(line) || (line[x+1] != 'U' && line[x+1] != 'D') {
					logger.Warn("layout: acceleration marker without direction", "col", x, "row", y)
					b.cells[y][x] = CellEmpty
					continue
				}
				b.cells[y][x] = CellAccel
				dir := CellAccelUp
				if line[x+1] == 'D' {
					dir = CellAccelDown
				}
				b.SetCell(x+1, y, dir)
				x++

			default:
				// 'U'/'D' are only meaningful after 'A'.
				if ch != 'U' && ch != 'D' {
					logger.Debug("layout: unknown cell", "char", string(ch), "col", x, "row", y)
				}
				b.cells[y][x] = CellEmpty
			}
		}
	}

	if len(lines) > BoardHeight {
		logger.Warn("layout: extra rows ignored", "rows", len(lines), "max", BoardHeight)
	}
	return b
}

// lookaheadColor reads the color digit following position x.
func lookaheadColor(line string, x int) (ColorIndex, bool) {
	if x+1 >= len(line) {
		return ColorGrey, false
	}
	return ColorFromDigit(line[x+1])
}
