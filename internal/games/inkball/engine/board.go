package engine

import (
	"fmt"
	"math"

	"github.com/kamstrup/intmap"
)

// Board geometry in board units.
const (
	BoardWidth  = 18
	BoardHeight = 18
	CellSize    = 32
	TopBar      = 64
	Width       = BoardWidth * CellSize
	Height      = TopBar + BoardHeight*CellSize
)

// CellTag is the semantic category of one grid square.
type CellTag uint8

const (
	CellEmpty CellTag = iota
	CellWall          // gray wall
	CellWallOrange
	CellWallBlue
	CellWallGreen
	CellWallYellow
	CellHole
	CellAccel
	CellAccelUp
	CellAccelDown
	CellEntry
	CellBallSpawn
)

// String returns a short name for the tag.
func (t CellTag) String() string {
	switch t {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellWallOrange, CellWallBlue, CellWallGreen, CellWallYellow:
		return "wall-" + ColorIndex(t-CellWall).String()
	case CellHole:
		return "hole"
	case CellAccel:
		return "accel"
	case CellAccelUp:
		return "accel-up"
	case CellAccelDown:
		return "accel-down"
	case CellEntry:
		return "entry"
	case CellBallSpawn:
		return "ball"
	default:
		return fmt.Sprintf("tag(%d)", uint8(t))
	}
}

// WallTag returns the wall tag painted in color c. Grey yields a plain wall.
func WallTag(c ColorIndex) CellTag {
	return CellWall + CellTag(c)
}

// Hole is a 2x2 attractor identified by its top-left cell.
type Hole struct {
	Col, Row int
	Color    ColorIndex
}

// Center returns the hole's attraction point, the shared corner of its four cells.
func (h Hole) Center() Vec2 {
	return V(float64((h.Col+1)*CellSize), float64(TopBar+(h.Row+1)*CellSize))
}

// BallSpawn is a ball embedded in a layout.
type BallSpawn struct {
	Pos   Vec2
	Color ColorIndex
}

// Board is the fixed-size cell grid of one level.
// It is populated once per level load; only the sweep cursor mutates it afterwards.
type Board struct {
	cells      [BoardHeight][BoardWidth]CellTag
	holeColors *intmap.Map[int32, ColorIndex]
	holes      []Hole
	entries    []Vec2
	spawns     []BallSpawn
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{
		holeColors: intmap.New[int32, ColorIndex](16),
	}
}

func holeKey(col, row int) int32 {
	return int32(row*BoardWidth + col) //#nosec G115 -- bounded by board size
}

// InBounds reports whether (col, row) lies on the grid.
func InBounds(col, row int) bool {
	return col >= 0 && col < BoardWidth && row >= 0 && row < BoardHeight
}

// CellAt returns the tag at (col, row) or ErrOutOfBounds.
func (b *Board) CellAt(col, row int) (CellTag, error) {
	if !InBounds(col, row) {
		return CellEmpty, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, col, row)
	}
	return b.cells[row][col], nil
}

// tag is the internal lookup; out-of-bounds cells read as empty.
func (b *Board) tag(col, row int) CellTag {
	if !InBounds(col, row) {
		return CellEmpty
	}
	return b.cells[row][col]
}

// IsWall reports whether the cell is a gray or colored wall.
// Cells outside the board are not walls.
func (b *Board) IsWall(col, row int) bool {
	t := b.tag(col, row)
	return t >= CellWall && t <= CellWallYellow
}

// WallColor returns the color of a wall cell. Gray walls report ColorGrey.
// The result is only meaningful when IsWall is true.
func (b *Board) WallColor(col, row int) ColorIndex {
	if !b.IsWall(col, row) {
		return ColorGrey
	}
	return ColorIndex(b.tag(col, row) - CellWall)
}

// IsHole reports whether the cell is part of a hole.
func (b *Board) IsHole(col, row int) bool {
	return b.tag(col, row) == CellHole
}

// HoleColor returns the color registered for the hole whose top-left cell is
// (col, row), or ColorGrey if none is registered there.
func (b *Board) HoleColor(col, row int) ColorIndex {
	if c, ok := b.holeColors.Get(holeKey(col, row)); ok {
		return c
	}
	return ColorGrey
}

// SetCell overwrites one cell. Out-of-bounds writes are ignored.
func (b *Board) SetCell(col, row int, t CellTag) {
	if !InBounds(col, row) {
		return
	}
	b.cells[row][col] = t
}

// addHole stamps the 2x2 block at (col, row) and registers its color at the
// top-left cell. The block must fit on the board. The first registration wins.
func (b *Board) addHole(col, row int, c ColorIndex) {
	if _, exists := b.holeColors.Get(holeKey(col, row)); exists {
		return
	}
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			b.SetCell(col+dx, row+dy, CellHole)
		}
	}
	b.addHoleColor(Hole{Col: col, Row: row, Color: c})
}

// Holes returns the registered holes in layout order.
func (b *Board) Holes() []Hole {
	return b.holes
}

// EntryPoints returns the entry point positions in layout order.
func (b *Board) EntryPoints() []Vec2 {
	return b.entries
}

// BallSpawns returns the balls embedded in the layout.
func (b *Board) BallSpawns() []BallSpawn {
	return b.spawns
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := NewBoard()
	c.cells = b.cells
	for _, h := range b.holes {
		c.addHoleColor(h)
	}
	c.entries = append([]Vec2(nil), b.entries...)
	c.spawns = append([]BallSpawn(nil), b.spawns...)
	return c
}

func (b *Board) addHoleColor(h Hole) {
	b.holes = append(b.holes, h)
	b.holeColors.Put(holeKey(h.Col, h.Row), h.Color)
}

// Equal reports whether two boards have identical cells, holes and entry points.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.cells != o.cells || len(b.holes) != len(o.holes) ||
		len(b.entries) != len(o.entries) || len(b.spawns) != len(o.spawns) {
		return false
	}
	for i := range b.holes {
		if b.holes[i] != o.holes[i] {
			return false
		}
	}
	for i := range b.entries {
		if b.entries[i] != o.entries[i] {
			return false
		}
	}
	for i := range b.spawns {
		if b.spawns[i] != o.spawns[i] {
			return false
		}
	}
	return true
}

// CellOf returns the grid cell containing the board-space point p.
// The result may be out of bounds.
func CellOf(p Vec2) (col, row int) {
	col = int(math.Floor(p.X / CellSize))
	row = int(math.Floor((p.Y - TopBar) / CellSize))
	return col, row
}

// CellOrigin returns the top-left corner of a cell in board units.
func CellOrigin(col, row int) Vec2 {
	return V(float64(col*CellSize), float64(TopBar+row*CellSize))
}
