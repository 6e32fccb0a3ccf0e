package engine

// Cell is a grid coordinate.
type Cell struct {
	Col, Row int
}

// perimeter lists the border cells clockwise starting at the top-left corner:
// top edge left to right, right edge downwards, bottom edge right to left,
// left edge upwards.
func perimeter(w, h int) []Cell {
	ring := make([]Cell, 0, 2*(w+h)-4)
	for x := 0; x < w; x++ {
		ring = append(ring, Cell{x, 0})
	}
	for y := 1; y < h; y++ {
		ring = append(ring, Cell{w - 1, y})
	}
	for x := w - 2; x >= 0; x-- {
		ring = append(ring, Cell{x, h - 1})
	}
	for y := h - 2; y > 0; y-- {
		ring = append(ring, Cell{0, y})
	}
	return ring
}

// Sweep is the two-slot yellow tile cursor that runs around the board edge
// after a level is cleared. The first tile travels clockwise from the
// top-left corner, the second counter-clockwise from the bottom-right corner.
type Sweep struct {
	ring []Cell
	a, b int
}

// NewSweep creates a cursor with both tiles at their home corners.
func NewSweep() *Sweep {
	s := &Sweep{ring: perimeter(BoardWidth, BoardHeight)}
	s.Home()
	return s
}

// Home returns both tiles to their starting corners.
func (s *Sweep) Home() {
	s.a = 0
	s.b = BoardWidth - 1 + BoardHeight - 1
}

// Tiles returns the current positions of both tiles.
func (s *Sweep) Tiles() (Cell, Cell) {
	return s.ring[s.a], s.ring[s.b]
}

// Step moves both tiles one cell, repainting the cells they leave as gray
// walls and the cells they enter as yellow walls.
func (s *Sweep) Step(board *Board) {
	n := len(s.ring)
	a, b := s.Tiles()
	board.SetCell(a.Col, a.Row, CellWall)
	board.SetCell(b.Col, b.Row, CellWall)

	s.a = (s.a + 1) % n
	s.b = (s.b - 1 + n) % n

	a, b = s.Tiles()
	board.SetCell(a.Col, a.Row, CellWallYellow)
	board.SetCell(b.Col, b.Row, CellWallYellow)
}
