package engine

import (
	"math"
	"time"
)

// Ball physics constants in board units.
const (
	BallRadius      = 12
	SpawnSpeed      = 2
	AttractRadius   = 32
	CaptureDistance = 5
	AccelMultiplier = 1.5
	AccelDuration   = 2 * time.Second

	minAttractForce = 0.01
	maxAttractForce = 0.1
)

var (
	dirUp      = V(0, -1)
	dirDown    = V(0, 1)
	normalX    = V(1, 0)
	normalY    = V(0, 1)
	noDeadline = time.Duration(-1)
)

// CaptureFunc is called exactly once when a ball falls into a hole.
type CaptureFunc func(b *Ball, hole Hole)

// Ball is a moving circle. Once Captured is set it never changes again.
type Ball struct {
	Pos      Vec2
	Vel      Vec2
	Color    ColorIndex
	Radius   float64
	Scale    float64
	Captured bool

	accelFactor   float64
	accelDeadline time.Duration
}

// NewBall creates a ball at pos with the given velocity.
func NewBall(pos, vel Vec2, c ColorIndex) *Ball {
	return &Ball{
		Pos:           pos,
		Vel:           vel,
		Color:         c,
		Radius:        BallRadius,
		Scale:         1,
		accelFactor:   1,
		accelDeadline: noDeadline,
	}
}

// Accelerated reports whether a speed boost is active.
func (b *Ball) Accelerated() bool {
	return b.accelFactor != 1
}

// Update advances the ball by one tick. now is the engine's elapsed
// simulation time, used for the acceleration boost deadline.
func (b *Ball) Update(now time.Duration, board *Board, onCapture CaptureFunc) {
	if b.Captured {
		return
	}

	if b.accelFactor != 1 && now > b.accelDeadline {
		b.accelFactor = 1
	}

	b.Pos = b.Pos.Add(b.Vel.Scale(b.accelFactor))

	col, row := CellOf(b.Pos)
	if InBounds(col, row) {
		if b.attract(board, onCapture) {
			return
		}
		b.accelerate(now, board, col, row)
		if board.IsWall(col, row) {
			b.resolveWall(board, col, row)
		}
	}

	b.reflectBoundary()
}

// attract pulls the ball toward the nearest hole within AttractRadius and
// captures it once close enough. Returns true on capture.
func (b *Ball) attract(board *Board, onCapture CaptureFunc) bool {
	var (
		nearest Hole
		best    = AttractRadius + 1.0
		found   bool
	)
	for _, h := range board.Holes() {
		if d := b.Pos.Dist(h.Center()); d <= AttractRadius && d < best {
			nearest, best, found = h, d, true
		}
	}
	if !found {
		b.Scale = 1
		return false
	}

	center := nearest.Center()
	t := best / AttractRadius // 1 at the rim, 0 at the center
	force := maxAttractForce + (minAttractForce-maxAttractForce)*t
	b.Vel = b.Vel.Add(center.Sub(b.Pos).Normalize().Scale(force))
	b.Scale = t

	if best < CaptureDistance {
		b.Vel = Vec2{}
		b.Captured = true
		if onCapture != nil {
			onCapture(b, nearest)
		}
		return true
	}
	return false
}

// accelerate applies an acceleration zone. The direction marker sits in the
// cell to the right of the zone.
func (b *Ball) accelerate(now time.Duration, board *Board, col, row int) {
	if board.tag(col, row) != CellAccel {
		return
	}
	var dir Vec2
	switch board.tag(col+1, row) {
	case CellAccelUp:
		dir = dirUp
	case CellAccelDown:
		dir = dirDown
	default:
		return
	}
	b.accelFactor = AccelMultiplier
	b.accelDeadline = now + AccelDuration
	b.Vel = dir.Scale(b.Vel.Len())
}

// resolveWall reflects the ball off the wall cell it entered and takes on
// the wall's color.
func (b *Ball) resolveWall(board *Board, col, row int) {
	origin := CellOrigin(col, row)
	distLeft := b.Pos.X - origin.X
	distRight := origin.X + CellSize - b.Pos.X
	distTop := b.Pos.Y - origin.Y
	distBottom := origin.Y + CellSize - b.Pos.Y
	minDist := min(distLeft, distRight, distTop, distBottom)

	corner := (board.IsWall(col-1, row) && board.IsWall(col, row-1)) ||
		(board.IsWall(col+1, row) && board.IsWall(col, row+1))

	switch {
	case corner:
		// Concave corner: bounce straight back.
		b.Vel = b.Vel.Reflect(normalX).Reflect(normalY)
	default:
		vertical := minDist == distLeft || minDist == distRight
		horizontal := minDist == distTop || minDist == distBottom
		switch {
		case vertical && horizontal:
			if math.Abs(b.Vel.X) > math.Abs(b.Vel.Y) {
				b.Vel.X = -b.Vel.X
			} else {
				b.Vel.Y = -b.Vel.Y
			}
		case vertical:
			b.Vel.X = -b.Vel.X
		case horizontal:
			b.Vel.Y = -b.Vel.Y
		}
	}

	if c := board.WallColor(col, row); c != ColorGrey {
		b.Color = c
	}
}

// reflectBoundary keeps the ball inside the play area.
func (b *Ball) reflectBoundary() {
	r := b.Radius
	if b.Pos.X-r < 0 {
		b.Pos.X = r
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.X+r > Width {
		b.Pos.X = Width - r
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.Y-r < TopBar {
		b.Pos.Y = TopBar + r
		b.Vel.Y = -b.Vel.Y
	}
	if b.Pos.Y+r > Height {
		b.Pos.Y = Height - r
		b.Vel.Y = -b.Vel.Y
	}
}

// DeflectOff reflects the ball's velocity across a line normal.
func (b *Ball) DeflectOff(n Vec2) {
	b.Vel = b.Vel.Reflect(n)
}
