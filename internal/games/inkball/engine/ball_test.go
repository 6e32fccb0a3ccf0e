package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardWith(marks map[Cell]string) *Board {
	rows := blankLayout()
	for c, s := range marks {
		put(rows, c.Col, c.Row, s)
	}
	return ParseLayout(rows, quietLogger())
}

func TestBallReflectsOffVerticalWallFace(t *testing.T) {
	board := boardWith(map[Cell]string{{5, 5}: "X"})
	b := NewBall(V(158, 240), V(2, 0.5), ColorBlue)

	b.Update(0, board, nil)

	assert.Equal(t, V(160, 240.5), b.Pos)
	assert.Equal(t, V(-2, 0.5), b.Vel)
	assert.Equal(t, ColorBlue, b.Color, "gray walls keep the ball color")
}

func TestBallReflectsOffHorizontalWallFace(t *testing.T) {
	board := boardWith(map[Cell]string{{5, 5}: "X"})
	b := NewBall(V(176, 222), V(0.5, 2), ColorGrey)

	b.Update(0, board, nil)

	assert.Equal(t, V(0.5, -2), b.Vel)
}

func TestBallBouncesBackOutOfCorner(t *testing.T) {
	board := boardWith(map[Cell]string{
		{5, 5}: "X",
		{4, 5}: "X",
		{5, 4}: "X",
	})
	b := NewBall(V(158, 222), V(2, 2), ColorGrey)

	b.Update(0, board, nil)

	assert.Equal(t, V(-2, -2), b.Vel)
}

func TestBallTakesWallColor(t *testing.T) {
	board := boardWith(map[Cell]string{{5, 5}: "3"})
	b := NewBall(V(158, 240), V(2, 0.5), ColorOrange)

	b.Update(0, board, nil)

	assert.Equal(t, ColorGreen, b.Color)
	assert.Equal(t, V(-2, 0.5), b.Vel)
}

func TestBallClampedToPlayArea(t *testing.T) {
	board := NewBoard()

	left := NewBall(V(13, 300), V(-3, 0), ColorGrey)
	left.Update(0, board, nil)
	assert.Equal(t, V(BallRadius, 300), left.Pos)
	assert.Equal(t, V(3, 0), left.Vel)

	top := NewBall(V(300, 78), V(0, -3), ColorGrey)
	top.Update(0, board, nil)
	assert.Equal(t, V(300, TopBar+BallRadius), top.Pos)
	assert.Equal(t, V(0, 3), top.Vel)

	right := NewBall(V(Width-13, 300), V(3, 0), ColorGrey)
	right.Update(0, board, nil)
	assert.Equal(t, V(Width-BallRadius, 300), right.Pos)
	assert.Equal(t, V(-3, 0), right.Vel)

	bottom := NewBall(V(300, Height-13), V(0, 3), ColorGrey)
	bottom.Update(0, board, nil)
	assert.Equal(t, V(300, Height-BallRadius), bottom.Pos)
	assert.Equal(t, V(0, -3), bottom.Vel)
}

func TestBallAttractedTowardHole(t *testing.T) {
	board := boardWith(map[Cell]string{{8, 8}: "H0"})
	center := board.Holes()[0].Center()
	require.Equal(t, V(288, 352), center)

	b := NewBall(V(288, 372), Vec2{}, ColorGrey)
	b.Update(0, board, nil)

	assert.False(t, b.Captured)
	assert.InDelta(t, 20.0/32.0, b.Scale, 1e-9)
	assert.InDelta(t, 0, b.Vel.X, 1e-9)
	assert.InDelta(t, -0.04375, b.Vel.Y, 1e-9)

	far := NewBall(V(100, 500), Vec2{}, ColorGrey)
	far.Scale = 0.3
	far.Update(0, board, nil)
	assert.Equal(t, 1.0, far.Scale)
	assert.Equal(t, Vec2{}, far.Vel)
}

func TestBallCapturedExactlyOnce(t *testing.T) {
	board := boardWith(map[Cell]string{{8, 8}: "H2"})
	var captures []Hole
	onCapture := func(_ *Ball, h Hole) { captures = append(captures, h) }

	b := NewBall(V(288, 354), V(0, -1), ColorBlue)
	b.Update(0, board, onCapture)

	require.True(t, b.Captured)
	assert.Equal(t, Vec2{}, b.Vel)
	require.Len(t, captures, 1)
	assert.Equal(t, ColorBlue, captures[0].Color)

	pos := b.Pos
	for i := 0; i < 5; i++ {
		b.Update(time.Duration(i)*time.Second, board, onCapture)
	}
	assert.True(t, b.Captured)
	assert.Equal(t, pos, b.Pos)
	assert.Len(t, captures, 1)
}

func TestBallAccelerationZone(t *testing.T) {
	board := boardWith(map[Cell]string{{3, 5}: "AU"})
	b := NewBall(V(112, 240), V(2, 0), ColorGrey)

	b.Update(0, board, nil)
	require.True(t, b.Accelerated())
	assert.Equal(t, V(0, -2), b.Vel)

	y := b.Pos.Y
	b.Update(time.Second, board, nil)
	assert.InDelta(t, y-3, b.Pos.Y, 1e-9, "boost multiplies displacement")

	// Out of the zone, the boost wears off after AccelDuration.
	b.Pos = V(300, 400)
	b.Update(10*time.Second, board, nil)
	assert.False(t, b.Accelerated())
	assert.Equal(t, V(300, 398), b.Pos)
}

func TestBallAccelerationZoneDown(t *testing.T) {
	board := boardWith(map[Cell]string{{3, 5}: "AD"})
	b := NewBall(V(112, 240), V(-2, 0), ColorGrey)

	b.Update(0, board, nil)

	assert.True(t, b.Accelerated())
	assert.Equal(t, V(0, 2), b.Vel)
}
