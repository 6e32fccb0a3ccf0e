package engine

// LineThickness is the stroke width of a drawn line and the erase radius.
const LineThickness = 10

// collisionBuffer shrinks the ellipse test so grazing contacts do not count.
const collisionBuffer = 0.1

// Line is a player-drawn polyline obstacle. It is destroyed by the first
// ball that hits any of its segments.
type Line struct {
	points []Vec2
}

// NewLine starts a line at p.
func NewLine(p Vec2) *Line {
	return &Line{points: []Vec2{p}}
}

// Add appends a point to the line.
func (l *Line) Add(p Vec2) {
	l.points = append(l.points, p)
}

// Points returns the line's points in drawing order.
func (l *Line) Points() []Vec2 {
	return l.points
}

// Len returns the number of points.
func (l *Line) Len() int {
	return len(l.points)
}

// HitTest reports whether p lies within thickness of any segment.
// A single-point line is tested against that point.
func (l *Line) HitTest(p Vec2, thickness float64) bool {
	if len(l.points) == 1 {
		return p.Dist(l.points[0]) <= thickness
	}
	for i := 1; i < len(l.points); i++ {
		if distToSegment(p, l.points[i-1], l.points[i]) <= thickness {
			return true
		}
	}
	return false
}

// NearPoint reports whether any of the line's points lies closer than radius to p.
func (l *Line) NearPoint(p Vec2, radius float64) bool {
	for _, q := range l.points {
		if p.Dist(q) < radius {
			return true
		}
	}
	return false
}

// distToSegment returns the distance from p to segment ab.
// Zero-length segments fall back to the distance to a.
func distToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Dist(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return p.Dist(a.Add(ab.Scale(t)))
}

// CollidesWithMovingCircle tests a circle at pos moving by vel against every
// segment of the line. It returns the unit normal of the first segment the
// circle's next position falls inside of, or false. Nothing is mutated.
func (l *Line) CollidesWithMovingCircle(pos, vel Vec2, radius float64) (Vec2, bool) {
	for i := 1; i < len(l.points); i++ {
		if n, ok := segmentCollision(l.points[i-1], l.points[i], pos, vel, radius); ok {
			return n, true
		}
	}
	return Vec2{}, false
}

// segmentCollision applies the ellipse test: the next position is "on" the
// segment when the sum of its distances to both endpoints does not exceed the
// segment length plus the radius.
func segmentCollision(a, b, pos, vel Vec2, radius float64) (Vec2, bool) {
	length := a.Dist(b)
	if length == 0 {
		return Vec2{}, false
	}
	next := pos.Add(vel)
	if next.Dist(a)+next.Dist(b) > length+radius-collisionBuffer {
		return Vec2{}, false
	}

	d := b.Sub(a)
	n1 := V(d.Y, -d.X).Normalize()
	n2 := V(-d.Y, d.X).Normalize()
	mid := a.Add(b).Scale(0.5)
	// Pick the normal on the ball's side of the segment.
	if mid.Add(n1).Dist(pos) < mid.Add(n2).Dist(pos) {
		return n1, true
	}
	return n2, true
}

// Lines is the set of committed line obstacles, oldest first.
type Lines []*Line

// Remove returns the set without the line at index i.
func (ls Lines) Remove(i int) Lines {
	if i < 0 || i >= len(ls) {
		return ls
	}
	return append(ls[:i], ls[i+1:]...)
}
