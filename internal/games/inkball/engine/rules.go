package engine

// ScoreRules holds one level's capture scoring. It is never mutated after load.
type ScoreRules struct {
	Increase         map[ColorIndex]int
	Decrease         map[ColorIndex]int
	IncreaseModifier float64
	DecreaseModifier float64
}

// Matches reports whether a ball of color ball scores positively in a hole
// of color hole. Grey on either side always matches.
func Matches(ball, hole ColorIndex) bool {
	return ball == ColorGrey || hole == ColorGrey || ball == hole
}

// Evaluate returns the score change for a capture and whether the ball must
// be returned to the spawn queue.
func (r ScoreRules) Evaluate(ball, hole ColorIndex) (delta float64, requeue bool) {
	if Matches(ball, hole) {
		return float64(r.Increase[ball]) * r.IncreaseModifier, false
	}
	return -float64(r.Decrease[ball]) * r.DecreaseModifier, true
}
