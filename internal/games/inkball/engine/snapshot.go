package engine

import "math"

// Snapshot is the engine state in primitive types, used for determinism
// checks and debugging dumps.
type Snapshot struct {
	Tick       uint64
	Level      int
	Score      int
	TimeLeft   int
	SpawnLeft  int64 // milliseconds
	Paused     bool
	TimeUp     bool
	LevelEnded bool
	PostLevel  bool
	GameEnded  bool

	// Each ball is 6 values: X, Y, VX, VY (as float bits), Color, Captured.
	BallCount int
	BallData  []uint64

	Queue     []int
	LineCount int
	SweepA    Cell
	SweepB    Cell

	// Board cells flattened row-major.
	Cells []int

	RNGState uint64
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	ballData := make([]uint64, 0, len(e.balls)*6)
	for _, b := range e.balls {
		captured := uint64(0)
		if b.Captured {
			captured = 1
		}
		ballData = append(ballData,
			math.Float64bits(b.Pos.X),
			math.Float64bits(b.Pos.Y),
			math.Float64bits(b.Vel.X),
			math.Float64bits(b.Vel.Y),
			uint64(b.Color),
			captured,
		)
	}

	queue := make([]int, len(e.queue))
	for i, c := range e.queue {
		queue[i] = int(c)
	}

	cells := make([]int, 0, BoardWidth*BoardHeight)
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			cells = append(cells, int(e.board.cells[row][col]))
		}
	}

	a, b := e.sweep.Tiles()
	return Snapshot{
		Tick:       e.ticks,
		Level:      e.levelIndex,
		Score:      e.Score(),
		TimeLeft:   e.timeLeft,
		SpawnLeft:  e.spawnLeft.Milliseconds(),
		Paused:     e.paused,
		TimeUp:     e.timeUp,
		LevelEnded: e.levelEnded,
		PostLevel:  e.postLevel,
		GameEnded:  e.gameEnded,
		BallCount:  len(e.balls),
		BallData:   ballData,
		Queue:      queue,
		LineCount:  len(e.lines),
		SweepA:     a,
		SweepB:     b,
		Cells:      cells,
		RNGState:   e.rng.State(),
	}
}

func boolBit(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TimeLeft)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnLeft) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + boolBit(snap.TimeUp)
	h = h*31 + boolBit(snap.LevelEnded)
	h = h*31 + boolBit(snap.PostLevel)
	h = h*31 + boolBit(snap.GameEnded)
	h = h*31 + uint64(snap.BallCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LineCount) //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + v
	}
	for _, v := range snap.Queue {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Cells {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(snap.SweepA.Col*BoardWidth+snap.SweepA.Row) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SweepB.Col*BoardWidth+snap.SweepB.Row) //#nosec G115 -- hash computation
	h = h*31 + snap.RNGState

	return h
}
