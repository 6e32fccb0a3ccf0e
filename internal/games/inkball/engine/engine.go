// Package engine implements the Inkball simulation: ball physics against
// walls, holes, acceleration zones and player-drawn lines, plus the level
// lifecycle (spawning, scoring, post-level sweep, level advance, game end).
//
// The engine is single-threaded. All commands and Tick must be called from
// one goroutine; it never blocks and never sleeps. Time comes from a Clock
// and is only accumulated while the game is unpaused.
package engine

import (
	"time"

	"github.com/charmbracelet/log"
)

// Lifecycle timing.
const (
	PostLevelStep = 67 * time.Millisecond
	PreviewSize   = 5
)

// LevelDescriptor is one already-parsed level.
type LevelDescriptor struct {
	Name          string
	Time          int // seconds
	SpawnInterval int // seconds
	Rules         ScoreRules
	Balls         []ColorIndex
	Layout        []string
}

// Validate reports the first missing or malformed field of level i.
func (d LevelDescriptor) Validate(i int) error {
	switch {
	case d.Time <= 0:
		return &ConfigError{Level: i, Field: "time"}
	case d.SpawnInterval <= 0:
		return &ConfigError{Level: i, Field: "spawn_interval"}
	case len(d.Layout) == 0:
		return &ConfigError{Level: i, Field: "layout"}
	}
	return nil
}

// Options configures a new Engine.
type Options struct {
	Clock  Clock       // defaults to SystemClock
	Seed   int64       // RNG seed for spawn positions and velocities
	Logger *log.Logger // defaults to log.Default()
}

// BallView is the read-only view of a ball handed to renderers.
type BallView struct {
	Pos         Vec2
	Color       ColorIndex
	Scale       float64
	Captured    bool
	Accelerated bool
}

// Engine is the level state machine.
type Engine struct {
	levels     []LevelDescriptor
	levelIndex int

	board   *Board
	rules   ScoreRules
	balls   []*Ball
	queue   []ColorIndex
	lines   Lines
	current *Line

	timeLeft      int
	spawnInterval time.Duration
	spawnLeft     time.Duration
	score         float64

	paused     bool
	timeUp     bool
	levelEnded bool
	postLevel  bool
	gameEnded  bool

	sweep  *Sweep
	rng    *RNG
	clock  Clock
	logger *log.Logger

	lastTick  time.Time
	elapsed   time.Duration // unpaused simulation time
	secondAcc time.Duration
	bonusAcc  time.Duration
	ticks     uint64
}

// New validates every level and loads the first one.
// No level is started if any descriptor is invalid.
func New(levels []LevelDescriptor, opts Options) (*Engine, error) {
	if len(levels) == 0 {
		return nil, &ConfigError{Level: 0, Field: "levels"}
	}
	for i, lvl := range levels {
		if err := lvl.Validate(i); err != nil {
			return nil, err
		}
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	e := &Engine{
		levels: levels,
		sweep:  NewSweep(),
		rng:    NewRNG(opts.Seed),
		clock:  opts.Clock,
		logger: opts.Logger,
	}
	if err := e.LoadLevel(0); err != nil {
		return nil, err
	}
	return e, nil
}

// LoadLevel replaces the board, balls, lines, rules and spawn queue with
// level i. Score and sweep positions carry over.
func (e *Engine) LoadLevel(i int) error {
	if i < 0 || i >= len(e.levels) {
		return &ConfigError{Level: i, Field: "levels"}
	}
	lvl := e.levels[i]
	if err := lvl.Validate(i); err != nil {
		return err
	}

	e.levelIndex = i
	e.board = ParseLayout(lvl.Layout, e.logger)
	e.rules = lvl.Rules
	e.timeLeft = lvl.Time
	e.spawnInterval = time.Duration(lvl.SpawnInterval) * time.Second
	e.spawnLeft = e.spawnInterval
	e.queue = append(e.queue[:0], lvl.Balls...)
	e.lines = nil
	e.current = nil
	e.timeUp = false
	e.levelEnded = false
	e.postLevel = false

	e.balls = e.balls[:0]
	for _, s := range e.board.BallSpawns() {
		e.balls = append(e.balls, NewBall(s.Pos, e.randomVelocity(), s.Color))
	}

	e.lastTick = e.clock.Now()
	e.secondAcc = 0
	e.bonusAcc = 0

	e.logger.Debug("level loaded",
		"level", i+1,
		"time", lvl.Time,
		"spawn_interval", lvl.SpawnInterval,
		"queue", len(e.queue),
		"holes", len(e.board.Holes()),
		"entries", len(e.board.EntryPoints()),
	)

	// The first queued ball enters immediately.
	e.spawnNext()
	return nil
}

// Reset restarts the game from level 1 with a zero score.
func (e *Engine) Reset() error {
	e.score = 0
	e.gameEnded = false
	e.sweep.Home()
	return e.LoadLevel(0)
}

// TogglePause flips the pause flag. Pausing freezes every timer and all
// ball motion; lines can still be drawn and erased.
func (e *Engine) TogglePause() {
	e.paused = !e.paused
}

// BeginLine starts a new line at p, discarding any unfinished one.
// The press point is the first vertex, so a click without a drag still
// commits a one-point line.
func (e *Engine) BeginLine(p Vec2) {
	e.current = NewLine(p)
}

// ExtendLine adds p to the line being drawn.
func (e *Engine) ExtendLine(p Vec2) {
	if e.current != nil {
		e.current.Add(p)
	}
}

// CommitLine turns the line being drawn into an obstacle.
func (e *Engine) CommitLine() {
	if e.current == nil {
		return
	}
	e.lines = append(e.lines, e.current)
	e.current = nil
}

// EraseNear removes every line with a point closer than LineThickness to p.
// Returns the number of lines removed.
func (e *Engine) EraseNear(p Vec2) int {
	kept := e.lines[:0]
	for _, l := range e.lines {
		if !l.NearPoint(p, LineThickness) {
			kept = append(kept, l)
		}
	}
	removed := len(e.lines) - len(kept)
	for i := len(kept); i < len(e.lines); i++ {
		e.lines[i] = nil
	}
	e.lines = kept
	return removed
}

// Tick advances the simulation by the time elapsed since the previous tick.
func (e *Engine) Tick() {
	now := e.clock.Now()
	dt := now.Sub(e.lastTick)
	e.lastTick = now
	if dt < 0 {
		dt = 0
	}
	e.ticks++

	if e.paused || e.gameEnded || e.timeUp {
		return
	}
	e.elapsed += dt

	if e.levelEnded && e.postLevel {
		e.tickPostLevel(dt)
		return
	}
	e.tickRunning(dt)
}

func (e *Engine) tickRunning(dt time.Duration) {
	e.dropCaptured()
	for _, b := range e.balls {
		b.Update(e.elapsed, e.board, e.capture)
	}

	e.secondAcc += dt
	for e.secondAcc >= time.Second && e.timeLeft > 0 {
		e.secondAcc -= time.Second
		e.timeLeft--
	}
	if e.timeLeft <= 0 {
		e.timeLeft = 0
		e.timeUp = true
		e.logger.Info("time is up", "level", e.levelIndex+1, "score", e.Score())
		return
	}

	// The countdown runs even with an empty queue, so a requeued ball
	// comes back when the current interval runs out.
	e.spawnLeft -= dt
	if e.spawnLeft <= 0 {
		e.spawnNext()
		e.spawnLeft = e.spawnInterval
	}

	e.collideLines()

	if len(e.queue) == 0 && len(e.balls) == 0 && !e.postLevel {
		e.levelEnded = true
		e.postLevel = true
		e.bonusAcc = 0
		e.logger.Debug("level cleared", "level", e.levelIndex+1, "time_left", e.timeLeft)
	}
}

// tickPostLevel converts remaining time into score while the yellow tiles
// sweep the border, then advances to the next level or ends the game.
func (e *Engine) tickPostLevel(dt time.Duration) {
	e.bonusAcc += dt
	for e.bonusAcc >= PostLevelStep {
		e.bonusAcc -= PostLevelStep
		if e.timeLeft > 0 {
			e.score++
			e.timeLeft--
		}
		e.sweep.Step(e.board)
	}

	if e.timeLeft > 0 {
		return
	}
	e.postLevel = false
	if e.levelIndex >= len(e.levels)-1 {
		e.gameEnded = true
		e.logger.Info("game ended", "score", e.Score())
		return
	}
	if err := e.LoadLevel(e.levelIndex + 1); err != nil {
		// Descriptors were validated in New, so this only trips on misuse.
		e.logger.Error("cannot load next level", "err", err)
		e.gameEnded = true
	}
}

func (e *Engine) dropCaptured() {
	kept := e.balls[:0]
	for _, b := range e.balls {
		if !b.Captured {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(e.balls); i++ {
		e.balls[i] = nil
	}
	e.balls = kept
}

// collideLines bounces every ball off the lines it hits, newest line first.
// Each line that is hit is consumed.
func (e *Engine) collideLines() {
	for _, b := range e.balls {
		if b.Captured {
			continue
		}
		for i := len(e.lines) - 1; i >= 0; i-- {
			if n, ok := e.lines[i].CollidesWithMovingCircle(b.Pos, b.Vel, b.Radius); ok {
				b.DeflectOff(n)
				e.lines = e.lines.Remove(i)
			}
		}
	}
}

// capture scores a ball that fell into a hole. Mismatched balls go back to
// the end of the spawn queue in their own color.
func (e *Engine) capture(b *Ball, h Hole) {
	delta, requeue := e.rules.Evaluate(b.Color, h.Color)
	e.score += delta
	if requeue {
		e.queue = append(e.queue, b.Color)
	}
	e.logger.Debug("ball captured",
		"ball", b.Color.String(),
		"hole", h.Color.String(),
		"delta", delta,
		"requeued", requeue,
	)
}

// spawnNext pops the next queued color and drops a ball at a random entry
// point. Nothing happens if the queue is empty or the level has no entry points.
func (e *Engine) spawnNext() {
	entries := e.board.EntryPoints()
	if len(e.queue) == 0 || len(entries) == 0 {
		return
	}
	c := e.queue[0]
	e.queue = e.queue[1:]

	entry := entries[e.rng.Intn(len(entries))]
	pos := entry.Add(V(CellSize/2, CellSize/2))
	e.balls = append(e.balls, NewBall(pos, e.randomVelocity(), c))
}

func (e *Engine) randomVelocity() Vec2 {
	return V(e.rng.Sign()*SpawnSpeed, e.rng.Sign()*SpawnSpeed)
}

// Score returns the current score truncated to an integer.
func (e *Engine) Score() int {
	return int(e.score)
}

// TimeLeft returns the remaining level time in seconds.
func (e *Engine) TimeLeft() int {
	return e.timeLeft
}

// SpawnCountdown returns the seconds until the next spawn.
func (e *Engine) SpawnCountdown() float64 {
	return e.spawnLeft.Seconds()
}

// Balls returns a snapshot of the active balls.
func (e *Engine) Balls() []BallView {
	out := make([]BallView, 0, len(e.balls))
	for _, b := range e.balls {
		out = append(out, BallView{
			Pos:         b.Pos,
			Color:       b.Color,
			Scale:       b.Scale,
			Captured:    b.Captured,
			Accelerated: b.Accelerated(),
		})
	}
	return out
}

// QueueLen returns the number of balls waiting to spawn.
func (e *Engine) QueueLen() int {
	return len(e.queue)
}

// QueuePreview returns up to n upcoming spawn colors.
func (e *Engine) QueuePreview(n int) []ColorIndex {
	n = min(n, len(e.queue))
	return append([]ColorIndex(nil), e.queue[:n]...)
}

// Lines returns the committed line obstacles. Callers must not modify them.
func (e *Engine) Lines() Lines {
	return e.lines
}

// CurrentLine returns the line being drawn, or nil.
func (e *Engine) CurrentLine() *Line {
	return e.current
}

// Board returns the current level's board. Callers must not modify it.
func (e *Engine) Board() *Board {
	return e.board
}

// SweepTiles returns the positions of the two yellow sweep tiles.
func (e *Engine) SweepTiles() (Cell, Cell) {
	return e.sweep.Tiles()
}

func (e *Engine) Paused() bool     { return e.paused }
func (e *Engine) TimeUp() bool     { return e.timeUp }
func (e *Engine) LevelEnded() bool { return e.levelEnded }
func (e *Engine) PostLevel() bool  { return e.postLevel }
func (e *Engine) GameEnded() bool  { return e.gameEnded }
func (e *Engine) LevelIndex() int  { return e.levelIndex }
func (e *Engine) LevelCount() int  { return len(e.levels) }

// Level returns the descriptor of the current level.
func (e *Engine) Level() LevelDescriptor {
	return e.levels[e.levelIndex]
}
