// Package inkball adapts the Inkball engine to the terminal platform:
// configuration loading, input mapping and cell rendering.
package inkball

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-inkball/internal/config"
	"github.com/vovakirdan/tui-inkball/internal/core"
	"github.com/vovakirdan/tui-inkball/internal/games/inkball/engine"
)

// GameID is the identifier used for score storage.
const GameID = "inkball"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel is the 1-based level to start on, 0 for the first.
var startLevel int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParseDifficultyPreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetStartLevel makes new games begin on level n (1-based).
func SetStartLevel(n int) {
	startLevel = n
}

// LoadLevels reads the configured levels with the CLI overrides applied.
func LoadLevels() ([]engine.LevelDescriptor, error) {
	cfg, err := config.LoadInkball(configPath)
	if err != nil {
		return nil, err
	}
	if difficultyPreset != "" {
		config.ApplyInkballPreset(&cfg, difficultyPreset)
	}
	return LevelsFromConfig(cfg)
}

// Option customizes a Game.
type Option func(*Game)

// WithLevels uses the given levels instead of loading the configuration.
func WithLevels(levels []engine.LevelDescriptor) Option {
	return func(g *Game) { g.levels = levels }
}

// WithClock replaces the system clock, mainly for tests.
func WithClock(c engine.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithLogger sets the logger handed to the engine.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Game implements the Inkball game for the terminal platform.
type Game struct {
	engine *engine.Engine
	levels []engine.LevelDescriptor
	clock  engine.Clock
	logger *log.Logger
	err    error

	runtime core.RuntimeConfig
	view    viewport

	// drawing is set between a left press and its release.
	drawing bool
}

// New creates a new Inkball game instance.
func New(opts ...Option) *Game {
	g := &Game{
		clock:  engine.SystemClock{},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Inkball"
}

// Load reads and validates the level configuration. It is called by Reset
// when no levels were supplied; calling it first surfaces config errors
// before the UI starts.
func (g *Game) Load() error {
	if g.levels != nil {
		return nil
	}
	levels, err := LoadLevels()
	if err != nil {
		return err
	}
	g.levels = levels
	return nil
}

// Err returns the error that kept the last Reset from starting a game.
func (g *Game) Err() error {
	return g.err
}

// Reset starts a new game sized to the runtime screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.view = newViewport(runtime.ScreenW, runtime.ScreenH)
	g.drawing = false
	g.err = nil

	if err := g.Load(); err != nil {
		g.logger.Error("cannot load levels", "err", err)
		g.err = err
		g.engine = nil
		return
	}

	eng, err := engine.New(g.levels, engine.Options{
		Clock:  g.clock,
		Seed:   runtime.Seed,
		Logger: g.logger,
	})
	if err != nil {
		g.logger.Error("cannot start engine", "err", err)
		g.err = err
		g.engine = nil
		return
	}

	if startLevel > 1 {
		n := min(startLevel, len(g.levels))
		if err := eng.LoadLevel(n - 1); err != nil {
			g.logger.Warn("cannot start on requested level", "level", startLevel, "err", err)
		}
	}
	g.engine = eng
}

// Resize adapts the screen mapping without touching the game state.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.view = newViewport(w, h)
}

// Step applies one frame of input and advances the engine.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		if err := g.engine.Reset(); err != nil {
			g.logger.Error("cannot restart", "err", err)
		}
		g.drawing = false
	}
	if in.Has(core.ActionPause) {
		g.engine.TogglePause()
	}
	for _, p := range in.Pointers {
		g.handlePointer(p)
	}

	g.engine.Tick()
	return core.StepResult{State: g.State()}
}

// handlePointer maps mouse gestures to line commands: the left button draws,
// the right button erases.
func (g *Game) handlePointer(p core.Pointer) {
	pos, onBoard := g.view.toBoard(p.X, p.Y)

	switch p.Button {
	case core.ButtonLeft:
		switch p.Kind {
		case core.PointerPress:
			if onBoard {
				g.engine.BeginLine(pos)
				g.drawing = true
			}
		case core.PointerDrag:
			if g.drawing && onBoard {
				g.engine.ExtendLine(pos)
			}
		case core.PointerRelease:
			if g.drawing {
				g.engine.CommitLine()
				g.drawing = false
			}
		}
	case core.ButtonRight:
		if p.Kind != core.PointerRelease && onBoard {
			g.engine.EraseNear(pos)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.LevelIndex() + 1,
		GameOver: g.engine.GameEnded(),
		TimeUp:   g.engine.TimeUp(),
		Paused:   g.engine.Paused(),
	}
}

// Engine exposes the underlying engine, or nil before a successful Reset.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Snapshot captures the engine state for determinism checks.
func (g *Game) Snapshot() engine.Snapshot {
	if g.engine == nil {
		return engine.Snapshot{}
	}
	return g.engine.Snapshot()
}
