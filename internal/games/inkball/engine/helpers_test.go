package engine

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// blankLayout returns BoardHeight rows of spaces.
func blankLayout() []string {
	rows := make([]string, BoardHeight)
	for i := range rows {
		rows[i] = strings.Repeat(" ", BoardWidth)
	}
	return rows
}

// put writes s into rows starting at (col, row).
func put(rows []string, col, row int, s string) {
	r := []byte(rows[row])
	for len(r) < col+len(s) {
		r = append(r, ' ')
	}
	copy(r[col:], s)
	rows[row] = string(r)
}

func testRules() ScoreRules {
	return ScoreRules{
		Increase: map[ColorIndex]int{
			ColorGrey: 70, ColorOrange: 50, ColorBlue: 50, ColorGreen: 50, ColorYellow: 100,
		},
		Decrease: map[ColorIndex]int{
			ColorGrey: 0, ColorOrange: 25, ColorBlue: 25, ColorGreen: 25, ColorYellow: 100,
		},
		IncreaseModifier: 1,
		DecreaseModifier: 1,
	}
}

func testLevel(layout []string, balls ...ColorIndex) LevelDescriptor {
	return LevelDescriptor{
		Time:          120,
		SpawnInterval: 10,
		Rules:         testRules(),
		Balls:         balls,
		Layout:        layout,
	}
}

func newTestEngine(levels ...LevelDescriptor) (*Engine, *ManualClock, error) {
	clock := NewManualClock(testStart)
	e, err := New(levels, Options{Clock: clock, Seed: 42, Logger: quietLogger()})
	return e, clock, err
}

// step advances the clock by d and runs one tick.
func step(e *Engine, clock *ManualClock, d time.Duration) {
	clock.Advance(d)
	e.Tick()
}
