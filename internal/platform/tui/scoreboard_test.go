package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-inkball/internal/storage"
)

func TestScoreboardLevelFilter(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("inkball", 300, 2)
	store.SaveScore("inkball", 100, 1)
	store.SaveScore("inkball", 200, 1)

	m := NewScoreboardModel(store, "inkball", []string{"Warm Up", "Up and Down"}, 100, 30)
	if got := len(m.Scores()); got != 3 {
		t.Fatalf("all-levels filter shows %d scores, want 3", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	scores := m.Scores()
	if len(scores) != 2 {
		t.Fatalf("level 1 filter shows %d scores, want 2", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 {
		t.Errorf("level 1 scores = [%d %d], want [200 100]", scores[0].Score, scores[1].Score)
	}
	if !strings.Contains(m.View(), "Warm Up") {
		t.Error("view should name the selected level")
	}

	// Going back from the first filter wraps to the last level
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if len(m.Scores()) != 1 || m.Scores()[0].Level != 2 {
		t.Errorf("level 2 filter = %+v, want one level-2 score", m.Scores())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "inkball", nil, 60, 20)
	if len(m.Scores()) != 0 {
		t.Errorf("expected no scores without a store, got %d", len(m.Scores()))
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty scoreboard should say no scores are recorded")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(ScoreboardModel).IsQuitting() || cmd == nil {
		t.Error("q should quit the scoreboard")
	}
}
