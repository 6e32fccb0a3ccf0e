package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-inkball/internal/core"
)

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	Pause      key.Binding
	Restart    key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
// Every column holds one binding so the help bar stays a single row.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause}, {k.Restart}, {k.Screenshot}, {k.Help}, {k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p", "esc"),
			key.WithHelp("space/p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// PointerFromMouse translates a mouse message to a pointer event.
// Wheel and middle-button events are ignored. Releases that do not report
// a button count as left releases, since some terminals omit it.
func PointerFromMouse(msg tea.MouseMsg) (core.Pointer, bool) {
	p := core.Pointer{X: msg.X, Y: msg.Y}

	switch msg.Button {
	case tea.MouseButtonLeft:
		p.Button = core.ButtonLeft
	case tea.MouseButtonRight:
		p.Button = core.ButtonRight
	case tea.MouseButtonNone:
		if msg.Action != tea.MouseActionRelease {
			return core.Pointer{}, false
		}
		p.Button = core.ButtonLeft
	default:
		return core.Pointer{}, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		p.Kind = core.PointerPress
	case tea.MouseActionMotion:
		p.Kind = core.PointerDrag
	case tea.MouseActionRelease:
		p.Kind = core.PointerRelease
	default:
		return core.Pointer{}, false
	}
	return p, true
}
