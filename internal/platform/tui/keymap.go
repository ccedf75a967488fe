package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/niwa/internal/core"
	"github.com/vovakirdan/niwa/internal/game"
)

// KeyMap translates Bubble Tea key messages to game actions.
// The letter bindings come from the user configuration; arrow keys always
// work as well.
type KeyMap struct {
	North   key.Binding
	East    key.Binding
	South   key.Binding
	West    key.Binding
	Cast    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Restart key.Binding
	Quit    key.Binding
	Help    key.Binding
	Shot    key.Binding
}

// NewKeyMap builds bindings around the configured game keys.
func NewKeyMap(k game.Keys) KeyMap {
	return KeyMap{
		North: key.NewBinding(
			key.WithKeys(string(k.North), "up"),
			key.WithHelp(string(k.North)+"/↑", "north"),
		),
		East: key.NewBinding(
			key.WithKeys(string(k.East), "right"),
			key.WithHelp(string(k.East)+"/→", "east"),
		),
		South: key.NewBinding(
			key.WithKeys(string(k.South), "down"),
			key.WithHelp(string(k.South)+"/↓", "south"),
		),
		West: key.NewBinding(
			key.WithKeys(string(k.West), "left"),
			key.WithHelp(string(k.West)+"/←", "west"),
		),
		Cast: key.NewBinding(
			key.WithKeys(string(k.Cast), " "),
			key.WithHelp(string(k.Cast)+"/space", "cast"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next room"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys(string(k.Quit), "ctrl+c"),
			key.WithHelp(string(k.Quit), "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// DefaultKeyMap uses game.DefaultKeys.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(game.DefaultKeys())
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.North, k.West, k.South, k.East, k.Cast, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.East, k.South, k.West},
		{k.Cast, k.Confirm, k.Restart},
		{k.Back, k.Shot, k.Quit, k.Help},
	}
}

// Action maps a key message to a game action. Keys that are not bound map
// to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.North):
		return core.ActionNorth
	case key.Matches(msg, k.East):
		return core.ActionEast
	case key.Matches(msg, k.South):
		return core.ActionSouth
	case key.Matches(msg, k.West):
		return core.ActionWest
	case key.Matches(msg, k.Cast):
		return core.ActionCast
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MenuAction translates a key to a menu action.
func (k KeyMap) MenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c":
		return MenuActionQuit
	case "k": // vim-style k for up
		return MenuActionUp
	case "j": // vim-style j for down
		return MenuActionDown
	case "tab":
		return MenuActionScoreboard
	}

	switch k.Action(msg) {
	case core.ActionQuit:
		return MenuActionQuit
	case core.ActionNorth:
		return MenuActionUp
	case core.ActionSouth:
		return MenuActionDown
	case core.ActionConfirm, core.ActionCast:
		return MenuActionSelect
	case core.ActionBack:
		return MenuActionBack
	}
	return MenuActionNone
}
