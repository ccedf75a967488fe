package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/niwa/internal/core"
	"github.com/vovakirdan/niwa/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey('w'), core.ActionNorth},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNorth},
		{"d", runeKey('d'), core.ActionEast},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionEast},
		{"s", runeKey('s'), core.ActionSouth},
		{"a", runeKey('a'), core.ActionWest},
		{"c", runeKey('c'), core.ActionCast},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionCast},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, km.Action(tc.msg))
		})
	}
}

func TestKeyMapFollowsConfiguredKeys(t *testing.T) {
	km := NewKeyMap(game.Keys{North: 'i', East: 'l', South: 'k', West: 'j', Cast: 'f', Quit: 'x'})

	assert.Equal(t, core.ActionNorth, km.Action(runeKey('i')))
	assert.Equal(t, core.ActionCast, km.Action(runeKey('f')))
	assert.Equal(t, core.ActionQuit, km.Action(runeKey('x')))
	assert.Equal(t, core.ActionNone, km.Action(runeKey('w')))
	// Arrows keep working
	assert.Equal(t, core.ActionWest, km.Action(tea.KeyMsg{Type: tea.KeyLeft}))
}

func TestKeyMapMenuActions(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, MenuActionUp, km.MenuAction(runeKey('k')))
	assert.Equal(t, MenuActionUp, km.MenuAction(runeKey('w')))
	assert.Equal(t, MenuActionDown, km.MenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, km.MenuAction(tea.KeyMsg{Type: tea.KeyEscape}))
	assert.Equal(t, MenuActionScoreboard, km.MenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionQuit, km.MenuAction(runeKey('q')))
	assert.Equal(t, MenuActionNone, km.MenuAction(runeKey('d')))
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	assert.NotEmpty(t, km.ShortHelp())
	for _, col := range km.FullHelp() {
		assert.NotEmpty(t, col)
	}
}
