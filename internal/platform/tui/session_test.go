package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEscape}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestSessionCampaignFlow(t *testing.T) {
	var m tea.Model = NewSessionModel(testEnv(t), testRuntime(""))
	assert.Contains(t, m.View(), "N I W A")

	// First menu entry is the campaign, which opens the level picker.
	m, _ = press(m, enter)
	require.Equal(t, screenLevels, m.(SessionModel).screen)
	assert.Contains(t, m.View(), "Start from Beginning")

	// Pick the second level.
	m, _ = press(m, down, down, enter)
	s := m.(SessionModel)
	require.Equal(t, screenGame, s.screen)
	assert.Equal(t, "02-stepping-stones", s.game.State().Level)

	// Esc goes back to the menu.
	m, _ = press(m, esc)
	assert.Equal(t, screenMenu, m.(SessionModel).screen)
}

func TestSessionGardenSkipsLevelPicker(t *testing.T) {
	var m tea.Model = NewSessionModel(testEnv(t), testRuntime(""))

	m, _ = press(m, down, enter)
	s := m.(SessionModel)
	require.Equal(t, screenGame, s.screen)
	assert.Equal(t, "garden", s.game.State().Level)
}

func TestSessionScoreboard(t *testing.T) {
	var m tea.Model = NewSessionModel(testEnv(t), testRuntime(""))

	m, _ = press(m, tab)
	require.Equal(t, screenScores, m.(SessionModel).screen)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m, cmd := press(m, esc)
	assert.Nil(t, cmd)
	assert.Equal(t, screenMenu, m.(SessionModel).screen)
}

func TestSessionQuit(t *testing.T) {
	var m tea.Model = NewSessionModel(testEnv(t), testRuntime(""))

	m, cmd := press(m, runeKey('q'))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestSessionDirectGameQuitsOnBack(t *testing.T) {
	env := testEnv(t)
	s := NewSessionModel(env, testRuntime(""))
	s = s.launch("niwa", "01-first-light")
	s.direct = true

	m, cmd := press(s, esc)
	assert.NotNil(t, cmd)
	assert.True(t, m.(SessionModel).quitting)
}

func TestSessionResizeReachesGame(t *testing.T) {
	var m tea.Model = NewSessionModel(testEnv(t), testRuntime(""))
	m, _ = press(m, tea.WindowSizeMsg{Width: 100, Height: 30}, enter, enter)

	s := m.(SessionModel)
	require.Equal(t, screenGame, s.screen)
	assert.Equal(t, 100, s.config.ScreenW)
	assert.Equal(t, 29, s.game.screen.Height())
}
