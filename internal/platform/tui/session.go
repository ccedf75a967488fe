package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/niwa/internal/config"
	"github.com/vovakirdan/niwa/internal/core"
	"github.com/vovakirdan/niwa/internal/games/niwa"
	"github.com/vovakirdan/niwa/internal/levels"
	"github.com/vovakirdan/niwa/internal/registry"
)

type screen int

const (
	screenMenu screen = iota
	screenLevels
	screenGame
	screenScores
)

// SessionModel manages the full flow: menu -> level picker -> game ->
// menu, with the scoreboard reachable from the menu. It serves both local
// play and SSH sessions.
type SessionModel struct {
	env      Env
	config   core.RuntimeConfig
	keys     KeyMap
	theme    Theme
	screen   screen
	menu     MenuModel
	levels   LevelMenuModel
	scores   ScoreboardModel
	game     *GameModel
	direct   bool // started straight into a game; leaving it quits
	quitting bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(env Env, cfg core.RuntimeConfig) SessionModel {
	keys := env.keyMap()
	theme := env.theme()
	return SessionModel{
		env:    env,
		config: cfg,
		keys:   keys,
		theme:  theme,
		menu:   NewMenuModel(keys, theme, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenLevels:
		return m.updateLevels(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) toMenu() SessionModel {
	m.screen = screenMenu
	m.game = nil
	m.menu = NewMenuModel(m.keys, m.theme, m.config)
	return m
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.env.Store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().GameID
		if id == niwa.CampaignID {
			if lvls, err := m.catalog().LoadAll(); err == nil && len(lvls) > 0 {
				m.screen = screenLevels
				m.levels = NewLevelMenuModel(lvls, m.keys, m.theme, m.config.ScreenW, m.config.ScreenH)
				return m, nil
			}
		}
		return m.launch(id, ""), nil
	}

	return m, cmd
}

func (m SessionModel) catalog() *levels.Catalog {
	dir := m.env.Config.Levels.Dir
	if expanded, err := config.ExpandHome(dir); err == nil {
		dir = expanded
	}
	return levels.NewCatalog(dir)
}

func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLevels, cmd := m.levels.Update(msg)
	if lm, ok := newLevels.(LevelMenuModel); ok {
		m.levels = lm
	}

	switch {
	case m.levels.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.levels.WantsBack():
		return m.toMenu(), nil
	case m.levels.Selected() != nil:
		return m.launch(niwa.CampaignID, m.levels.Selected().Level), nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if sm, ok := newScores.(ScoreboardModel); ok {
		m.scores = sm
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu(), nil
	}
	return m, cmd
}

// launch creates and starts a game. Failures log and return to the menu.
func (m SessionModel) launch(gameID, level string) SessionModel {
	g, err := registry.CreateConfigured(gameID, m.env.Config)
	if err != nil {
		m.env.logger().Error("Could not start game", "game", gameID, "error", err)
		return m.toMenu()
	}
	cfg := m.config
	cfg.Level = level
	return m.startGame(g, cfg, false)
}

func (m SessionModel) startGame(g registry.Game, cfg core.RuntimeConfig, direct bool) SessionModel {
	gm := NewGameModel(g, m.env, cfg)
	m.game = &gm
	m.screen = screenGame
	m.direct = direct
	return m
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		if m.direct {
			m.quitting = true
			return m, tea.Quit
		}
		return m.toMenu(), nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenLevels:
		return m.levels.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session locally.
func RunSession(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(env, cfg),
		tea.WithAltScreen(),
	)
	var err error
	trackSession(env.Metrics, func() {
		_, err = p.Run()
	})
	return err
}
