package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/niwa/internal/config"
	"github.com/vovakirdan/niwa/internal/core"
	"github.com/vovakirdan/niwa/internal/logging"
	"github.com/vovakirdan/niwa/internal/metrics"
	"github.com/vovakirdan/niwa/internal/registry"
	"github.com/vovakirdan/niwa/internal/storage"
)

// Env carries the shared services a terminal session uses. Store and
// Metrics may be nil.
type Env struct {
	Config  config.Config
	Store   *storage.Store
	Metrics *metrics.Recorder
	Logger  *log.Logger
	Theme   Theme
	Player  string // SSH user, empty for local play
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return logging.Discard()
	}
	return e.Logger
}

func (e Env) keyMap() KeyMap {
	keys, err := e.Config.Keys.GameKeys()
	if err != nil {
		return DefaultKeyMap()
	}
	return NewKeyMap(keys)
}

func (e Env) theme() Theme {
	if e.Theme.Cells == nil {
		return DefaultTheme()
	}
	return e.Theme
}

// GameModel is the Bubble Tea model that runs one game. Play is turn
// based: every key press is one Step, and there is no tick loop.
type GameModel struct {
	env        Env
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	theme      Theme
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model and resets the game. The game is reset here
// rather than in Init because Init has a value receiver.
func NewGameModel(game registry.Game, env Env, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		env:    env,
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config: cfg,
		keys:   env.keyMap(),
		help:   help.New(),
		theme:  env.theme(),
	}
	m.help.Width = cfg.ScreenW

	game.Reset(cfg)
	m.gameState = game.State()
	env.logger().Info("Game started", "game", game.ID(), "level", m.gameState.Level, "player", env.Player)
	return m
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.finish()
		m.backToMenu = true
		return m, nil
	}

	result := m.game.Step(core.NewInputFrame(action))
	m.record(result.Events)

	for _, e := range result.Events {
		if e.Kind == core.EventCleared {
			m.saveRun(result.State, true)
		}
		if e.Kind == core.EventLevelLoaded {
			m.scoreSaved = false
		}
	}
	m.gameState = result.State
	return m, nil
}

// record feeds step events to the logger and metrics.
func (m GameModel) record(events []core.Event) {
	logger := m.env.logger()
	for _, e := range events {
		switch e.Kind {
		case core.EventCleared, core.EventLevelLoaded:
			logger.Info("Room event", "game", m.game.ID(), "event", e.Kind, "level", e.Detail, "player", m.env.Player)
		default:
			logger.Debug("Step", "game", m.game.ID(), "event", e.Kind, "detail", e.Detail)
		}
	}
	m.env.Metrics.Observe(events...)
}

// finish saves an unfinished run with a score.
func (m *GameModel) finish() {
	if !m.scoreSaved && m.gameState.Score > 0 {
		m.saveRun(m.gameState, false)
	}
	m.env.logger().Info("Game ended", "game", m.game.ID(), "level", m.gameState.Level, "score", m.gameState.Score)
}

// saveRun stores the current room's result once.
func (m *GameModel) saveRun(st core.GameState, cleared bool) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.env.Store == nil {
		return
	}

	run := storage.Run{
		GameID:  m.game.ID(),
		Level:   st.Level,
		Score:   st.Score,
		Cleared: cleared,
		Player:  m.env.Player,
	}
	if tc, ok := m.game.(registry.TurnCounter); ok {
		run.Moves, run.Casts = tc.Turns()
	}
	id, err := m.env.Store.SaveRun(run)
	if err != nil {
		m.env.logger().Warn("Could not save run", "error", err)
		return
	}
	m.env.logger().Debug("Run saved", "id", id, "level", run.Level, "score", run.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := config.ExpandHome("~/.niwa/screenshots")
	if err != nil {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.env.logger().Warn("Could not save screenshot", "error", err)
		return
	}
	m.env.logger().Info("Screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme) + "\n" + m.theme.HelpText.Render(m.help.View(m.keys))
}

// State returns the last known game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the player quits or goes back.
func Run(gameID string, env Env, cfg core.RuntimeConfig) error {
	g, err := registry.CreateConfigured(gameID, env.Config)
	if err != nil {
		return err
	}

	model := NewSessionModel(env, cfg)
	model = model.startGame(g, cfg, true)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	trackSession(env.Metrics, func() {
		_, err = p.Run()
	})
	return err
}

// trackSession marks one terminal session active while run executes.
// The count drops when run returns, whether the player quit or the
// program was torn down underneath the model.
func trackSession(rec *metrics.Recorder, run func()) {
	rec.SessionStarted()
	defer rec.SessionEnded()
	run()
}
