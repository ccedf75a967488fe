// Package niwa adapts game sessions to the platform: it registers the
// level campaign and the generated garden, turns input actions into
// commands and draws sessions onto the screen buffer.
package niwa

import (
	"fmt"
	"time"

	"github.com/vovakirdan/niwa/internal/config"
	"github.com/vovakirdan/niwa/internal/core"
	"github.com/vovakirdan/niwa/internal/game"
	"github.com/vovakirdan/niwa/internal/grid"
	"github.com/vovakirdan/niwa/internal/levels"
	"github.com/vovakirdan/niwa/internal/puzzle"
	"github.com/vovakirdan/niwa/internal/registry"
	"github.com/vovakirdan/niwa/internal/world"
)

// Game ids.
const (
	CampaignID = "niwa"
	GardenID   = "niwa_garden"
)

// GardenLevel is the score key used for every generated garden.
const GardenLevel = "garden"

// Mode selects where rooms come from.
type Mode int

const (
	ModeCampaign Mode = iota
	ModeGarden
)

func init() {
	registry.Register(CampaignID, func() registry.Game { return New(ModeCampaign) })
	registry.Register(GardenID, func() registry.Game { return New(ModeGarden) })
}

// Game implements registry.Game for both modes.
type Game struct {
	mode    Mode
	cfg     config.Config
	catalog *levels.Catalog

	// Campaign progress
	levels     []levels.Level
	levelIndex int
	levelID    string
	levelName  string
	hint       string

	// Garden seed for the current room
	seed int64

	session  *game.Session
	lastCast *game.CastResult
	message  string

	screenW  int
	screenH  int
	cleared  bool
	gameOver bool
	failed   error
}

// New creates a game in the given mode with the default configuration.
func New(mode Mode) *Game {
	g := &Game{mode: mode}
	_ = g.Configure(config.Default())
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeGarden {
		return GardenID
	}
	return CampaignID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeGarden {
		return "Niwa: Wild Garden"
	}
	return "Niwa"
}

// Configure applies user configuration. It must be called before Reset.
func (g *Game) Configure(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg
	dir := cfg.Levels.Dir
	if dir != "" {
		expanded, err := config.ExpandHome(dir)
		if err != nil {
			return err
		}
		dir = expanded
	}
	g.catalog = levels.NewCatalog(dir)
	return nil
}

// Session exposes the running session, mainly for tests.
func (g *Game) Session() *game.Session {
	return g.session
}

// Turns returns the moves and casts made in the current room.
func (g *Game) Turns() (moves, casts int) {
	if g.session == nil {
		return 0, 0
	}
	return g.session.Moves(), g.session.Casts()
}

// Err returns the error that stopped the game from loading a room.
func (g *Game) Err() error {
	return g.failed
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cleared = false
	g.gameOver = false
	g.failed = nil
	g.lastCast = nil
	g.message = ""

	switch g.mode {
	case ModeGarden:
		g.seed = cfg.Seed
		if g.seed == 0 {
			g.seed = time.Now().UnixNano()
		}
		g.loadGarden()
	default:
		g.resetCampaign(cfg.Level)
	}
}

func (g *Game) resetCampaign(start string) {
	all, err := g.catalog.LoadAll()
	if err != nil {
		g.fail(err)
		return
	}
	if len(all) == 0 {
		g.fail(fmt.Errorf("niwa: no levels available"))
		return
	}
	g.levels = all
	g.levelIndex = 0
	if start != "" {
		found := false
		for i, l := range all {
			if l.ID == start {
				g.levelIndex, found = i, true
				break
			}
		}
		if !found {
			g.fail(fmt.Errorf("%w: %s", levels.ErrLevelNotFound, start))
			return
		}
	}
	g.loadLevel()
}

func (g *Game) fail(err error) {
	g.failed = err
	g.gameOver = true
	g.session = nil
	g.message = err.Error()
}

// loadLevel builds the campaign level at levelIndex.
func (g *Game) loadLevel() {
	lvl := g.levels[g.levelIndex]
	room, pz, err := lvl.Build()
	if err != nil {
		g.fail(err)
		return
	}
	s, err := game.NewSession(room, pz, lvl.Actor)
	if err != nil {
		g.fail(err)
		return
	}
	g.session = s
	g.levelID = lvl.ID
	g.levelName = lvl.Name
	g.hint = lvl.Hint()
	g.cleared = false
	g.lastCast = nil
}

// gardenTries bounds how many seeds are tried for a garden with at least
// one region and a free start cell.
const gardenTries = 16

func (g *Game) loadGarden() {
	for range gardenTries {
		room := world.Generate(g.cfg.Room.Size(), g.cfg.Room.GenParams(), g.seed)
		start, ok := game.FindStart(room, puzzle.New(room.Size()))
		if ok {
			pz := game.GenerateRegions(room, g.cfg.Puzzle.RegionParams(), world.NewRNG(g.seed), start)
			if pz.NumRegions() > 0 {
				s, err := game.NewSession(room, pz, start)
				if err == nil {
					g.session = s
					g.levelID = GardenLevel
					g.levelName = fmt.Sprintf("Garden #%d", g.seed)
					g.hint = "seal every region to clear the garden"
					g.cleared = false
					g.lastCast = nil
					return
				}
			}
		}
		g.seed++
	}
	g.fail(fmt.Errorf("niwa: could not generate a playable garden"))
}

// next advances to the following campaign level or a fresh garden.
func (g *Game) next() {
	if g.mode == ModeGarden {
		g.seed++
		g.loadGarden()
		return
	}
	if g.levelIndex+1 >= len(g.levels) {
		g.gameOver = true
		g.message = "every garden is tended"
		return
	}
	g.levelIndex++
	g.loadLevel()
}

func (g *Game) restart() {
	if g.mode == ModeGarden {
		g.loadGarden()
		return
	}
	g.loadLevel()
}

// Step applies one input event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch {
	case g.session == nil || g.gameOver:
		// Nothing to play; the platform offers restart or back.
	case in.Has(core.ActionRestart):
		g.restart()
		events = append(events, core.Event{Kind: core.EventLevelLoaded, Detail: g.levelID})
	case g.cleared:
		if in.Has(core.ActionConfirm) {
			g.next()
			if !g.gameOver {
				events = append(events, core.Event{Kind: core.EventLevelLoaded, Detail: g.levelID})
			}
		}
	default:
		events = g.play(in)
	}

	return core.StepResult{State: g.State(), Events: events}
}

var actionCommands = []struct {
	action core.Action
	cmd    game.Command
}{
	{core.ActionCast, game.CmdToggleCast},
	{core.ActionNorth, game.CmdNorth},
	{core.ActionEast, game.CmdEast},
	{core.ActionSouth, game.CmdSouth},
	{core.ActionWest, game.CmdWest},
}

func (g *Game) play(in core.InputFrame) []core.Event {
	var events []core.Event
	for _, ac := range actionCommands {
		if !in.Has(ac.action) {
			continue
		}
		turn := g.session.Apply(ac.cmd)
		switch {
		case turn.Cast != nil:
			g.lastCast = turn.Cast
			g.message = castMessage(*turn.Cast)
			events = append(events, core.Event{Kind: core.EventCast, Detail: turn.Cast.Outcome.String()})
		case turn.Moved:
			g.lastCast = nil
			g.message = ""
			events = append(events, core.Event{Kind: core.EventMoved})
		case ac.cmd != game.CmdToggleCast:
			g.lastCast = nil
			events = append(events, core.Event{Kind: core.EventMoveRejected, Detail: ac.cmd.String()})
		}
		if g.session.Cleared() && !g.cleared {
			g.cleared = true
			g.message = "cleared! press enter to continue"
			events = append(events, core.Event{Kind: core.EventCleared, Detail: g.levelID})
		}
	}
	return events
}

func castMessage(r game.CastResult) string {
	switch r.Outcome {
	case game.CastAbsorbedByWall:
		if r.Hits > 0 {
			return fmt.Sprintf("region %d sealed, %d plant(s) stirred", r.Region, r.Hits)
		}
		return fmt.Sprintf("region %d sealed", r.Region)
	case game.CastAbsorbedByTerrain:
		return "the ground swallows the cast"
	default:
		return "the cast fades past the edge"
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.gameOver,
		Cleared:  g.cleared,
		Level:    g.levelID,
	}
	if g.session != nil {
		st.Score = g.session.Score()
	}
	return st
}

// Positions a cast highlight covers, keyed for quick lookup while drawing.
func (g *Game) traced() map[grid.Position]bool {
	if g.lastCast == nil {
		return nil
	}
	m := make(map[grid.Position]bool, len(g.lastCast.Trace))
	for _, p := range g.lastCast.Trace {
		m[p] = true
	}
	return m
}
