package game

import (
	"fmt"

	"github.com/vovakirdan/niwa/internal/grid"
)

// Command is one player instruction.
type Command uint8

const (
	CmdNone Command = iota
	CmdNorth
	CmdEast
	CmdSouth
	CmdWest
	CmdToggleCast
	CmdQuit
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdNorth:
		return "north"
	case CmdEast:
		return "east"
	case CmdSouth:
		return "south"
	case CmdWest:
		return "west"
	case CmdToggleCast:
		return "cast"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Direction returns the direction of a movement command.
func (c Command) Direction() (grid.Direction, bool) {
	switch c {
	case CmdNorth:
		return grid.North, true
	case CmdEast:
		return grid.East, true
	case CmdSouth:
		return grid.South, true
	case CmdWest:
		return grid.West, true
	default:
		return 0, false
	}
}

// CommandFor returns the movement command for dir.
func CommandFor(dir grid.Direction) Command {
	switch dir {
	case grid.North:
		return CmdNorth
	case grid.East:
		return CmdEast
	case grid.South:
		return CmdSouth
	case grid.West:
		return CmdWest
	default:
		return CmdNone
	}
}

// Keys binds single characters to commands.
type Keys struct {
	North rune
	East  rune
	South rune
	West  rune
	Cast  rune
	Quit  rune
}

// DefaultKeys returns the w/a/s/d layout with c to cast and q to quit.
func DefaultKeys() Keys {
	return Keys{North: 'w', East: 'd', South: 's', West: 'a', Cast: 'c', Quit: 'q'}
}

// Command maps r to a command. Unbound characters map to CmdNone.
func (k Keys) Command(r rune) Command {
	switch r {
	case k.North:
		return CmdNorth
	case k.East:
		return CmdEast
	case k.South:
		return CmdSouth
	case k.West:
		return CmdWest
	case k.Cast:
		return CmdToggleCast
	case k.Quit:
		return CmdQuit
	default:
		return CmdNone
	}
}

// Validate rejects unset or duplicate bindings.
func (k Keys) Validate() error {
	seen := make(map[rune]string, 6)
	for _, b := range []struct {
		name string
		r    rune
	}{
		{"north", k.North}, {"east", k.East}, {"south", k.South},
		{"west", k.West}, {"cast", k.Cast}, {"quit", k.Quit},
	} {
		if b.r == 0 {
			return fmt.Errorf("game: key %q is not bound", b.name)
		}
		if other, dup := seen[b.r]; dup {
			return fmt.Errorf("game: key %q bound to both %s and %s", b.r, other, b.name)
		}
		seen[b.r] = b.name
	}
	return nil
}

// Turn reports what a single command did.
type Turn struct {
	Command Command
	Moved   bool        // a move command was accepted
	Cast    *CastResult // set when a direction was spent on a cast
	Quit    bool
}

// Apply executes one command. Directions move the actor, or cast when cast
// mode is armed; the mode disarms after one cast. CmdNone does nothing.
func (s *Session) Apply(cmd Command) Turn {
	t := Turn{Command: cmd}

	if dir, ok := cmd.Direction(); ok {
		if s.casting {
			s.casting = false
			res := s.Cast(dir)
			t.Cast = &res
		} else {
			t.Moved = s.Move(dir)
		}
		return t
	}

	switch cmd {
	case CmdToggleCast:
		s.casting = !s.casting
	case CmdQuit:
		t.Quit = true
	}
	return t
}
