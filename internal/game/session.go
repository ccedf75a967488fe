// Package game runs one play-through of a room: it tracks the actor, moves
// it, casts effects across the room and keeps score. It has no knowledge of
// terminals or input devices.
package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/niwa/internal/grid"
	"github.com/vovakirdan/niwa/internal/puzzle"
	"github.com/vovakirdan/niwa/internal/world"
)

// ErrSizeMismatch is returned when the room and puzzle overlay differ in size.
var ErrSizeMismatch = errors.New("game: room and puzzle sizes differ")

// ErrBadStart is returned when the actor cannot stand on its start position.
var ErrBadStart = errors.New("game: actor start is not walkable")

// Points awarded per region.
const (
	PointsExhausted = 100
	PointsComplete  = 150
)

// Session is the mutable state of a single game.
type Session struct {
	room    *world.Room
	puzzle  *puzzle.Grid
	actor   grid.Position
	casting bool

	moves int
	casts int
}

// NewSession validates the pieces and starts a game with the actor at
// start. The room is frozen if it was not already.
func NewSession(room *world.Room, pz *puzzle.Grid, start grid.Position) (*Session, error) {
	if room.Size() != pz.Size() {
		return nil, fmt.Errorf("%w: room %v, puzzle %v", ErrSizeMismatch, room.Size(), pz.Size())
	}
	if !room.Walkable(start) {
		return nil, fmt.Errorf("%w: %v", ErrBadStart, start)
	}
	if c, ok := pz.Cell(start); ok && c.HasPlant() {
		return nil, fmt.Errorf("%w: %v holds a plant", ErrBadStart, start)
	}
	room.Freeze()

	return &Session{room: room, puzzle: pz, actor: start}, nil
}

// Actor returns the actor position.
func (s *Session) Actor() grid.Position { return s.actor }

// Room returns the terrain. Callers must not modify it.
func (s *Session) Room() *world.Room { return s.room }

// Puzzle returns the current overlay. The pointer changes after every
// absorbed cast, so callers should not hold on to it across turns.
func (s *Session) Puzzle() *puzzle.Grid { return s.puzzle }

// Casting reports whether the next direction will cast instead of move.
func (s *Session) Casting() bool { return s.casting }

// Moves returns the number of accepted moves.
func (s *Session) Moves() int { return s.moves }

// Casts returns the number of casts performed.
func (s *Session) Casts() int { return s.casts }

// Move steps the actor one cell in dir. The move is rejected, leaving the
// actor in place, when the target is outside the room, void, obstructed by
// a prop or occupied by a plant.
func (s *Session) Move(dir grid.Direction) bool {
	next, ok := s.actor.Step(dir, s.room.Size())
	if !ok || !s.room.Walkable(next) {
		return false
	}
	if c, ok := s.puzzle.Cell(next); ok && c.HasPlant() {
		return false
	}
	s.actor = next
	s.moves++
	return true
}

// Cleared reports whether every region has left the Virgin stage. A room
// without regions is never cleared.
func (s *Session) Cleared() bool {
	return s.puzzle.NumRegions() > 0 && s.puzzle.Count(puzzle.Virgin) == 0
}

// Score returns the points earned so far.
func (s *Session) Score() int {
	return s.puzzle.Count(puzzle.Exhausted)*PointsExhausted +
		s.puzzle.Count(puzzle.Complete)*PointsComplete
}
