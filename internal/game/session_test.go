package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/niwa/internal/grid"
	"github.com/vovakirdan/niwa/internal/puzzle"
	"github.com/vovakirdan/niwa/internal/world"
)

func grassRoom(w, h uint8) *world.Room {
	r := world.NewRoom(grid.Pos(w, h))
	for p := range r.Size().Rect(grid.East, grid.South).All() {
		r.SetTile(p, world.Tile{Material: world.Grass})
	}
	return r
}

func place(pz *puzzle.Grid, x, y uint8, region puzzle.RegionID, plant puzzle.Plant) {
	c := puzzle.NewCell(region, plant)
	pz.SetCell(grid.Pos(x, y), &c)
}

func newSession(t *testing.T, room *world.Room, pz *puzzle.Grid, start grid.Position) *Session {
	t.Helper()
	s, err := NewSession(room, pz, start)
	require.NoError(t, err)
	return s
}

func TestMoveBlockedByRock(t *testing.T) {
	room := grassRoom(4, 4)
	room.SetTile(grid.Pos(1, 0), world.Tile{Material: world.Grass, Prop: world.Rock})
	room.SetTile(grid.Pos(3, 3), world.Tile{Material: world.Grass, Prop: world.Rock})
	s := newSession(t, room, puzzle.New(room.Size()), grid.Pos(0, 0))

	for range 4 {
		assert.False(t, s.Move(grid.East))
	}
	assert.Equal(t, grid.Pos(0, 0), s.Actor())
	assert.Zero(t, s.Moves())

	assert.True(t, s.Move(grid.South))
	assert.True(t, s.Move(grid.East))
	assert.Equal(t, grid.Pos(1, 1), s.Actor())
	assert.Equal(t, 2, s.Moves())
}

func TestMoveRejections(t *testing.T) {
	room := grassRoom(3, 3)
	room.ClearTile(grid.Pos(1, 0))
	pz := puzzle.New(room.Size())
	place(pz, 0, 1, 0, puzzle.Sprout)
	place(pz, 2, 1, 1, puzzle.NoPlant)

	tests := []struct {
		name  string
		start grid.Position
		dir   grid.Direction
		ok    bool
	}{
		{"off north edge", grid.Pos(2, 0), grid.North, false},
		{"off west edge", grid.Pos(0, 0), grid.West, false},
		{"into void", grid.Pos(0, 0), grid.East, false},
		{"into plant", grid.Pos(0, 0), grid.South, false},
		{"onto empty puzzle cell", grid.Pos(2, 2), grid.North, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSession(t, room, pz.Clone(), tc.start)
			assert.Equal(t, tc.ok, s.Move(tc.dir))
			if !tc.ok {
				assert.Equal(t, tc.start, s.Actor())
			}
		})
	}
}

func TestCastAbsorbedByVirginWall(t *testing.T) {
	room := grassRoom(5, 1)
	pz := puzzle.New(room.Size())
	place(pz, 2, 0, 0, puzzle.NoPlant)
	place(pz, 3, 0, 0, puzzle.NoPlant)
	place(pz, 4, 0, 1, puzzle.Sprout)
	s := newSession(t, room, pz, grid.Pos(0, 0))

	res := s.Cast(grid.East)

	assert.Equal(t, CastAbsorbedByWall, res.Outcome)
	assert.True(t, res.Committed())
	assert.Equal(t, puzzle.RegionID(0), res.Region)
	assert.Equal(t, grid.Pos(3, 0), res.Stop)
	assert.Equal(t, []grid.Position{grid.Pos(0, 0), grid.Pos(1, 0), grid.Pos(2, 0), grid.Pos(3, 0)}, res.Trace)

	assert.Equal(t, puzzle.Exhausted, s.Puzzle().Status(0))
	assert.Equal(t, puzzle.Virgin, s.Puzzle().Status(1))
	beyond, _ := s.Puzzle().Cell(grid.Pos(4, 0))
	assert.Zero(t, beyond.Hits, "cells past the stop are untouched")
	assert.Equal(t, PointsExhausted, s.Score())
}

func TestCastSecondTimePassesExhaustedRegion(t *testing.T) {
	room := grassRoom(5, 1)
	pz := puzzle.New(room.Size())
	place(pz, 2, 0, 0, puzzle.NoPlant)
	place(pz, 4, 0, 1, puzzle.NoPlant)
	s := newSession(t, room, pz, grid.Pos(0, 0))

	first := s.Cast(grid.East)
	require.Equal(t, grid.Pos(2, 0), first.Stop)

	second := s.Cast(grid.East)
	assert.Equal(t, CastAbsorbedByWall, second.Outcome)
	assert.Equal(t, puzzle.RegionID(1), second.Region)
	assert.Equal(t, grid.Pos(4, 0), second.Stop)
	assert.True(t, s.Cleared())
	assert.Equal(t, 2, s.Casts())
}

func TestCastHitsPlantsAndCompletesRegion(t *testing.T) {
	room := grassRoom(4, 1)
	pz := puzzle.New(room.Size())
	place(pz, 1, 0, 0, puzzle.Sprout)
	place(pz, 2, 0, 0, puzzle.NoPlant)
	s := newSession(t, room, pz, grid.Pos(0, 0))

	res := s.Cast(grid.East)

	require.Equal(t, CastAbsorbedByWall, res.Outcome)
	assert.Equal(t, 1, res.Hits)
	c, _ := s.Puzzle().Cell(grid.Pos(1, 0))
	assert.True(t, c.IsSprouted())
	assert.Equal(t, puzzle.Complete, s.Puzzle().Status(0))
	assert.Equal(t, PointsComplete, s.Score())
	assert.True(t, s.Cleared())
}

func TestCastThroughStoneRollsBack(t *testing.T) {
	room := grassRoom(5, 1)
	room.SetTile(grid.Pos(3, 0), world.Tile{Material: world.Stone})
	pz := puzzle.New(room.Size())
	place(pz, 1, 0, 0, puzzle.Sprout)
	place(pz, 2, 0, 0, puzzle.NoPlant)
	place(pz, 3, 0, 0, puzzle.NoPlant)
	place(pz, 4, 0, 1, puzzle.NoPlant)
	before := pz.Clone()
	s := newSession(t, room, pz, grid.Pos(0, 0))

	res := s.Cast(grid.East)

	assert.Equal(t, CastAbsorbedByTerrain, res.Outcome)
	assert.False(t, res.Committed())
	assert.Equal(t, grid.Pos(3, 0), res.Stop)
	assert.Zero(t, res.Hits)
	assert.Equal(t, before, s.Puzzle(), "puzzle must be unchanged, plant hits included")
}

func TestCastStoneBeforeAnyCell(t *testing.T) {
	room := grassRoom(4, 1)
	room.SetTile(grid.Pos(1, 0), world.Tile{Material: world.Stone})
	pz := puzzle.New(room.Size())
	place(pz, 3, 0, 0, puzzle.Sprout)
	before := pz.Clone()
	s := newSession(t, room, pz, grid.Pos(0, 0))

	res := s.Cast(grid.East)
	assert.Equal(t, CastAbsorbedByTerrain, res.Outcome)
	assert.Equal(t, before, s.Puzzle())
}

func TestCastIntoVoid(t *testing.T) {
	room := grassRoom(3, 1)
	room.ClearTile(grid.Pos(1, 0))
	s := newSession(t, room, puzzle.New(room.Size()), grid.Pos(0, 0))

	res := s.Cast(grid.East)
	assert.Equal(t, CastAbsorbedByTerrain, res.Outcome)
	assert.Equal(t, grid.Pos(1, 0), res.Stop)
}

func TestCastOffEdgeDiscardsHits(t *testing.T) {
	room := grassRoom(3, 1)
	pz := puzzle.New(room.Size())
	place(pz, 1, 0, 0, puzzle.Sprout)
	place(pz, 2, 0, 0, puzzle.NoPlant)
	require.NoError(t, pz.Exhaust(0))
	before := pz.Clone()
	s := newSession(t, room, pz, grid.Pos(0, 0))

	res := s.Cast(grid.East)

	assert.Equal(t, CastReachedEdge, res.Outcome)
	assert.Equal(t, grid.Pos(2, 0), res.Stop)
	assert.Equal(t, before, s.Puzzle())
}

func TestCastFromEdgeTowardsOutside(t *testing.T) {
	room := grassRoom(3, 1)
	s := newSession(t, room, puzzle.New(room.Size()), grid.Pos(2, 0))

	res := s.Cast(grid.East)
	assert.Equal(t, CastReachedEdge, res.Outcome)
	assert.Equal(t, []grid.Position{grid.Pos(2, 0)}, res.Trace)
}

func TestCastFromSandIsAbsorbedImmediately(t *testing.T) {
	room := grassRoom(3, 1)
	room.SetTile(grid.Pos(0, 0), world.Tile{Material: world.Sand})
	s := newSession(t, room, puzzle.New(room.Size()), grid.Pos(0, 0))

	res := s.Cast(grid.East)
	assert.Equal(t, CastAbsorbedByTerrain, res.Outcome)
	assert.Equal(t, grid.Pos(0, 0), res.Stop)
}

func TestNewSessionValidation(t *testing.T) {
	room := grassRoom(3, 3)
	room.SetTile(grid.Pos(1, 1), world.Tile{Prop: world.Rock})

	_, err := NewSession(room, puzzle.New(grid.Pos(2, 2)), grid.Pos(0, 0))
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = NewSession(room, puzzle.New(room.Size()), grid.Pos(1, 1))
	assert.ErrorIs(t, err, ErrBadStart)

	_, err = NewSession(room, puzzle.New(room.Size()), grid.Pos(5, 5))
	assert.ErrorIs(t, err, ErrBadStart)

	pz := puzzle.New(room.Size())
	place(pz, 0, 0, 0, puzzle.Sprout)
	_, err = NewSession(room, pz, grid.Pos(0, 0))
	assert.ErrorIs(t, err, ErrBadStart)

	s, err := NewSession(room, puzzle.New(room.Size()), grid.Pos(2, 2))
	require.NoError(t, err)
	assert.True(t, s.Room().Frozen())
}

func TestEmptyPuzzleNeverCleared(t *testing.T) {
	room := grassRoom(2, 2)
	s := newSession(t, room, puzzle.New(room.Size()), grid.Pos(0, 0))
	assert.False(t, s.Cleared())
	assert.Zero(t, s.Score())
}
