package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/niwa/internal/grid"
	"github.com/vovakirdan/niwa/internal/puzzle"
)

func TestDefaultKeys(t *testing.T) {
	k := DefaultKeys()
	require.NoError(t, k.Validate())

	tests := map[rune]Command{
		'w': CmdNorth,
		'a': CmdWest,
		's': CmdSouth,
		'd': CmdEast,
		'c': CmdToggleCast,
		'q': CmdQuit,
		'x': CmdNone,
		' ': CmdNone,
	}
	for r, want := range tests {
		assert.Equal(t, want, k.Command(r), "key %q", r)
	}
}

func TestKeysValidate(t *testing.T) {
	k := DefaultKeys()
	k.Cast = 'w'
	assert.Error(t, k.Validate())

	k = DefaultKeys()
	k.Quit = 0
	assert.Error(t, k.Validate())
}

func TestCommandDirectionRoundTrip(t *testing.T) {
	for _, d := range grid.Directions() {
		got, ok := CommandFor(d).Direction()
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := CmdQuit.Direction()
	assert.False(t, ok)
}

func TestApplyCastModeResetsAfterOneCast(t *testing.T) {
	room := grassRoom(4, 2)
	pz := puzzle.New(room.Size())
	place(pz, 3, 0, 0, puzzle.NoPlant)
	s := newSession(t, room, pz, grid.Pos(0, 0))

	turn := s.Apply(CmdToggleCast)
	assert.True(t, s.Casting())
	assert.Nil(t, turn.Cast)

	turn = s.Apply(CmdEast)
	require.NotNil(t, turn.Cast)
	assert.Equal(t, CastAbsorbedByWall, turn.Cast.Outcome)
	assert.False(t, turn.Moved)
	assert.False(t, s.Casting())
	assert.Equal(t, grid.Pos(0, 0), s.Actor())

	turn = s.Apply(CmdEast)
	assert.Nil(t, turn.Cast)
	assert.True(t, turn.Moved)
	assert.Equal(t, grid.Pos(1, 0), s.Actor())
}

func TestApplyToggleTwiceDisarms(t *testing.T) {
	room := grassRoom(2, 1)
	s := newSession(t, room, puzzle.New(room.Size()), grid.Pos(0, 0))

	s.Apply(CmdToggleCast)
	s.Apply(CmdToggleCast)
	assert.False(t, s.Casting())

	turn := s.Apply(CmdEast)
	assert.True(t, turn.Moved)
}

func TestApplyQuitAndNone(t *testing.T) {
	room := grassRoom(2, 1)
	s := newSession(t, room, puzzle.New(room.Size()), grid.Pos(0, 0))
	before := s.Snapshot()

	assert.True(t, s.Apply(CmdQuit).Quit)
	turn := s.Apply(CmdNone)
	assert.False(t, turn.Quit)
	assert.False(t, turn.Moved)
	assert.Equal(t, before, s.Snapshot())
}
