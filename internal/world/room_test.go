package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/niwa/internal/grid"
)

func TestNewRoomIsVoid(t *testing.T) {
	r := NewRoom(grid.Pos(3, 2))

	assert.Equal(t, grid.Pos(3, 2), r.Size())
	assert.Zero(t, r.Count())
	_, ok := r.Tile(grid.Pos(1, 1))
	assert.False(t, ok)
	assert.False(t, r.Walkable(grid.Pos(1, 1)))
}

func TestRoomSetTile(t *testing.T) {
	r := NewRoom(grid.Pos(3, 3))
	r.SetTile(grid.Pos(1, 2), Tile{Material: Sand, Elevation: 4})

	got, ok := r.Tile(grid.Pos(1, 2))
	require.True(t, ok)
	assert.Equal(t, Tile{Material: Sand, Elevation: 4}, got)
	assert.Equal(t, 1, r.Count())

	r.ClearTile(grid.Pos(1, 2))
	_, ok = r.Tile(grid.Pos(1, 2))
	assert.False(t, ok)
}

func TestRoomTileIsCopied(t *testing.T) {
	r := NewRoom(grid.Pos(1, 1))
	tile := Tile{Material: Grass}
	r.SetTile(grid.Pos(0, 0), tile)
	tile.Prop = Rock

	got, _ := r.Tile(grid.Pos(0, 0))
	assert.Equal(t, NoProp, got.Prop)
}

func TestRoomWalkable(t *testing.T) {
	r := NewRoom(grid.Pos(3, 1))
	r.SetTile(grid.Pos(0, 0), Tile{Material: Water})
	r.SetTile(grid.Pos(1, 0), Tile{Material: Grass, Prop: Rock})

	tests := []struct {
		name string
		pos  grid.Position
		want bool
	}{
		{"water without prop", grid.Pos(0, 0), true},
		{"rock", grid.Pos(1, 0), false},
		{"void", grid.Pos(2, 0), false},
		{"outside", grid.Pos(3, 0), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Walkable(tc.pos))
		})
	}
}

func TestFrozenRoomRejectsWrites(t *testing.T) {
	r := NewRoom(grid.Pos(2, 2))
	r.SetTile(grid.Pos(0, 0), Tile{})
	r.Freeze()

	assert.True(t, r.Frozen())
	assert.Panics(t, func() { r.SetTile(grid.Pos(1, 1), Tile{}) })
	assert.Panics(t, func() { r.ClearTile(grid.Pos(0, 0)) })
	assert.Equal(t, 1, r.Count())
}

func TestRoomOutOfBoundsPanics(t *testing.T) {
	r := NewRoom(grid.Pos(2, 2))
	assert.Panics(t, func() { r.Tile(grid.Pos(2, 0)) })
	assert.Panics(t, func() { r.SetTile(grid.Pos(0, 2), Tile{}) })
}

func TestMaterialPassable(t *testing.T) {
	passable := map[Material]bool{
		Grass: true,
		Dirt:  true,
		Sand:  false,
		Stone: false,
		Water: false,
	}
	for m, want := range passable {
		assert.Equal(t, want, m.Passable(), m.String())
	}
}
