package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/niwa/internal/grid"
	"github.com/vovakirdan/niwa/internal/puzzle"
	"github.com/vovakirdan/niwa/internal/world"
)

func TestGenerateRegionsOnOpenGrass(t *testing.T) {
	room := grassRoom(12, 8)
	room.SetTile(grid.Pos(5, 5), world.Tile{Material: world.Stone})
	keep := grid.Pos(0, 0)

	p := DefaultRegionParams()
	pz := GenerateRegions(room, p, world.NewRNG(9), keep)

	require.Positive(t, pz.NumRegions())
	assert.LessOrEqual(t, pz.NumRegions(), p.Count)

	_, onKeep := pz.Cell(keep)
	assert.False(t, onKeep)
	_, onStone := pz.Cell(grid.Pos(5, 5))
	assert.False(t, onStone)

	for id := range pz.NumRegions() {
		cells := pz.RegionCells(puzzle.RegionID(id))
		assert.GreaterOrEqual(t, len(cells), p.MinSize*p.MinSize, "region %d", id)
		assert.LessOrEqual(t, len(cells), p.MaxSize*p.MaxSize, "region %d", id)
	}
}

func TestGenerateRegionsDeterministic(t *testing.T) {
	room := grassRoom(10, 10)
	a := GenerateRegions(room, DefaultRegionParams(), world.NewRNG(4), grid.Pos(0, 0))
	b := GenerateRegions(room, DefaultRegionParams(), world.NewRNG(4), grid.Pos(0, 0))
	assert.Equal(t, a, b)
}

func TestGenerateRegionsCrowdedRoom(t *testing.T) {
	room := grassRoom(1, 1)
	pz := GenerateRegions(room, DefaultRegionParams(), world.NewRNG(1), grid.Pos(0, 0))
	assert.Zero(t, pz.NumRegions())
}

func TestFindStartSkipsRocksAndPlants(t *testing.T) {
	room := grassRoom(3, 1)
	room.SetTile(grid.Pos(0, 0), world.Tile{Prop: world.Rock})
	pz := GenerateRegions(room, RegionParams{}, world.NewRNG(1), grid.Pos(0, 0))
	place(pz, 1, 0, 0, puzzle.Sprout)

	p, ok := FindStart(room, pz)
	require.True(t, ok)
	assert.Equal(t, grid.Pos(2, 0), p)
}
