package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/niwa/internal/grid"
)

func TestGenerateFillsRoom(t *testing.T) {
	size := grid.Pos(20, 12)
	r := Generate(size, DefaultGenParams(), 42)

	assert.True(t, r.Frozen())
	assert.Equal(t, size, r.Size())
	assert.Equal(t, size.Area(), r.Count())
}

func TestGenerateIsDeterministic(t *testing.T) {
	size := grid.Pos(16, 16)
	a := Generate(size, DefaultGenParams(), 7)
	b := Generate(size, DefaultGenParams(), 7)

	for p := range size.Rect(grid.East, grid.South).All() {
		ta, _ := a.Tile(p)
		tb, _ := b.Tile(p)
		assert.Equal(t, ta, tb, "tile %v", p)
	}
}

func TestGenerateRocksOnlyOnSoftGround(t *testing.T) {
	params := DefaultGenParams()
	params.RockDensity = 1

	size := grid.Pos(16, 16)
	r := Generate(size, params, 3)

	for p := range size.Rect(grid.East, grid.South).All() {
		tile, ok := r.Tile(p)
		if !assert.True(t, ok) {
			continue
		}
		assert.Equal(t, tile.Material.Passable(), tile.Obstructed(), "tile %v is %s", p, tile.Material)
		assert.LessOrEqual(t, tile.Elevation, uint8(9))
	}
}

func TestGenerateWithoutRocks(t *testing.T) {
	params := DefaultGenParams()
	params.RockDensity = 0

	size := grid.Pos(10, 10)
	r := Generate(size, params, 11)
	for p := range size.Rect(grid.East, grid.South).All() {
		tile, _ := r.Tile(p)
		assert.False(t, tile.Obstructed(), "tile %v", p)
	}
}

func TestMaterialBands(t *testing.T) {
	p := DefaultGenParams()

	tests := []struct {
		height, moisture float64
		want             Material
	}{
		{0.1, 0.9, Water},
		{p.WaterLevel + p.SandBand/2, 0.9, Sand},
		{0.95, 0.9, Stone},
		{0.5, 0.1, Dirt},
		{0.5, 0.8, Grass},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, materialFor(tc.height, tc.moisture, p), "h=%.2f m=%.2f", tc.height, tc.moisture)
	}
}

func TestRNGRange(t *testing.T) {
	rng := NewRNG(0)
	for range 1000 {
		f := rng.Float()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
		n := rng.Intn(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)
	}
	assert.Zero(t, rng.Intn(0))
}
