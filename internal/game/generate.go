package game

import (
	"github.com/vovakirdan/niwa/internal/grid"
	"github.com/vovakirdan/niwa/internal/puzzle"
	"github.com/vovakirdan/niwa/internal/world"
)

// RegionParams configures procedural region placement.
type RegionParams struct {
	Count       int     // Regions to try to place
	MinSize     int     // Minimum side length
	MaxSize     int     // Maximum side length
	PlantChance float64 // Chance that a region cell holds a plant (0-1)
	Attempts    int     // Placement attempts per region
}

// DefaultRegionParams returns a handful of small regions.
func DefaultRegionParams() RegionParams {
	return RegionParams{
		Count:       5,
		MinSize:     2,
		MaxSize:     4,
		PlantChance: 0.2,
		Attempts:    40,
	}
}

// GenerateRegions lays rectangular regions over open soft ground of room.
// Rectangles never overlap, never cover rocks or hard ground and never
// include keep. Region ids are assigned in placement order, so the result
// may hold fewer than p.Count regions when the room is crowded.
func GenerateRegions(room *world.Room, p RegionParams, rng *world.RNG, keep grid.Position) *puzzle.Grid {
	size := room.Size()
	pz := puzzle.New(size)

	minSize := max(p.MinSize, 1)
	maxSize := max(p.MaxSize, minSize)
	next := puzzle.RegionID(0)

	for range p.Count {
		for range max(p.Attempts, 1) {
			w := minSize + rng.Intn(maxSize-minSize+1)
			h := minSize + rng.Intn(maxSize-minSize+1)
			if w > int(size.X) || h > int(size.Y) {
				continue
			}
			origin := grid.Pos(
				uint8(rng.Intn(int(size.X)-w+1)),
				uint8(rng.Intn(int(size.Y)-h+1)),
			)
			extent := grid.Pos(uint8(w), uint8(h))

			if !regionFits(room, pz, origin, extent, keep) {
				continue
			}
			for off := range extent.Rect(grid.East, grid.South).All() {
				plant := puzzle.NoPlant
				if rng.Float() < p.PlantChance {
					plant = puzzle.Sprout
				}
				c := puzzle.NewCell(next, plant)
				pz.SetCell(origin.Add(off), &c)
			}
			next++
			break
		}
	}
	return pz
}

func regionFits(room *world.Room, pz *puzzle.Grid, origin, extent, keep grid.Position) bool {
	for off := range extent.Rect(grid.East, grid.South).All() {
		p := origin.Add(off)
		if p == keep {
			return false
		}
		t, ok := room.Tile(p)
		if !ok || t.Obstructed() || !t.Material.Passable() {
			return false
		}
		if _, taken := pz.Cell(p); taken {
			return false
		}
	}
	return true
}

// FindStart returns the first walkable cell in row-major order that holds
// no plant.
func FindStart(room *world.Room, pz *puzzle.Grid) (grid.Position, bool) {
	for p := range room.Size().Rect(grid.East, grid.South).All() {
		if !room.Walkable(p) {
			continue
		}
		if c, ok := pz.Cell(p); ok && c.HasPlant() {
			continue
		}
		return p, true
	}
	return grid.Position{}, false
}
