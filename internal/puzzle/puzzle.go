package puzzle

import (
	"fmt"
	"iter"
	"slices"

	"github.com/vovakirdan/niwa/internal/grid"
)

// Grid is the puzzle overlay: optional cells plus the status of every
// region referenced by them.
type Grid struct {
	cells   *grid.Grid[*Cell]
	regions []Status
}

// New creates an empty overlay of the given size.
func New(size grid.Position) *Grid {
	return &Grid{cells: grid.New[*Cell](size)}
}

// Size returns the overlay dimensions.
func (g *Grid) Size() grid.Position {
	return g.cells.Size()
}

// Cell returns a copy of the cell at p and whether one is present.
func (g *Grid) Cell(p grid.Position) (Cell, bool) {
	c := g.cells.At(p)
	if c == nil {
		return Cell{}, false
	}
	return *c, true
}

// SetCell installs cell at p, or clears p when cell is nil, and rederives
// the walls on all four borders of p.
//
// A border is open only when both sides hold a cell of the same region;
// otherwise both sides get a wall. The neighbour's mirrored bit is updated
// in the same call. Cells not adjacent to p are never touched, so the walls
// a cell ends up with depend on insertion order.
func (g *Grid) SetCell(p grid.Position, cell *Cell) {
	var next *Cell
	if cell != nil {
		c := *cell
		next = &c
		g.growRegions(c.Region)
	}

	for _, dir := range grid.Directions() {
		var neighbour *Cell
		if np, ok := p.Step(dir, g.Size()); ok {
			neighbour = g.cells.At(np)
		}

		wall := next == nil || neighbour == nil || next.Region != neighbour.Region

		if next != nil {
			next.SetWall(dir, wall)
		}
		if neighbour != nil {
			neighbour.SetWall(dir.Opposite(), wall)
		}
	}

	g.cells.Set(p, next)
}

func (g *Grid) growRegions(id RegionID) {
	if id < 0 {
		panic(fmt.Sprintf("puzzle: negative region id %d", id))
	}
	for RegionID(len(g.regions)) <= id {
		g.regions = append(g.regions, Virgin)
	}
}

// IsBlocked reports whether the cell at p is walled on dir, and if so which
// region the wall belongs to.
func (g *Grid) IsBlocked(p grid.Position, dir grid.Direction) (RegionID, bool) {
	c := g.cells.At(p)
	if c == nil || !c.HasWall(dir) {
		return 0, false
	}
	return c.Region, true
}

// HitPlant increments the hit counter of a planted cell at p. It reports
// whether a plant was there.
func (g *Grid) HitPlant(p grid.Position) bool {
	c := g.cells.At(p)
	if c == nil || !c.HasPlant() {
		return false
	}
	c.hit()
	return true
}

// NumRegions returns the length of the status table.
func (g *Grid) NumRegions() int {
	return len(g.regions)
}

// Status returns the status of region id. It panics for ids that were
// never inserted.
func (g *Grid) Status(id RegionID) Status {
	if id < 0 || int(id) >= len(g.regions) {
		panic(fmt.Sprintf("puzzle: region %d out of range [0,%d)", id, len(g.regions)))
	}
	return g.regions[id]
}

// Regions returns a copy of the status table.
func (g *Grid) Regions() []Status {
	return slices.Clone(g.regions)
}

// Exhaust moves region id from Virgin to Exhausted.
func (g *Grid) Exhaust(id RegionID) error {
	return g.transition(id, Exhausted)
}

// Complete moves region id from Exhausted to Complete.
func (g *Grid) Complete(id RegionID) error {
	return g.transition(id, Complete)
}

func (g *Grid) transition(id RegionID, to Status) error {
	if id < 0 || int(id) >= len(g.regions) {
		return fmt.Errorf("%w: %d", ErrUnknownRegion, id)
	}
	from := g.regions[id]
	if !canTransition(from, to) {
		return fmt.Errorf("%w: region %d %s -> %s", ErrInvalidTransition, id, from, to)
	}
	g.regions[id] = to
	return nil
}

// Count returns how many regions are in status s.
func (g *Grid) Count(s Status) int {
	n := 0
	for _, r := range g.regions {
		if r == s {
			n++
		}
	}
	return n
}

// All yields every present cell in row-major order.
func (g *Grid) All() iter.Seq2[grid.Position, Cell] {
	return func(yield func(grid.Position, Cell) bool) {
		for p, c := range g.cells.All() {
			if c == nil {
				continue
			}
			if !yield(p, *c) {
				return
			}
		}
	}
}

// RegionCells returns the positions of every cell in region id, row-major.
func (g *Grid) RegionCells(id RegionID) []grid.Position {
	var out []grid.Position
	for p, c := range g.All() {
		if c.Region == id {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns a deep copy. Mutating the clone never affects g.
func (g *Grid) Clone() *Grid {
	cells := grid.New[*Cell](g.Size())
	for p, c := range g.cells.All() {
		if c != nil {
			cp := *c
			cells.Set(p, &cp)
		}
	}
	return &Grid{cells: cells, regions: slices.Clone(g.regions)}
}
