package game

import (
	"github.com/vovakirdan/niwa/internal/grid"
	"github.com/vovakirdan/niwa/internal/puzzle"
)

// CastOutcome says how a cast ended.
type CastOutcome uint8

const (
	// CastAbsorbedByWall: a Virgin region's wall caught the effect.
	CastAbsorbedByWall CastOutcome = iota
	// CastAbsorbedByTerrain: void or hard ground stopped the effect.
	CastAbsorbedByTerrain
	// CastReachedEdge: the effect left the room without being caught.
	CastReachedEdge
)

// String returns the outcome name.
func (o CastOutcome) String() string {
	switch o {
	case CastAbsorbedByWall:
		return "absorbed"
	case CastAbsorbedByTerrain:
		return "terrain"
	case CastReachedEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// CastResult describes one cast.
type CastResult struct {
	Outcome CastOutcome
	Dir     grid.Direction
	Trace   []grid.Position // positions visited, in order, ending at Stop
	Stop    grid.Position
	Region  puzzle.RegionID // set when Outcome is CastAbsorbedByWall
	Hits    int             // plants struck on the committed trace
}

// Committed reports whether the cast changed the puzzle.
func (r CastResult) Committed() bool {
	return r.Outcome == CastAbsorbedByWall
}

// Cast sends an effect from the actor's cell in dir.
//
// The effect crosses grass and dirt. Planted cells along the way are hit.
// The first cell of a Virgin region walled on dir absorbs the effect and
// exhausts that region. Work happens on a scratch copy of the puzzle which
// replaces the live one only on absorption; terrain stops and edge exits
// leave the puzzle exactly as it was, hits included.
func (s *Session) Cast(dir grid.Direction) CastResult {
	s.casts++
	res := CastResult{Outcome: CastReachedEdge, Dir: dir, Stop: s.actor}
	scratch := s.puzzle.Clone()

	for p := range s.actor.Line(dir, s.room.Size()).All() {
		res.Trace = append(res.Trace, p)
		res.Stop = p

		tile, ok := s.room.Tile(p)
		if !ok || !tile.Material.Passable() {
			res.Outcome = CastAbsorbedByTerrain
			res.Hits = 0
			return res
		}

		c, ok := scratch.Cell(p)
		if !ok {
			continue
		}
		if scratch.HitPlant(p) {
			res.Hits++
		}
		if scratch.Status(c.Region) == puzzle.Virgin && c.HasWall(dir) {
			// Exhaust cannot fail here: the region is Virgin.
			_ = scratch.Exhaust(c.Region)
			settle(scratch, c.Region)
			s.puzzle = scratch
			res.Outcome = CastAbsorbedByWall
			res.Region = c.Region
			return res
		}
	}

	res.Hits = 0
	return res
}

// settle completes an exhausted region whose plants have all sprouted.
// Regions without plants stay exhausted.
func settle(pz *puzzle.Grid, id puzzle.RegionID) {
	planted := 0
	for _, p := range pz.RegionCells(id) {
		c, _ := pz.Cell(p)
		if !c.HasPlant() {
			continue
		}
		if !c.IsSprouted() {
			return
		}
		planted++
	}
	if planted > 0 {
		_ = pz.Complete(id)
	}
}
