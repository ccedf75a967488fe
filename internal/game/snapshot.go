package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/niwa/internal/grid"
	"github.com/vovakirdan/niwa/internal/puzzle"
	"github.com/vovakirdan/niwa/internal/world"
)

// Glyphs used by the plain-text view.
const (
	GlyphActor    = '@'
	GlyphSeed     = ','
	GlyphSprouted = '♣'
	GlyphRock     = 'o'
	GlyphVoid     = ' '
)

// MaterialGlyph returns the character drawn for bare ground.
func MaterialGlyph(m world.Material) rune {
	switch m {
	case world.Grass:
		return '"'
	case world.Dirt:
		return '.'
	case world.Sand:
		return ':'
	case world.Stone:
		return '#'
	case world.Water:
		return '~'
	default:
		return '?'
	}
}

// GlyphAt picks the character for p with the usual precedence: actor, then
// puzzle cell (plant, else region outline), then terrain.
func (s *Session) GlyphAt(p grid.Position) rune {
	if p == s.actor {
		return GlyphActor
	}
	if c, ok := s.puzzle.Cell(p); ok {
		switch {
		case c.HasPlant() && c.IsSprouted():
			return GlyphSprouted
		case c.HasPlant():
			return GlyphSeed
		default:
			return c.Symbol(s.puzzle.Status(c.Region))
		}
	}
	t, ok := s.room.Tile(p)
	switch {
	case !ok:
		return GlyphVoid
	case t.Obstructed():
		return GlyphRock
	default:
		return MaterialGlyph(t.Material)
	}
}

// Rows renders the board as one string per row.
func (s *Session) Rows() []string {
	size := s.room.Size()
	rows := make([]string, size.Y)
	var sb strings.Builder
	for y := range size.Y {
		sb.Reset()
		for x := range size.X {
			sb.WriteRune(s.GlyphAt(grid.Pos(x, y)))
		}
		rows[y] = sb.String()
	}
	return rows
}

// Snapshot returns a deterministic text dump of the session: the board
// followed by a status line and the region table.
func (s *Session) Snapshot() string {
	var sb strings.Builder
	for _, row := range s.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "actor=%v moves=%d casts=%d score=%d cast-mode=%t\n",
		s.actor, s.moves, s.casts, s.Score(), s.casting)
	for i, st := range s.puzzle.Regions() {
		fmt.Fprintf(&sb, "region %d: %s\n", i, st)
	}
	return sb.String()
}

// RegionSummary counts regions by status.
func (s *Session) RegionSummary() (virgin, exhausted, complete int) {
	return s.puzzle.Count(puzzle.Virgin), s.puzzle.Count(puzzle.Exhausted), s.puzzle.Count(puzzle.Complete)
}
