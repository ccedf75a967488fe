// Package puzzle implements the region overlay laid on top of a room.
//
// Cells belong to regions. Two adjacent cells of the same region share an
// open border; every other border of a cell is walled. Walls are derived
// when a cell is inserted with Grid.SetCell and stored per cell as a 4-bit
// mask indexed by grid.Direction flags.
package puzzle

import "github.com/vovakirdan/niwa/internal/grid"

// RegionID indexes the region status table. IDs are dense from 0.
type RegionID int

// Plant is the occupant of a puzzle cell.
type Plant uint8

const (
	NoPlant Plant = iota
	Sprout
)

// String returns the plant name.
func (p Plant) String() string {
	switch p {
	case NoPlant:
		return "none"
	case Sprout:
		return "sprout"
	default:
		return "unknown"
	}
}

// Cell is one square of the overlay.
type Cell struct {
	Plant  Plant
	Hits   uint8 // times the plant was struck by a cast; 0 = unsprouted
	Region RegionID

	walls uint8
}

// NewCell returns a cell with no walls. Walls are filled in by Grid.SetCell.
func NewCell(region RegionID, plant Plant) Cell {
	return Cell{Plant: plant, Region: region}
}

// HasPlant reports whether the cell is occupied.
func (c Cell) HasPlant() bool {
	return c.Plant != NoPlant
}

// IsSprouted reports whether the plant has been hit at least once.
func (c Cell) IsSprouted() bool {
	return c.Hits > 0
}

// HasWall reports whether the border in dir is walled.
func (c Cell) HasWall(dir grid.Direction) bool {
	return c.walls&dir.Flag() != 0
}

// SetWall sets or clears the wall in dir.
func (c *Cell) SetWall(dir grid.Direction, wall bool) {
	if wall {
		c.walls |= dir.Flag()
	} else {
		c.walls &^= dir.Flag()
	}
}

// SetWalls replaces the mask with exactly the given walls.
func (c *Cell) SetWalls(dirs ...grid.Direction) {
	c.walls = 0
	for _, d := range dirs {
		c.SetWall(d, true)
	}
}

// Walls returns the raw mask.
func (c Cell) Walls() uint8 {
	return c.walls
}

// hit registers a cast passing through a planted cell.
func (c *Cell) hit() {
	if c.HasPlant() && c.Hits < 255 {
		c.Hits++
	}
}

// The wall mask is the table index. Mask 0 (no walls) is the four-way
// junction, mask 15 (closed on every side) is blank.
var (
	virginGlyphs = [16]rune{
		'╋', '┳', '┫', '┓',
		'┻', '━', '┛', '╸',
		'┣', '┏', '┃', '╻',
		'┗', '╺', '╹', ' ',
	}
	exhaustedGlyphs = [16]rune{
		'┼', '┬', '┤', '┐',
		'┴', '─', '┘', '╴',
		'├', '┌', '│', '╷',
		'└', '╶', '╵', ' ',
	}
)

// SymbolVirgin returns the heavy box-drawing glyph for the wall mask.
func (c Cell) SymbolVirgin() rune {
	return virginGlyphs[c.walls&0x0f]
}

// SymbolExhausted returns the light box-drawing glyph for the wall mask.
func (c Cell) SymbolExhausted() rune {
	return exhaustedGlyphs[c.walls&0x0f]
}

// Symbol picks the glyph for a region in the given status.
func (c Cell) Symbol(s Status) rune {
	if s == Virgin {
		return c.SymbolVirgin()
	}
	return c.SymbolExhausted()
}
