package levels

import (
	"errors"
	"fmt"
	"maps"

	"github.com/vovakirdan/niwa/internal/grid"
	"github.com/vovakirdan/niwa/internal/levels/formats"
	"github.com/vovakirdan/niwa/internal/puzzle"
	"github.com/vovakirdan/niwa/internal/world"
)

// ErrInvalidLevel wraps every content problem found while building a level.
var ErrInvalidLevel = errors.New("levels: invalid level")

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Size     grid.Position
	Actor    grid.Position
	Metadata map[string]string
	FilePath string

	src formats.Level
}

// fromFormat converts a parsed file into a Level and checks that it builds.
func fromFormat(fl formats.Level, path string) (Level, error) {
	size, err := grid.PosFromInts(fl.Width, fl.Height)
	if err != nil {
		return Level{}, fmt.Errorf("%w %s: size: %w", ErrInvalidLevel, fl.ID, err)
	}
	if size.X == 0 || size.Y == 0 {
		return Level{}, fmt.Errorf("%w %s: empty size %v", ErrInvalidLevel, fl.ID, size)
	}
	actor, err := grid.PosFromInts(fl.ActorX, fl.ActorY)
	if err != nil {
		return Level{}, fmt.Errorf("%w %s: actor: %w", ErrInvalidLevel, fl.ID, err)
	}

	l := Level{
		ID:       fl.ID,
		Name:     fl.Name,
		Size:     size,
		Actor:    actor,
		Metadata: maps.Clone(fl.Metadata),
		FilePath: path,
		src:      fl,
	}
	if _, _, err := l.Build(); err != nil {
		return Level{}, err
	}
	return l, nil
}

// Hint returns the optional "hint" metadata entry.
func (l Level) Hint() string {
	return l.Metadata["hint"]
}

// Build creates a fresh room and puzzle overlay for the level. Each call
// returns new objects, so a level can be replayed.
func (l Level) Build() (*world.Room, *puzzle.Grid, error) {
	room, err := l.buildRoom()
	if err != nil {
		return nil, nil, err
	}
	pz, err := l.buildPuzzle()
	if err != nil {
		return nil, nil, err
	}

	if !room.Walkable(l.Actor) {
		return nil, nil, l.errorf("actor %v does not stand on open ground", l.Actor)
	}
	if c, ok := pz.Cell(l.Actor); ok && c.HasPlant() {
		return nil, nil, l.errorf("actor %v stands on a plant", l.Actor)
	}
	return room, pz, nil
}

func (l Level) errorf(format string, args ...any) error {
	return fmt.Errorf("%w %s: %s", ErrInvalidLevel, l.ID, fmt.Sprintf(format, args...))
}

func (l Level) buildRoom() (*world.Room, error) {
	rows := l.src.Rows
	if len(rows) != int(l.Size.Y) {
		return nil, l.errorf("room has %d rows, want %d", len(rows), l.Size.Y)
	}
	if len(l.src.Heights) > int(l.Size.Y) {
		return nil, l.errorf("heights has %d rows, want at most %d", len(l.src.Heights), l.Size.Y)
	}

	room := world.NewRoom(l.Size)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) > int(l.Size.X) {
			return nil, l.errorf("room row %d is %d wide, want %d", y, len(runes), l.Size.X)
		}
		for x, r := range runes {
			tile, present, ok := tileFor(r)
			if !ok {
				return nil, l.errorf("room row %d: unknown terrain %q", y, r)
			}
			if !present {
				continue
			}
			p := grid.Pos(uint8(x), uint8(y))
			tile.Elevation = l.height(p)
			room.SetTile(p, tile)
		}
	}
	room.Freeze()
	return room, nil
}

// height reads the optional elevation digit for p; missing entries are 0.
func (l Level) height(p grid.Position) uint8 {
	if int(p.Y) >= len(l.src.Heights) {
		return 0
	}
	row := []rune(l.src.Heights[p.Y])
	if int(p.X) >= len(row) {
		return 0
	}
	if r := row[p.X]; r >= '0' && r <= '9' {
		return uint8(r - '0')
	}
	return 0
}

// tileFor decodes the terrain legend. Space is void.
func tileFor(r rune) (world.Tile, bool, bool) {
	switch r {
	case ' ':
		return world.Tile{}, false, true
	case '"':
		return world.Tile{Material: world.Grass}, true, true
	case '.':
		return world.Tile{Material: world.Dirt}, true, true
	case ':':
		return world.Tile{Material: world.Sand}, true, true
	case '#':
		return world.Tile{Material: world.Stone}, true, true
	case '~':
		return world.Tile{Material: world.Water}, true, true
	case 'o':
		return world.Tile{Material: world.Grass, Prop: world.Rock}, true, true
	default:
		return world.Tile{}, false, false
	}
}

// RegionRune decodes a region map character: 0-9, then a-z for 10-35,
// then A-Z for 36-61. The second result is false for "no cell".
func RegionRune(r rune) (puzzle.RegionID, bool) {
	switch {
	case r >= '0' && r <= '9':
		return puzzle.RegionID(r - '0'), true
	case r >= 'a' && r <= 'z':
		return puzzle.RegionID(r-'a') + 10, true
	case r >= 'A' && r <= 'Z':
		return puzzle.RegionID(r-'A') + 36, true
	default:
		return 0, false
	}
}

func (l Level) buildPuzzle() (*puzzle.Grid, error) {
	pz := puzzle.New(l.Size)

	if n := len(l.src.Regions); n > 0 {
		if n != int(l.Size.Y) {
			return nil, l.errorf("region map has %d rows, want %d", n, l.Size.Y)
		}
		for y, row := range l.src.Regions {
			if len([]rune(row)) > int(l.Size.X) {
				return nil, l.errorf("region row %d is too wide", y)
			}
		}
		for p := range l.Size.Rect(grid.East, grid.South).All() {
			row := []rune(l.src.Regions[p.Y])
			if int(p.X) >= len(row) {
				continue
			}
			id, ok := RegionRune(row[p.X])
			if !ok {
				if row[p.X] != '.' && row[p.X] != ' ' {
					return nil, l.errorf("region map %v: unknown region %q", p, row[p.X])
				}
				continue
			}
			c := puzzle.NewCell(id, puzzle.NoPlant)
			pz.SetCell(p, &c)
		}
	}

	for i, spec := range l.src.Cells {
		p, err := grid.PosFromInts(spec.X, spec.Y)
		if err != nil || !p.IsWithin(l.Size) {
			return nil, l.errorf("cell %d at (%d,%d) is outside the level", i, spec.X, spec.Y)
		}
		if spec.Region < 0 {
			return nil, l.errorf("cell %d has negative region %d", i, spec.Region)
		}
		// Each region needs a cell of its own, so ids past the cell count
		// can never be valid.
		if spec.Region >= l.Size.Area() {
			return nil, l.errorf("cell %d has region %d, level has only %d cells", i, spec.Region, l.Size.Area())
		}
		plant := puzzle.NoPlant
		if spec.Plant {
			plant = puzzle.Sprout
		}
		c := puzzle.NewCell(puzzle.RegionID(spec.Region), plant)
		pz.SetCell(p, &c)
	}

	for i, pt := range l.src.Plants {
		p, err := grid.PosFromInts(pt.X, pt.Y)
		if err != nil || !p.IsWithin(l.Size) {
			return nil, l.errorf("plant %d at (%d,%d) is outside the level", i, pt.X, pt.Y)
		}
		c, ok := pz.Cell(p)
		if !ok {
			return nil, l.errorf("plant %d at %v has no puzzle cell", i, p)
		}
		c.Plant = puzzle.Sprout
		pz.SetCell(p, &c)
	}

	// Every id up to the largest must own a cell, or the level can never be
	// cleared.
	for id := range pz.NumRegions() {
		if len(pz.RegionCells(puzzle.RegionID(id))) == 0 {
			return nil, l.errorf("region %d has no cells", id)
		}
	}
	return pz, nil
}
