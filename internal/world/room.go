package world

import (
	"fmt"

	"github.com/vovakirdan/niwa/internal/grid"
)

// Room is a grid of optional tiles. A missing tile is void: it cannot be
// entered and is not drawn.
//
// A room is built with SetTile and then frozen; after Freeze it is
// read-only and further SetTile calls panic.
type Room struct {
	tiles  *grid.Grid[*Tile]
	frozen bool
}

// NewRoom creates an all-void room of the given size.
func NewRoom(size grid.Position) *Room {
	return &Room{tiles: grid.New[*Tile](size)}
}

// Size returns the room dimensions.
func (r *Room) Size() grid.Position {
	return r.tiles.Size()
}

// Tile returns the tile at p and whether one is present.
// p must be within the room.
func (r *Room) Tile(p grid.Position) (Tile, bool) {
	t := r.tiles.At(p)
	if t == nil {
		return Tile{}, false
	}
	return *t, true
}

// SetTile places t at p.
func (r *Room) SetTile(p grid.Position, t Tile) {
	r.mustBeOpen()
	r.tiles.Set(p, &t)
}

// ClearTile turns p back into void.
func (r *Room) ClearTile(p grid.Position) {
	r.mustBeOpen()
	r.tiles.Set(p, nil)
}

// Freeze ends construction.
func (r *Room) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Room) Frozen() bool {
	return r.frozen
}

// Walkable reports whether an actor may stand on p: the position is inside
// the room, a tile is present there and nothing obstructs it.
func (r *Room) Walkable(p grid.Position) bool {
	if !p.IsWithin(r.Size()) {
		return false
	}
	t, ok := r.Tile(p)
	return ok && !t.Obstructed()
}

// Count returns the number of present tiles.
func (r *Room) Count() int {
	n := 0
	for _, t := range r.tiles.All() {
		if t != nil {
			n++
		}
	}
	return n
}

func (r *Room) mustBeOpen() {
	if r.frozen {
		panic(fmt.Sprintf("world: room %v is frozen", r.Size()))
	}
}
