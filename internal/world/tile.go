// Package world holds the static terrain of a room: materials, props and
// elevation, plus a procedural generator for it.
package world

// Material is the ground a tile is made of.
type Material uint8

const (
	Grass Material = iota
	Dirt
	Sand
	Stone
	Water
)

// String returns the material name.
func (m Material) String() string {
	switch m {
	case Grass:
		return "grass"
	case Dirt:
		return "dirt"
	case Sand:
		return "sand"
	case Stone:
		return "stone"
	case Water:
		return "water"
	default:
		return "unknown"
	}
}

// Passable reports whether a cast effect can travel across the material.
// Only soft ground lets it through; sand, stone and water absorb it.
func (m Material) Passable() bool {
	return m == Grass || m == Dirt
}

// Prop is an object standing on a tile.
type Prop uint8

const (
	NoProp Prop = iota
	Rock
)

// String returns the prop name.
func (p Prop) String() string {
	switch p {
	case NoProp:
		return "none"
	case Rock:
		return "rock"
	default:
		return "unknown"
	}
}

// Tile is one present cell of a room.
type Tile struct {
	Material  Material
	Prop      Prop
	Elevation uint8
}

// Obstructed reports whether a prop blocks the tile.
func (t Tile) Obstructed() bool {
	return t.Prop != NoProp
}
