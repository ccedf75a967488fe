// Package grid provides the spatial addressing layer shared by every board in
// the game: compass directions, unsigned positions, a dense bounds-checked
// container and the line/rectangle traversals built on top of them.
//
// The package has no dependencies outside the standard library and performs
// no I/O, so everything in it is deterministic and cheap to test.
package grid

import "fmt"

// Direction is one of the four compass directions.
// North decreases Y, South increases Y (screen coordinates).
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions returns the four directions in flag order.
func Directions() [4]Direction {
	return [4]Direction{North, East, South, West}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d <= West
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Flag returns the single bit used for d in a wall mask (1, 2, 4 or 8).
func (d Direction) Flag() uint8 {
	return 1 << d
}

// Orthogonal reports whether d and other lie on different axes.
// Flag exponents of perpendicular directions always differ by an odd amount.
func (d Direction) Orthogonal(other Direction) bool {
	return (uint8(d)+uint8(other))%2 == 1
}

// ParseDirection maps a direction name ("north", "N", ...) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north", "North", "n", "N":
		return North, true
	case "east", "East", "e", "E":
		return East, true
	case "south", "South", "s", "S":
		return South, true
	case "west", "West", "w", "W":
		return West, true
	}
	return 0, false
}
