package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrCoordinateRange is returned when an integer pair cannot be represented
// as a Position.
var ErrCoordinateRange = errors.New("grid: coordinate out of range")

// Position is an unsigned grid coordinate. The same type doubles as a size:
// a Position used as a bound contains every index strictly below it on both
// axes.
type Position struct {
	X uint8
	Y uint8
}

// Pos builds a Position from its components.
func Pos(x, y uint8) Position {
	return Position{X: x, Y: y}
}

// PosFromInts converts a signed pair (from a level file, a flag, ...) into a
// Position. Values outside 0..255 are rejected rather than truncated.
func PosFromInts(x, y int) (Position, error) {
	if x < 0 || y < 0 || x > math.MaxUint8 || y > math.MaxUint8 {
		return Position{}, fmt.Errorf("%w: (%d,%d)", ErrCoordinateRange, x, y)
	}
	return Position{X: uint8(x), Y: uint8(y)}, nil
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Area returns X*Y, the number of cells covered when p is used as a size.
func (p Position) Area() int {
	return int(p.X) * int(p.Y)
}

// Step moves one unit in dir. It fails instead of wrapping when the move
// would leave [0, bound) on the affected axis.
func (p Position) Step(dir Direction, bound Position) (Position, bool) {
	switch dir {
	case North:
		if p.Y == 0 {
			return p, false
		}
		p.Y--
	case East:
		if int(p.X)+1 >= int(bound.X) {
			return p, false
		}
		p.X++
	case South:
		if int(p.Y)+1 >= int(bound.Y) {
			return p, false
		}
		p.Y++
	case West:
		if p.X == 0 {
			return p, false
		}
		p.X--
	default:
		return p, false
	}
	return p, true
}

// SnapToEdge moves p to the extreme edge of bounds in dir, leaving the other
// axis unchanged. An empty axis snaps to 0.
func (p Position) SnapToEdge(dir Direction, bounds Position) Position {
	switch dir {
	case North:
		p.Y = 0
	case East:
		p.X = lastIndex(bounds.X)
	case South:
		p.Y = lastIndex(bounds.Y)
	case West:
		p.X = 0
	}
	return p
}

func lastIndex(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return n - 1
}

// Contains reports whether other is strictly below p on both axes, i.e.
// whether other is a valid index into something of size p.
func (p Position) Contains(other Position) bool {
	return p.X > other.X && p.Y > other.Y
}

// IsWithin reports whether p is a valid index for the given bound.
func (p Position) IsWithin(bound Position) bool {
	return bound.Contains(p)
}

// Add returns the component-wise sum, saturating at 255.
func (p Position) Add(other Position) Position {
	return Position{X: satAdd(p.X, other.X), Y: satAdd(p.Y, other.Y)}
}

// Diff returns the component-wise absolute difference.
func (p Position) Diff(other Position) Position {
	return Position{X: absDiff(p.X, other.X), Y: absDiff(p.Y, other.Y)}
}

func satAdd(a, b uint8) uint8 {
	if a > math.MaxUint8-b {
		return math.MaxUint8
	}
	return a + b
}

func absDiff(a, b uint8) uint8 {
	if a >= b {
		return a - b
	}
	return b - a
}

// Line starts a LineIterator at p.
func (p Position) Line(dir Direction, bound Position) *LineIterator {
	return NewLineIterator(p, dir, bound)
}

// Rect sweeps the rectangle of size p. See NewRectIterator.
func (p Position) Rect(primary, secondary Direction) *RectIterator {
	return NewRectIterator(p, primary, secondary)
}
