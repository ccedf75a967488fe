package grid

import (
	"fmt"
	"iter"
)

// LineIterator walks from an origin one step at a time in a fixed direction
// until the next step would leave the bound. It is single-use; build a new
// one to walk the same line again.
type LineIterator struct {
	next  Position
	dir   Direction
	bound Position
	done  bool
}

// NewLineIterator returns an iterator yielding origin and every position
// reachable from it by repeated steps in dir. The sequence is empty when
// origin is not within bound.
func NewLineIterator(origin Position, dir Direction, bound Position) *LineIterator {
	return &LineIterator{
		next:  origin,
		dir:   dir,
		bound: bound,
		done:  !bound.Contains(origin),
	}
}

// Next returns the next position, or false once the line is exhausted.
func (it *LineIterator) Next() (Position, bool) {
	if it.done {
		return Position{}, false
	}
	val := it.next
	if step, ok := it.next.Step(it.dir, it.bound); ok {
		it.next = step
	} else {
		it.done = true
	}
	return val, true
}

// All drains the iterator as a range-over-func sequence.
func (it *LineIterator) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// RectIterator sweeps a whole rectangle: for each position of an outer line
// along the secondary direction it yields a full inner line along the
// primary direction.
type RectIterator struct {
	primary   *LineIterator
	secondary *LineIterator
	bound     Position
	dir       Direction
}

// NewRectIterator covers every index of a rectangle of size bound exactly
// once. Traversal starts in the corner opposite to both directions, so
// (East, South) is ordinary row-major order.
//
// It panics if primary and secondary are parallel.
func NewRectIterator(bound Position, primary, secondary Direction) *RectIterator {
	if !primary.Orthogonal(secondary) {
		panic(fmt.Sprintf("grid: non-orthogonal directions %s/%s", primary, secondary))
	}

	origin := Position{}.
		SnapToEdge(primary.Opposite(), bound).
		SnapToEdge(secondary.Opposite(), bound)

	secondaryLine := NewLineIterator(origin, secondary, bound)

	// Pull the first outer value now so the first Next yields origin itself.
	var primaryLine *LineIterator
	if start, ok := secondaryLine.Next(); ok {
		primaryLine = NewLineIterator(start, primary, bound)
	} else {
		primaryLine = NewLineIterator(origin, primary, Position{})
	}

	return &RectIterator{
		primary:   primaryLine,
		secondary: secondaryLine,
		bound:     bound,
		dir:       primary,
	}
}

// Next returns the next position, or false once the rectangle is covered.
func (it *RectIterator) Next() (Position, bool) {
	for {
		if p, ok := it.primary.Next(); ok {
			return p, true
		}
		start, ok := it.secondary.Next()
		if !ok {
			return Position{}, false
		}
		it.primary = NewLineIterator(start, it.dir, it.bound)
	}
}

// All drains the iterator as a range-over-func sequence.
func (it *RectIterator) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}
