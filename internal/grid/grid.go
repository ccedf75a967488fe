package grid

import (
	"fmt"
	"iter"
)

// Grid is a dense 2D container. Cells are stored in row-major order:
// index = y*width + x. Access outside the declared size panics; callers are
// expected to validate positions with Step or Contains first.
type Grid[T any] struct {
	cells []T
	size  Position
}

// New allocates a grid of the given size filled with the zero value of T.
func New[T any](size Position) *Grid[T] {
	return &Grid[T]{
		cells: make([]T, size.Area()),
		size:  size,
	}
}

// Filled allocates a grid of the given size with every cell set to v.
func Filled[T any](size Position, v T) *Grid[T] {
	g := New[T](size)
	for i := range g.cells {
		g.cells[i] = v
	}
	return g
}

// Size returns the declared (width, height).
func (g *Grid[T]) Size() Position {
	return g.size
}

// InBounds reports whether p addresses a cell of g.
func (g *Grid[T]) InBounds(p Position) bool {
	return g.size.Contains(p)
}

// index converts a position to a flat slice index, panicking when p is out
// of bounds.
func (g *Grid[T]) index(p Position) int {
	if !g.size.Contains(p) {
		panic(fmt.Sprintf("grid: position %v out of bounds %v", p, g.size))
	}
	return int(p.Y)*int(g.size.X) + int(p.X)
}

// At returns the value stored at p.
func (g *Grid[T]) At(p Position) T {
	return g.cells[g.index(p)]
}

// Ref returns a pointer to the cell at p for in-place mutation.
func (g *Grid[T]) Ref(p Position) *T {
	return &g.cells[g.index(p)]
}

// Set stores v at p.
func (g *Grid[T]) Set(p Position, v T) {
	g.cells[g.index(p)] = v
}

// Clone returns a copy of the grid. Values are copied shallowly.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{cells: cells, size: g.size}
}

// All yields every position and its value in row-major order.
func (g *Grid[T]) All() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for p := range g.size.Rect(East, South).All() {
			if !yield(p, g.cells[g.index(p)]) {
				return
			}
		}
	}
}
