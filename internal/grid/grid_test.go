package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGridZeroFilled(t *testing.T) {
	g := New[int](Pos(3, 2))

	assert.Equal(t, Pos(3, 2), g.Size())
	for p, v := range g.All() {
		assert.Zero(t, v, "cell %v", p)
	}
}

func TestFilledGrid(t *testing.T) {
	g := Filled(Pos(2, 2), "x")
	for _, v := range g.All() {
		assert.Equal(t, "x", v)
	}
}

func TestGridSetAndGet(t *testing.T) {
	g := New[int](Pos(4, 3))
	g.Set(Pos(3, 2), 7)
	*g.Ref(Pos(1, 0)) += 5

	assert.Equal(t, 7, g.At(Pos(3, 2)))
	assert.Equal(t, 5, g.At(Pos(1, 0)))
	assert.Zero(t, g.At(Pos(0, 0)))
}

func TestGridRowMajorLayout(t *testing.T) {
	g := New[int](Pos(3, 2))
	i := 0
	for p := range g.Size().Rect(East, South).All() {
		g.Set(p, i)
		i++
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, g.cells)
	assert.Equal(t, 4, g.At(Pos(1, 1)))
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := New[int](Pos(4, 4))

	// A position that would alias a valid slot in a flat slice still fails.
	assert.Panics(t, func() { g.At(Pos(4, 0)) })
	assert.Panics(t, func() { g.Set(Pos(0, 4), 1) })
	assert.Panics(t, func() { g.Ref(Pos(9, 9)) })
	assert.NotPanics(t, func() { g.At(Pos(3, 3)) })
}

func TestGridInBounds(t *testing.T) {
	g := New[bool](Pos(2, 3))
	assert.True(t, g.InBounds(Pos(1, 2)))
	assert.False(t, g.InBounds(Pos(2, 0)))
	assert.False(t, g.InBounds(Pos(0, 3)))
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := New[int](Pos(2, 2))
	g.Set(Pos(0, 0), 1)

	c := g.Clone()
	c.Set(Pos(0, 0), 2)

	assert.Equal(t, 1, g.At(Pos(0, 0)))
	assert.Equal(t, 2, c.At(Pos(0, 0)))
	assert.Equal(t, g.Size(), c.Size())
}
