package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectLine(it *LineIterator) []Position {
	var out []Position
	for p := range it.All() {
		out = append(out, p)
	}
	return out
}

func TestLineIteratorWalksToEdge(t *testing.T) {
	got := collectLine(NewLineIterator(Pos(1, 2), East, Pos(4, 4)))
	assert.Equal(t, []Position{Pos(1, 2), Pos(2, 2), Pos(3, 2)}, got)

	got = collectLine(NewLineIterator(Pos(1, 2), North, Pos(4, 4)))
	assert.Equal(t, []Position{Pos(1, 2), Pos(1, 1), Pos(1, 0)}, got)
}

func TestLineIteratorOriginOnEdge(t *testing.T) {
	got := collectLine(NewLineIterator(Pos(3, 0), East, Pos(4, 4)))
	assert.Equal(t, []Position{Pos(3, 0)}, got)
}

func TestLineIteratorOutOfBoundsOriginIsEmpty(t *testing.T) {
	bound := Pos(4, 3)
	outside := []Position{Pos(4, 0), Pos(0, 3), Pos(10, 10), Pos(255, 0)}

	for _, origin := range outside {
		for _, d := range Directions() {
			t.Run(fmt.Sprintf("%v %s", origin, d), func(t *testing.T) {
				assert.Empty(t, collectLine(NewLineIterator(origin, d, bound)))
			})
		}
	}

	assert.Empty(t, collectLine(NewLineIterator(Pos(0, 0), East, Pos(0, 0))))
}

func TestLineIteratorIsSingleUse(t *testing.T) {
	it := NewLineIterator(Pos(0, 0), South, Pos(1, 2))
	assert.Len(t, collectLine(it), 2)

	_, ok := it.Next()
	assert.False(t, ok, "exhausted iterator must stay exhausted")

	// A fresh iterator with the same parameters starts over.
	assert.Len(t, collectLine(NewLineIterator(Pos(0, 0), South, Pos(1, 2))), 2)
}

func orthogonalPairs() [][2]Direction {
	var pairs [][2]Direction
	for _, a := range Directions() {
		for _, b := range Directions() {
			if a.Orthogonal(b) {
				pairs = append(pairs, [2]Direction{a, b})
			}
		}
	}
	return pairs
}

func TestRectIteratorCoversEveryCellOnce(t *testing.T) {
	sizes := []Position{Pos(1, 1), Pos(4, 4), Pos(5, 3), Pos(2, 7)}

	pairs := orthogonalPairs()
	require.Len(t, pairs, 8)

	for _, size := range sizes {
		for _, pair := range pairs {
			t.Run(fmt.Sprintf("%v %s/%s", size, pair[0], pair[1]), func(t *testing.T) {
				seen := make(map[Position]int)
				count := 0
				for p := range NewRectIterator(size, pair[0], pair[1]).All() {
					require.True(t, p.IsWithin(size), "%v outside %v", p, size)
					seen[p]++
					count++
				}
				assert.Equal(t, size.Area(), count)
				assert.Len(t, seen, size.Area())
				for p, n := range seen {
					assert.Equal(t, 1, n, "%v visited %d times", p, n)
				}
			})
		}
	}
}

func TestRectIteratorFirstValueIsOrigin(t *testing.T) {
	size := Pos(4, 3)

	tests := []struct {
		primary, secondary Direction
		origin, second     Position
	}{
		{East, South, Pos(0, 0), Pos(1, 0)},
		{South, East, Pos(0, 0), Pos(0, 1)},
		{West, North, Pos(3, 2), Pos(2, 2)},
		{North, West, Pos(3, 2), Pos(3, 1)},
		{East, North, Pos(0, 2), Pos(1, 2)},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s/%s", tc.primary, tc.secondary), func(t *testing.T) {
			it := NewRectIterator(size, tc.primary, tc.secondary)
			first, ok := it.Next()
			require.True(t, ok)
			assert.Equal(t, tc.origin, first)
			second, ok := it.Next()
			require.True(t, ok)
			assert.Equal(t, tc.second, second)
		})
	}
}

func TestRectIteratorRowMajorOrder(t *testing.T) {
	var got []Position
	for p := range Pos(2, 2).Rect(East, South).All() {
		got = append(got, p)
	}
	assert.Equal(t, []Position{Pos(0, 0), Pos(1, 0), Pos(0, 1), Pos(1, 1)}, got)
}

func TestRectIteratorEmptyRange(t *testing.T) {
	for _, size := range []Position{Pos(0, 0), Pos(0, 3), Pos(3, 0)} {
		_, ok := NewRectIterator(size, East, South).Next()
		assert.False(t, ok, "size %v", size)
	}
}

func TestRectIteratorRejectsParallelDirections(t *testing.T) {
	assert.Panics(t, func() { NewRectIterator(Pos(3, 3), North, South) })
	assert.Panics(t, func() { NewRectIterator(Pos(3, 3), East, East) })
}
