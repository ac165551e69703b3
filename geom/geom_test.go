package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellCenter(t *testing.T) {
	g := NewGeometry(
		[3]float64{0, 0, 0}, [3]float64{100, 200, 400}, [3]int{10, 10, 10},
	)

	assert.Equal(t, [3]float64{10, 20, 40}, g.Dx)

	x, y, z := g.CellCenter(0, 0, 0)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 10.0, y)
	assert.Equal(t, 20.0, z)

	x, y, z = g.CellCenter(9, 9, 9)
	assert.Equal(t, 95.0, x)
	assert.Equal(t, 190.0, y)
	assert.Equal(t, 380.0, z)

	// Halo cells sit outside the domain but still have centers.
	x, _, _ = g.CellCenter(-1, 0, 0)
	assert.Equal(t, -5.0, x)
}

func TestHeightAndExtent(t *testing.T) {
	g := NewGeometry(
		[3]float64{0, 0, -40}, [3]float64{1000, 1000, 280}, [3]int{4, 4, 4},
	)

	assert.Equal(t, 0.0, g.Height(0))
	assert.Equal(t, 80.0, g.Height(1))
	assert.Equal(t, 1000.0, g.Extent(0))
	assert.Equal(t, 320.0, g.Extent(2))
}

func TestGridIdxCoords(t *testing.T) {
	g := NewGrid([3]int{0, 0, 0}, [3]int{4, 5, 6})

	assert.Equal(t, 120, g.Volume)
	assert.Equal(t, 0, g.Idx(0, 0, 0))
	assert.Equal(t, g.Volume-1, g.Idx(3, 4, 5))

	for idx := 0; idx < g.Volume; idx++ {
		x, y, z := g.Coords(idx)
		assert.Equal(t, idx, g.Idx(x, y, z), "roundtrip")
	}
}

func TestGridWithOffsetOrigin(t *testing.T) {
	// A grid grown by a halo layer starts at negative coordinates.
	g := NewGrid([3]int{-1, -1, -1}, [3]int{6, 6, 6})

	assert.Equal(t, 0, g.Idx(-1, -1, -1))

	x, y, z := g.Coords(0)
	assert.Equal(t, -1, x)
	assert.Equal(t, -1, y)
	assert.Equal(t, -1, z)

	assert.True(t, g.BoundsCheck(-1, 0, 4))
	assert.False(t, g.BoundsCheck(5, 0, 0))

	_, ok := g.IdxCheck(6, 6, 6)
	assert.False(t, ok)
}

func TestCellBounds(t *testing.T) {
	cb := CellBounds{Origin: [3]int{0, 0, 0}, Width: [3]int{4, 4, 4}}
	assert.Equal(t, 64, cb.Cells())

	grown := cb.Grow(1)
	assert.Equal(t, [3]int{-1, -1, -1}, grown.Origin)
	assert.Equal(t, [3]int{6, 6, 6}, grown.Width)
	assert.Equal(t, 216, grown.Cells())
	// The original is untouched.
	assert.Equal(t, [3]int{0, 0, 0}, cb.Origin)
}
