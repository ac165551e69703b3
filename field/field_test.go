package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarFill(t *testing.T) {
	s := NewScalar([3]int{0, 0, 0}, [3]int{4, 4, 4})
	s.Fill(0.1)

	assert.Equal(t, 64, len(s.Data))
	for i := range s.Data {
		assert.Equal(t, 0.1, s.Data[i])
	}
}

func TestScalarWithHalo(t *testing.T) {
	s := NewScalarWithHalo([3]int{0, 0, 0}, [3]int{4, 4, 4}, 1)

	// One halo layer on every face.
	assert.Equal(t, 216, len(s.Data))
	assert.Equal(t, [3]int{-1, -1, -1}, s.Origin)

	s.Fill(0.25)
	assert.Equal(t, 0.25, s.At(-1, -1, -1), "halo corner")
	assert.Equal(t, 0.25, s.At(4, 4, 4), "opposite halo corner")
}

func TestScalarSetAdd(t *testing.T) {
	s := NewScalar([3]int{0, 0, 0}, [3]int{2, 2, 2})

	s.Set(1, 0, 1, 300)
	s.Add(1, 0, 1, 0.5)
	assert.Equal(t, 300.5, s.At(1, 0, 1))
	assert.Equal(t, 0.0, s.At(0, 0, 0), "other cells untouched")
}

func TestVector(t *testing.T) {
	v := NewVector([3]int{0, 0, 0}, [3]int{3, 3, 3})

	assert.Equal(t, 27, len(v.X))
	assert.Equal(t, 27, len(v.Y))
	assert.Equal(t, 27, len(v.Z))

	idx := v.Idx(2, 1, 0)
	v.X[idx], v.Y[idx], v.Z[idx] = 6, 5, 0

	vx, vy, vz := v.At(2, 1, 0)
	assert.Equal(t, 6.0, vx)
	assert.Equal(t, 5.0, vy)
	assert.Equal(t, 0.0, vz)
}
