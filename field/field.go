// Package field provides flat scalar and vector cell data over a 3D grid.
// Fields are owned by whoever allocates them; the initializer kernels only
// write into the blocks they are handed.
package field

import (
	"github.com/windscape/abl/geom"
)

// Scalar is a single-component cell field stored as a flat slice.
type Scalar struct {
	geom.Grid
	Data []float64
}

// NewScalar allocates a Scalar covering the given block of cells.
func NewScalar(origin, width [3]int) *Scalar {
	s := &Scalar{}
	s.Init(origin, width)
	s.Data = make([]float64, s.Volume)
	return s
}

// NewScalarWithHalo allocates a Scalar covering the given block plus ng
// layers of halo cells on every face.
func NewScalarWithHalo(origin, width [3]int, ng int) *Scalar {
	cb := geom.CellBounds{Origin: origin, Width: width}
	cb = cb.Grow(ng)
	return NewScalar(cb.Origin, cb.Width)
}

// Fill sets every cell of the field, halo included, to v.
func (s *Scalar) Fill(v float64) {
	for i := range s.Data {
		s.Data[i] = v
	}
}

// At returns the value at cell (x, y, z).
func (s *Scalar) At(x, y, z int) float64 { return s.Data[s.Idx(x, y, z)] }

// Set overwrites the value at cell (x, y, z).
func (s *Scalar) Set(x, y, z int, v float64) { s.Data[s.Idx(x, y, z)] = v }

// Add adds v to the value at cell (x, y, z).
func (s *Scalar) Add(x, y, z int, v float64) { s.Data[s.Idx(x, y, z)] += v }

// Vector is a three-component cell field with one flat slice per component.
type Vector struct {
	geom.Grid
	X, Y, Z []float64
}

// NewVector allocates a Vector covering the given block of cells.
func NewVector(origin, width [3]int) *Vector {
	v := &Vector{}
	v.Init(origin, width)
	v.X = make([]float64, v.Volume)
	v.Y = make([]float64, v.Volume)
	v.Z = make([]float64, v.Volume)
	return v
}

// At returns the three components at cell (x, y, z).
func (v *Vector) At(x, y, z int) (vx, vy, vz float64) {
	idx := v.Idx(x, y, z)
	return v.X[idx], v.Y[idx], v.Z[idx]
}
