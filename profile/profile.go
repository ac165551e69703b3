// Package profile implements piecewise-linear vertical profiles used for the
// initial stratification of the boundary layer.
package profile

import (
	"fmt"
)

// Table is an immutable piecewise-linear lookup from height to a scalar
// value, built once from paired knot arrays.
type Table struct {
	heights, values []float64
}

// Evaluator evaluates a profile at a height.
type Evaluator interface {
	Eval(z float64) float64
}

var (
	_ Evaluator = &Table{}
)

// New creates a Table from a sequence of knot heights, assumed to be
// non-decreasing, and the values taken at those heights.
//
// New panics if the slices differ in length or are empty. The input slices
// are copied, so the Table stays valid if the caller mutates them later.
func New(heights, values []float64) *Table {
	if len(heights) != len(values) {
		panic(fmt.Sprintf(
			"Table given %d heights, but %d values.",
			len(heights), len(values),
		))
	}
	if len(heights) == 0 {
		panic("Table given zero knots.")
	}

	t := &Table{
		heights: make([]float64, len(heights)),
		values:  make([]float64, len(values)),
	}
	copy(t.heights, heights)
	copy(t.values, values)
	return t
}

// Eval returns the value of the profile at height z.
//
// Heights bracketed by a knot pair (h0, h1], with h0 < z <= h1, interpolate
// linearly between the pair's values. Heights at or below the first knot, or
// above the last, return the first knot's value. The fallback is kept for
// compatibility with existing solver output: it does not clamp to the top of
// the profile.
func (t *Table) Eval(z float64) float64 {
	v := t.values[0]
	for i := 0; i < len(t.heights)-1; i++ {
		if z > t.heights[i] && z <= t.heights[i+1] {
			slope := (t.values[i+1] - t.values[i]) /
				(t.heights[i+1] - t.heights[i])
			v = t.values[i] + (z-t.heights[i])*slope
		}
	}
	return v
}

// EvalAll evaluates the profile at all the given heights. If an output array
// is given, the output is written to that array (the array is still returned
// as a convenience).
//
// If more than one output array is provided, only the first is used.
func (t *Table) EvalAll(zs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(zs))}
	}
	for i, z := range zs {
		out[0][i] = t.Eval(z)
	}
	return out[0]
}

// Len returns the number of knots in the table.
func (t *Table) Len() int { return len(t.heights) }

// Knots returns copies of the table's height and value arrays.
func (t *Table) Knots() (heights, values []float64) {
	heights = make([]float64, len(t.heights))
	values = make([]float64, len(t.values))
	copy(heights, t.heights)
	copy(values, t.values)
	return heights, values
}
