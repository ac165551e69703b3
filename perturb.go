package abl

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/windscape/abl/field"
	"github.com/windscape/abl/geom"
)

// StreamFn maps a cell's grid index to an independent random source. The
// execution engine owns the mapping; for a fixed seed it must return a
// source producing the same draws for the same index every run.
type StreamFn func(idx int) rand.Source

// PerturbTemperature overwrites the temperature of every cell in the block
// whose height lies below the cutoff with amplitude-scaled Gaussian noise,
// one independent draw per cell. Cells at or above the cutoff are left
// untouched. The method follows the stochastic inflow perturbations of
// Munoz-Esparza et al., Physics of Fluids 27 (2015).
//
// Draws come from the per-cell streams, so the pass is reproducible for a
// fixed seed and needs no synchronization between cells.
func (fi *FieldInit) PerturbTemperature(
	cb *geom.CellBounds, g *geom.Geometry,
	theta *field.Scalar, streams StreamFn,
) {
	if !fi.perturbTheta {
		return
	}

	for k := cb.Origin[2]; k < cb.Origin[2]+cb.Width[2]; k++ {
		z := g.Height(k)
		if z >= fi.cutoffHeight {
			continue
		}
		for j := cb.Origin[1]; j < cb.Origin[1]+cb.Width[1]; j++ {
			for i := cb.Origin[0]; i < cb.Origin[0]+cb.Width[0]; i++ {
				idx := theta.Idx(i, j, k)
				dist := distuv.Normal{
					Mu:    fi.gaussMean,
					Sigma: fi.gaussVar,
					Src:   streams(idx),
				}
				theta.Data[idx] = fi.deltaT * dist.Rand()
			}
		}
	}
}
