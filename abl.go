// Package abl generates the initial state of an atmospheric-boundary-layer
// simulation: mean velocity, density, potential temperature, and subgrid
// turbulent kinetic energy, as functions of cell position. The mesh, the
// output fields, and the parallel execution engine belong to the caller; the
// package only captures immutable parameters at construction and writes into
// the blocks it is handed.
package abl

import (
	"fmt"
	"math"

	"github.com/windscape/abl/field"
	"github.com/windscape/abl/geom"
	"github.com/windscape/abl/io"
	"github.com/windscape/abl/profile"
)

// FieldInit computes initial field values cell by cell. All of its state is
// captured once at construction and is read-only afterwards, so a single
// FieldInit may be shared by any number of workers.
type FieldInit struct {
	theta *profile.Table

	rho                 float64
	umean, vmean, wmean float64

	perturbVel         bool
	refHeight          float64
	uPeriods, vPeriods float64
	deltaU, deltaV     float64

	perturbTheta        bool
	gaussMean, gaussVar float64
	cutoffHeight        float64
	deltaT              float64

	tkeInit float64
}

// New creates a FieldInit from the boundary-layer and flow parameter
// namespaces. The mean velocity is resolved here, once: from the first
// record of the configured time table if one is given, otherwise from the
// constant velocity vector.
func New(con *io.ABLConfig, flow *io.FlowConfig) (*FieldInit, error) {
	fi := &FieldInit{
		theta: profile.New(con.TemperatureHeight, con.TemperatureValue),

		rho: flow.Density,

		perturbVel: con.PerturbVelocity,
		refHeight:  con.PerturbRefHeight,
		uPeriods:   con.UPeriods,
		vPeriods:   con.VPeriods,
		deltaU:     con.DeltaU,
		deltaV:     con.DeltaV,

		perturbTheta: con.PerturbTemperature,
		gaussMean:    con.RandomGaussMean,
		gaussVar:     con.RandomGaussVar,
		cutoffHeight: con.CutoffHeight,
		deltaT:       con.ThetaAmplitude,

		tkeInit: con.InitTKE,
	}

	if con.VelocityTimeTable != "" {
		rec, err := io.ReadVelocityTable(con.VelocityTimeTable)
		if err != nil {
			return nil, err
		}
		rad := radians(rec.Direction)
		fi.umean = rec.Speed * math.Cos(rad)
		fi.vmean = rec.Speed * math.Sin(rad)
		fi.wmean = 0
	} else {
		if len(flow.Velocity) != 3 {
			return nil, fmt.Errorf(
				"Flow velocity must have 3 components, got %d.",
				len(flow.Velocity),
			)
		}
		fi.umean = flow.Velocity[0]
		fi.vmean = flow.Velocity[1]
		fi.wmean = flow.Velocity[2]
	}

	return fi, nil
}

// MeanVelocity returns the resolved mean velocity components.
func (fi *FieldInit) MeanVelocity() (u, v, w float64) {
	return fi.umean, fi.vmean, fi.wmean
}

// Apply initializes velocity, density, and temperature for every cell in the
// given block. Temperature is additive: the profile value is added to
// whatever the field already holds. Each cell's result depends only on its
// own position, so blocks and cells may be processed in any order or
// concurrently.
func (fi *FieldInit) Apply(
	cb *geom.CellBounds, g *geom.Geometry,
	vel *field.Vector, rho, theta *field.Scalar,
) {
	aval := fi.uPeriods * 2 * math.Pi / g.Extent(1)
	bval := fi.vPeriods * 2 * math.Pi / g.Extent(0)
	ufac := fi.deltaU * math.Exp(0.5) / fi.refHeight
	vfac := fi.deltaV * math.Exp(0.5) / fi.refHeight

	for k := cb.Origin[2]; k < cb.Origin[2]+cb.Width[2]; k++ {
		for j := cb.Origin[1]; j < cb.Origin[1]+cb.Width[1]; j++ {
			for i := cb.Origin[0]; i < cb.Origin[0]+cb.Width[0]; i++ {
				x, y, z := g.CellCenter(i, j, k)

				rho.Set(i, j, k, fi.rho)

				vidx := vel.Idx(i, j, k)
				vel.X[vidx] = fi.umean
				vel.Y[vidx] = fi.vmean
				vel.Z[vidx] = fi.wmean

				theta.Add(i, j, k, fi.theta.Eval(z))

				if fi.perturbVel {
					xl := x - g.ProbLo[0]
					yl := y - g.ProbLo[1]
					zl := z / fi.refHeight
					damp := math.Exp(-0.5 * zl * zl)

					vel.X[vidx] += ufac * damp * z * math.Cos(aval*yl)
					vel.Y[vidx] += vfac * damp * z * math.Cos(bval*xl)
				}
			}
		}
	}
}

// InitTKE fills the turbulent kinetic energy field, halo layer included,
// with the configured constant.
func (fi *FieldInit) InitTKE(tke *field.Scalar) {
	tke.Fill(fi.tkeInit)
}

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
