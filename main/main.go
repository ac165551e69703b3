package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/gcfg.v1"

	"github.com/windscape/abl"
	"github.com/windscape/abl/field"
	"github.com/windscape/abl/geom"
	"github.com/windscape/abl/io"
	"github.com/windscape/abl/sim"
)

func main() {
	// The main function manages input sanitization and hands the validated
	// config to initMain. The code tries to fail gracefully if the user
	// provides incorrect input.

	var (
		initStr       string
		exampleConfig string
	)

	flag.IntVar(
		&sim.NumCores, "Threads", sim.NumCores,
		"Number of threads used. Default is the number of logical cores.",
	)
	flag.StringVar(
		&initStr, "Init", "",
		"Configuration file for [Init] mode: builds the initial ABL state "+
			"and writes plane-averaged vertical profiles.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Init'.",
	)

	flag.Parse()

	switch {
	case initStr != "" && exampleConfig != "":
		log.Fatal("Only one of -Init and -ExampleConfig may be given.")

	case exampleConfig != "":
		if exampleConfig != "Init" {
			log.Fatalf(
				"Unrecognized config type '%s'. The only recognized type "+
					"is 'Init'.", exampleConfig,
			)
		}
		fmt.Println(io.ExampleInitFile)

	case initStr != "":
		wrap := io.DefaultInitWrapper()
		err := gcfg.ReadFileInto(wrap, initStr)
		if err != nil {
			log.Fatal(err.Error())
		}

		if !wrap.ABL.ValidTemperatureProfile() {
			log.Fatal(
				"TemperatureHeight and TemperatureValue must be non-empty " +
					"and the same length.",
			)
		} else if !wrap.ABL.ValidPerturbRefHeight() {
			log.Fatal("Invalid 'PerturbRefHeight' value.")
		} else if !wrap.ABL.ValidCutoffHeight() {
			log.Fatal("Invalid 'CutoffHeight' value.")
		} else if !wrap.Flow.ValidDensity() {
			log.Fatal("Invalid/non-existent 'Density' value.")
		}

		if wrap.ABL.VelocityTimeTable == "" && !wrap.Flow.ValidVelocity() {
			log.Fatal(
				"You must set either a valid 3-component 'Velocity' or a " +
					"'VelocityTimeTable'.",
			)
		}

		if !wrap.Domain.ValidWidths() {
			log.Fatal("Domain widths must all be positive.")
		} else if !wrap.Domain.ValidCells() {
			log.Fatal("Domain cell counts must all be positive.")
		} else if !wrap.Domain.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		}

		initMain(wrap)

	default:
		log.Fatal("Must give either -Init or -ExampleConfig.")
	}
}

func initMain(wrap *io.InitWrapper) {
	dom := &wrap.Domain

	cells := [3]int{dom.XCells, dom.YCells, dom.ZCells}
	probLo := [3]float64{dom.X, dom.Y, dom.Z}
	probHi := [3]float64{
		dom.X + dom.XWidth, dom.Y + dom.YWidth, dom.Z + dom.ZWidth,
	}
	g := geom.NewGeometry(probLo, probHi, cells)
	bounds := geom.CellBounds{Width: cells}

	vel := field.NewVector([3]int{}, cells)
	rho := field.NewScalar([3]int{}, cells)
	theta := field.NewScalar([3]int{}, cells)
	tke := field.NewScalarWithHalo([3]int{}, cells, 1)

	fi, err := abl.New(&wrap.ABL, &wrap.Flow)
	if err != nil {
		log.Fatal(err.Error())
	}

	eng := sim.NewEngine(bounds, uint64(dom.Seed))

	log.Printf("Initializing %d cells on %d threads.",
		bounds.Cells(), sim.NumCores)
	eng.ForEachBlock(func(cb *geom.CellBounds) {
		fi.Apply(cb, g, vel, rho, theta)
	})

	streams := eng.Streams()
	eng.ForEachBlock(func(cb *geom.CellBounds) {
		fi.PerturbTemperature(cb, g, theta, streams)
	})

	fi.InitTKE(tke)

	if err := writeProfiles(dom.Output, g, cells, vel, rho, theta); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote vertical profiles to %s.", dom.Output)
}

// writeProfiles writes plane-averaged vertical profiles as a whitespace
// table with one row per cell layer.
func writeProfiles(
	fname string, g *geom.Geometry, cells [3]int,
	vel *field.Vector, rho, theta *field.Scalar,
) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	// Horizontal planes are contiguous in the flat layout.
	area := cells[0] * cells[1]
	fArea := float64(area)

	fmt.Fprintln(f, "#         z         u         v     theta       rho")
	for k := 0; k < cells[2]; k++ {
		lo, hi := k*area, (k+1)*area
		fmt.Fprintf(f, "%9.4g %9.4g %9.4g %9.4g %9.4g\n",
			g.Height(k),
			floats.Sum(vel.X[lo:hi])/fArea,
			floats.Sum(vel.Y[lo:hi])/fArea,
			floats.Sum(theta.Data[lo:hi])/fArea,
			floats.Sum(rho.Data[lo:hi])/fArea,
		)
	}
	return nil
}
