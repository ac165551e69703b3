package main

import (
	"log"
	"os"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/gcfg.v1"

	"github.com/windscape/abl/io"
	"github.com/windscape/abl/profile"
)

const evalPoints = 200

// Plots the configured potential temperature profile against the
// plane-averaged profile written by the initializer driver.
func main() {
	if len(os.Args) != 4 {
		log.Fatalf(
			"Required file use: $ %s init_config profile_file out_png",
			os.Args[0],
		)
	}

	configFile, profileFile, outFile := os.Args[1], os.Args[2], os.Args[3]

	wrap := io.DefaultInitWrapper()
	if err := gcfg.ReadFileInto(wrap, configFile); err != nil {
		log.Fatal(err.Error())
	}
	if !wrap.ABL.ValidTemperatureProfile() {
		log.Fatal("Config does not contain a valid temperature profile.")
	}

	tab := profile.New(wrap.ABL.TemperatureHeight, wrap.ABL.TemperatureValue)
	knotHeights, _ := tab.Knots()

	zs := make([]float64, evalPoints)
	floats.Span(zs, 0, 1.1*knotHeights[len(knotHeights)-1])
	thetas := tab.EvalAll(zs)

	// Columns: z, u, v, theta, rho.
	cols, err := table.ReadTable(profileFile, []int{0, 3}, nil)
	if err != nil {
		log.Fatal(err.Error())
	}
	outZs, outThetas := cols[0], cols[1]

	plt.Reset()
	plt.Figure()
	plt.Plot(thetas, zs, "r", plt.LW(2))
	plt.Plot(outThetas, outZs, "ok")
	plt.XLabel(`$\theta$ [K]`, plt.FontSize(16))
	plt.YLabel(`$z$ [m]`, plt.FontSize(16))
	plt.Title("Initial potential temperature")
	plt.SaveFig(outFile)
	plt.Execute()
}
