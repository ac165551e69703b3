package io

const (
	ExampleInitFile = `[ABL]

#######################
# Required Parameters #
#######################

# Potential temperature variation as a function of height, given as paired
# knot arrays. Repeat the two variables once per knot. Heights must be
# non-decreasing and both arrays must have the same length.
TemperatureHeight = 0
TemperatureHeight = 650
TemperatureHeight = 750
TemperatureHeight = 1000
TemperatureValue = 300
TemperatureValue = 300
TemperatureValue = 308
TemperatureValue = 308.75

#######################
# Optional Parameters #
#######################

# Sinusoidal perturbations added to the mean velocity below roughly
# PerturbRefHeight. UPeriods and VPeriods count full periods across the
# domain; DeltaU and DeltaV set the amplitudes.
# PerturbVelocity = true
# PerturbRefHeight = 50
# UPeriods = 4
# VPeriods = 4
# DeltaU = 1
# DeltaV = 1

# Gaussian perturbations that overwrite the temperature field below
# CutoffHeight. RandomGaussVar is handed to the sampler as its scale
# parameter.
# PerturbTemperature = false
# RandomGaussMean = 0
# RandomGaussVar = 1
# CutoffHeight = 1e16
# ThetaAmplitude = 1

# Initial subgrid turbulent kinetic energy, filled uniformly.
# InitTKE = 0.1

# Read the mean velocity from the first record of a whitespace-separated
# 'time speed direction_degrees' table instead of the [Flow] Velocity
# vector. Only the first record is used.
# VelocityTimeTable = path/to/table.txt

[Flow]

# Constant initial density.
Density = 1.225

# Constant mean velocity, one component per line. Ignored when
# VelocityTimeTable is set.
Velocity = 6
Velocity = 5
Velocity = 0

[Domain]

# Location of the lowermost corner:
X = 0
Y = 0
Z = 0

# Width of the domain in each dimension:
XWidth = 5120
YWidth = 5120
ZWidth = 1280

# Number of cells in each dimension:
XCells = 64
YCells = 64
ZCells = 16

#######################
# Optional Parameters #
#######################

# Seed for the temperature perturbation streams.
# Seed = 42

# File the plane-averaged vertical profiles are written to.
# Output = profiles.txt`
)

// ABLConfig holds the boundary-layer parameters: the temperature profile,
// the velocity and temperature perturbations, and the initial TKE.
type ABLConfig struct {
	// Required
	TemperatureHeight []float64
	TemperatureValue  []float64

	// Optional
	PerturbVelocity  bool
	PerturbRefHeight float64
	UPeriods         float64
	VPeriods         float64
	DeltaU           float64
	DeltaV           float64

	PerturbTemperature bool
	RandomGaussMean    float64
	RandomGaussVar     float64
	CutoffHeight       float64
	ThetaAmplitude     float64

	InitTKE float64

	VelocityTimeTable string
}

func (con *ABLConfig) ValidTemperatureProfile() bool {
	return len(con.TemperatureHeight) > 0 &&
		len(con.TemperatureHeight) == len(con.TemperatureValue)
}
func (con *ABLConfig) ValidPerturbRefHeight() bool {
	return con.PerturbRefHeight > 0
}
func (con *ABLConfig) ValidCutoffHeight() bool {
	return con.CutoffHeight > 0
}

// FlowConfig holds the background flow parameters.
type FlowConfig struct {
	// Required
	Density float64

	// Required unless ABLConfig.VelocityTimeTable is set.
	Velocity []float64
}

func (con *FlowConfig) ValidDensity() bool {
	return con.Density > 0
}
func (con *FlowConfig) ValidVelocity() bool {
	return len(con.Velocity) == 3
}

// DomainConfig describes the mesh the driver builds. The initializer core
// itself never reads it: the mesh belongs to the caller.
type DomainConfig struct {
	// Required
	X, Y, Z                float64
	XWidth, YWidth, ZWidth float64
	XCells, YCells, ZCells int

	// Optional
	Seed   int
	Output string
}

func (con *DomainConfig) ValidWidths() bool {
	return con.XWidth > 0 && con.YWidth > 0 && con.ZWidth > 0
}
func (con *DomainConfig) ValidCells() bool {
	return con.XCells > 0 && con.YCells > 0 && con.ZCells > 0
}
func (con *DomainConfig) ValidOutput() bool {
	return con.Output != ""
}

// InitWrapper is the gcfg target for an initialization config file.
type InitWrapper struct {
	ABL    ABLConfig
	Flow   FlowConfig
	Domain DomainConfig
}

// DefaultInitWrapper returns an InitWrapper with every optional parameter
// set to its documented default.
func DefaultInitWrapper() *InitWrapper {
	wrap := &InitWrapper{}
	wrap.ABL.PerturbVelocity = true
	wrap.ABL.PerturbRefHeight = 50
	wrap.ABL.UPeriods = 4
	wrap.ABL.VPeriods = 4
	wrap.ABL.DeltaU = 1
	wrap.ABL.DeltaV = 1
	wrap.ABL.RandomGaussMean = 0
	wrap.ABL.RandomGaussVar = 1
	wrap.ABL.CutoffHeight = 1e16
	wrap.ABL.ThetaAmplitude = 1
	wrap.ABL.InitTKE = 0.1
	wrap.Domain.Seed = 42
	wrap.Domain.Output = "profiles.txt"
	return wrap
}
