package io

import (
	"fmt"
	"os"

	"github.com/phil-mansfield/table"
)

// VelocityRecord is one line of a velocity time table.
type VelocityRecord struct {
	Time, Speed float64
	// Direction is measured in degrees.
	Direction float64
}

// ReadVelocityTable reads the first record of a whitespace-separated
// 'time speed direction_degrees' table. Later records describe the time
// evolution of the inflow and are left to the caller.
func ReadVelocityTable(fname string) (VelocityRecord, error) {
	if _, err := os.Stat(fname); err != nil {
		return VelocityRecord{}, fmt.Errorf(
			"Cannot find input file: %s", fname,
		)
	}

	cols, err := table.ReadTable(fname, []int{0, 1, 2}, nil)
	if err != nil {
		return VelocityRecord{}, fmt.Errorf(
			"Cannot read velocity time table '%s': %s", fname, err.Error(),
		)
	}
	if len(cols[0]) == 0 {
		return VelocityRecord{}, fmt.Errorf(
			"Velocity time table '%s' contains no records.", fname,
		)
	}

	return VelocityRecord{
		Time:      cols[0][0],
		Speed:     cols[1][0],
		Direction: cols[2][0],
	}, nil
}
