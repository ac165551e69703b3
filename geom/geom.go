package geom

// Geometry describes a uniform rectangular mesh: the physical bounds of the
// problem domain and the cell spacing in each dimension. The mesh itself is
// owned by the caller; Geometry only answers position queries for it.
type Geometry struct {
	ProbLo, ProbHi [3]float64
	Dx             [3]float64
}

// NewGeometry returns the Geometry of a domain spanning [probLo, probHi]
// divided into cells[d] cells along each dimension.
func NewGeometry(probLo, probHi [3]float64, cells [3]int) *Geometry {
	g := &Geometry{ProbLo: probLo, ProbHi: probHi}
	for d := 0; d < 3; d++ {
		g.Dx[d] = (probHi[d] - probLo[d]) / float64(cells[d])
	}
	return g
}

// CellCenter returns the physical position of the center of cell (i, j, k).
// Indices outside the domain are valid and give halo-cell centers.
func (g *Geometry) CellCenter(i, j, k int) (x, y, z float64) {
	x = g.ProbLo[0] + (float64(i)+0.5)*g.Dx[0]
	y = g.ProbLo[1] + (float64(j)+0.5)*g.Dx[1]
	z = g.ProbLo[2] + (float64(k)+0.5)*g.Dx[2]
	return x, y, z
}

// Height returns the physical height of the center of the kth cell layer.
func (g *Geometry) Height(k int) float64 {
	return g.ProbLo[2] + (float64(k)+0.5)*g.Dx[2]
}

// Extent returns the width of the domain along dimension d.
func (g *Geometry) Extent(d int) float64 {
	return g.ProbHi[d] - g.ProbLo[d]
}
