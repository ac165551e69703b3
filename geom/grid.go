package geom

// Grid provides an interface for reasoning over a 1D slice as if it were a
// 3D grid.
type Grid struct {
	CellBounds
	Length, Area, Volume int
	uBounds              [3]int
}

// CellBounds represents a rectangular block of cells aligned to the grid.
type CellBounds struct {
	Origin, Width [3]int
}

// NewGrid returns a new Grid instance.
func NewGrid(origin [3]int, width [3]int) *Grid {
	g := &Grid{}
	g.Init(origin, width)
	return g
}

// Init initializes a Grid instance.
func (g *Grid) Init(origin [3]int, width [3]int) {
	g.Origin = origin
	g.Width = width

	g.Length = width[0]
	g.Area = width[0] * width[1]
	g.Volume = width[0] * width[1] * width[2]

	for i := 0; i < 3; i++ {
		g.uBounds[i] = g.Origin[i] + g.Width[i]
	}
}

// Idx returns the grid index corresponding to a set of cell coordinates.
func (g *Grid) Idx(x, y, z int) int {
	return ((x - g.Origin[0]) + (y-g.Origin[1])*g.Length +
		(z-g.Origin[2])*g.Area)
}

// IdxCheck returns an index and true if the given coordinates are valid and
// false otherwise.
func (g *Grid) IdxCheck(x, y, z int) (idx int, ok bool) {
	if !g.BoundsCheck(x, y, z) {
		return -1, false
	}

	return g.Idx(x, y, z), true
}

// BoundsCheck returns true if the given coordinates are within the Grid and
// false otherwise.
func (g *Grid) BoundsCheck(x, y, z int) bool {
	return (g.Origin[0] <= x && g.Origin[1] <= y && g.Origin[2] <= z) &&
		(x < g.uBounds[0] && y < g.uBounds[1] &&
			z < g.uBounds[2])
}

// Coords returns the x, y, z cell coordinates of a point from its grid index.
func (g *Grid) Coords(idx int) (x, y, z int) {
	x = g.Origin[0] + idx%g.Length
	y = g.Origin[1] + (idx%g.Area)/g.Length
	z = g.Origin[2] + idx/g.Area
	return x, y, z
}

// Cells returns the number of cells contained in the bounds.
func (cb *CellBounds) Cells() int {
	return cb.Width[0] * cb.Width[1] * cb.Width[2]
}

// Grow returns a copy of the bounds expanded by ng cells on every face.
func (cb *CellBounds) Grow(ng int) CellBounds {
	out := *cb
	for d := 0; d < 3; d++ {
		out.Origin[d] -= ng
		out.Width[d] += 2 * ng
	}
	return out
}
