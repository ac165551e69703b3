// Package sim drives the per-cell initializer kernels over a domain. It
// decomposes the domain into blocks, runs one worker goroutine per block,
// and owns the seed to per-cell random stream mapping consumed by the
// stochastic passes.
package sim

import (
	"runtime"

	"golang.org/x/exp/rand"

	"github.com/windscape/abl"
	"github.com/windscape/abl/geom"
)

// NumCores is the number of worker threads used by engines.
var NumCores = runtime.NumCPU()

// Engine applies kernels to a domain in parallel. Kernels must write only to
// the cells of the block they are handed.
type Engine struct {
	bounds  geom.CellBounds
	seed    uint64
	workers int
}

// NewEngine creates an Engine over the given domain. The seed fixes every
// per-cell random stream the engine hands out.
func NewEngine(bounds geom.CellBounds, seed uint64) *Engine {
	eng := &Engine{
		bounds:  bounds,
		seed:    seed,
		workers: NumCores,
	}
	runtime.GOMAXPROCS(eng.workers)
	return eng
}

// Blocks splits the domain into contiguous k-slabs, at most one per worker.
// The slabs are disjoint and cover the domain exactly.
func (eng *Engine) Blocks() []geom.CellBounds {
	nz := eng.bounds.Width[2]
	n := eng.workers
	if n > nz {
		n = nz
	}

	blocks := make([]geom.CellBounds, n)
	k0 := eng.bounds.Origin[2]
	for id := 0; id < n; id++ {
		// Distribute the remainder over the leading slabs.
		width := nz / n
		if id < nz%n {
			width++
		}

		blocks[id] = eng.bounds
		blocks[id].Origin[2] = k0
		blocks[id].Width[2] = width
		k0 += width
	}
	return blocks
}

// ForEachBlock runs fn over every block of the domain, one goroutine per
// block, and returns once all of them have finished.
func (eng *Engine) ForEachBlock(fn func(cb *geom.CellBounds)) {
	blocks := eng.Blocks()
	out := make(chan int, len(blocks))

	for id := range blocks {
		go func(id int) {
			fn(&blocks[id])
			out <- id
		}(id)
	}
	for range blocks {
		<-out
	}
}

// Streams returns the engine's per-cell random stream mapping. The mapping
// is a pure function of (engine seed, cell index): it may be called from any
// worker, in any order, and always hands back identical streams.
func (eng *Engine) Streams() abl.StreamFn {
	seed := eng.seed
	return func(idx int) rand.Source {
		return rand.NewSource(mix64(seed ^ uint64(idx)*0x9E3779B97F4A7C15))
	}
}

// mix64 is the SplitMix64 finalizer. It decorrelates the nearly-sequential
// per-cell seeds before they reach the PCG source.
func mix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}
