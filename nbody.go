/*package nbody implements a brute-force gravitational N-body simulation
for a small fixed population of point masses. Velocities and positions are
advanced under softened pairwise Newtonian gravity with explicit Euler
integration, and a total-energy diagnostic checks that long runs are not
diverging.

The force evaluation is deliberately O(n^2): the entire point of the
package is throughput of that kernel at fixed algorithmic complexity, so
the star data is stored columnar (one contiguous, cache-line aligned array
per field) and the kernel streams each field at unit stride.
*/
package nbody

import (
	"unsafe"

	"github.com/phil-mansfield/nbody-bench/rand"
)

const (
	// NumBodies is the population size used by the standard benchmark.
	NumBodies = 48

	G   float32 = 0.001
	Eps float32 = 0.001
	DT  float32 = 0.01

	// CacheLineBytes is the alignment guaranteed for every field array.
	CacheLineBytes = 64
)

// Stars holds the state of every body, one contiguous array per field.
// Index i refers to the same logical body in all seven arrays. The arrays
// are allocated once, aligned to CacheLineBytes, and never resized.
type Stars struct {
	PX, PY, PZ []float32
	VX, VY, VZ []float32
	Mass       []float32
}

// Body is the logical view of a single star. It exists so that callers
// which don't care about layout can read and write whole bodies without
// touching seven arrays by hand. The hot loops never use it.
type Body struct {
	X, Y, Z    float32
	VX, VY, VZ float32
	Mass       float32
}

// NewStars allocates a population of n bodies with all fields zeroed.
// n is fixed for the lifetime of the returned Stars.
func NewStars(n int) *Stars {
	return &Stars{
		PX: alignedFloat32s(n), PY: alignedFloat32s(n),
		PZ: alignedFloat32s(n),
		VX: alignedFloat32s(n), VY: alignedFloat32s(n),
		VZ: alignedFloat32s(n),
		Mass: alignedFloat32s(n),
	}
}

// Count returns the number of bodies.
func (st *Stars) Count() int { return len(st.Mass) }

// Body returns the i-th body as a single value.
func (st *Stars) Body(i int) Body {
	return Body{
		st.PX[i], st.PY[i], st.PZ[i],
		st.VX[i], st.VY[i], st.VZ[i],
		st.Mass[i],
	}
}

// SetBody overwrites the i-th body.
func (st *Stars) SetBody(i int, b Body) {
	st.PX[i], st.PY[i], st.PZ[i] = b.X, b.Y, b.Z
	st.VX[i], st.VY[i], st.VZ[i] = b.VX, b.VY, b.VZ
	st.Mass[i] = b.Mass
}

// Generate fills the population from gen: positions and velocities uniform
// in [-1, 1), masses uniform in [1, 2). Masses are strictly positive, so
// no gravitational term can divide by a zero mass. Calling Generate again
// reinitializes from scratch.
func (st *Stars) Generate(gen *rand.Generator) {
	for i := range st.Mass {
		st.PX[i] = float32(gen.Uniform(-1, 1))
		st.PY[i] = float32(gen.Uniform(-1, 1))
		st.PZ[i] = float32(gen.Uniform(-1, 1))
		st.VX[i] = float32(gen.Uniform(-1, 1))
		st.VY[i] = float32(gen.Uniform(-1, 1))
		st.VZ[i] = float32(gen.Uniform(-1, 1))
		st.Mass[i] = float32(gen.Uniform(0, 1)) + 1
	}
}

// alignedFloat32s allocates an n-element slice whose first element sits on
// a cache-line boundary, so SIMD-width loads never straddle lines. The Go
// allocator only promises 8-byte alignment, hence the manual offset.
func alignedFloat32s(n int) []float32 {
	buf := make([]float32, n+CacheLineBytes/4)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	pad := 0
	if rem := addr % CacheLineBytes; rem != 0 {
		pad = int(CacheLineBytes-rem) / 4
	}
	return buf[pad : pad+n : pad+n]
}
