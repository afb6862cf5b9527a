package nbody

import (
	"math"
)

// Step advances the population by one time step of length DT.
func (st *Stars) Step() { st.StepDt(DT) }

// StepDt advances the population by one explicit Euler step of length dt.
//
// The update runs in two passes. The first pass accumulates, for every
// body i, the velocity change from all N bodies, reading positions that
// stay fixed for the whole pass. Only after every velocity is final does
// the second pass advance positions. Splitting the passes keeps the result
// independent of the order bodies are visited in.
//
// The i == j term is summed like any other: the softening length makes its
// denominator finite and its numerator is the zero displacement, so it
// contributes nothing. Branching it away would put an unpredictable branch
// in the middle of the inner loop for no numerical gain.
func (st *Stars) StepDt(dt float32) {
	gdt := G * dt
	eps2 := Eps * Eps

	px, py, pz := st.PX, st.PY, st.PZ
	vx, vy, vz := st.VX, st.VY, st.VZ
	mass := st.Mass

	for i := range px {
		xi, yi, zi := px[i], py[i], pz[i]
		// Accumulate into locals so the inner loop writes no shared
		// state and the store arrays are touched once per i.
		var ax, ay, az float32
		for j := range px {
			dx := px[j] - xi
			dy := py[j] - yi
			dz := pz[j] - zi
			d2 := dx*dx + dy*dy + dz*dz + eps2
			s := gdt * mass[j] / (d2 * sqrt32(d2))
			ax += dx * s
			ay += dy * s
			az += dz * s
		}
		vx[i] += ax
		vy[i] += ay
		vz[i] += az
	}

	for i := range px {
		px[i] += vx[i] * dt
		py[i] += vy[i] * dt
		pz[i] += vz[i] * dt
	}
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
