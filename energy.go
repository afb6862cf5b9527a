package nbody

// TotalEnergy returns the population's kinetic plus potential energy. It
// reads the store without modifying it.
//
// The potential sum runs over all ordered pairs, diagonal included, with
// the same softened distance the kernel uses. The i == i terms add a
// constant -G*m^2/(2*eps) per body, which is identical before and after a
// run and so cancels out of any drift comparison. Energy is not conserved
// exactly under explicit Euler; it is only expected to stay close to its
// initial value over the benchmark's run length.
func (st *Stars) TotalEnergy() float32 {
	eps2 := Eps * Eps

	px, py, pz := st.PX, st.PY, st.PZ
	vx, vy, vz := st.VX, st.VY, st.VZ
	mass := st.Mass

	var energy float32
	for i := range px {
		v2 := vx[i]*vx[i] + vy[i]*vy[i] + vz[i]*vz[i]
		energy += 0.5 * mass[i] * v2

		xi, yi, zi := px[i], py[i], pz[i]
		for j := range px {
			dx := px[j] - xi
			dy := py[j] - yi
			dz := pz[j] - zi
			d2 := dx*dx + dy*dy + dz*dz + eps2
			energy -= 0.5 * G * mass[i] * mass[j] / sqrt32(d2)
		}
	}
	return energy
}
