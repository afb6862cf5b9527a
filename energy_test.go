package nbody

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/nbody-bench/rand"
)

func TestTotalEnergyIsReadOnly(t *testing.T) {
	st := NewStars(NumBodies)
	st.Generate(rand.New(rand.Xorshift, 5))

	before := make([]Body, st.Count())
	for i := range before {
		before[i] = st.Body(i)
	}

	st.TotalEnergy()

	for i := range before {
		assert.Equal(t, before[i], st.Body(i), "body %d state", i)
	}
}

func TestTotalEnergySingleStationaryBody(t *testing.T) {
	st := NewStars(1)
	st.SetBody(0, Body{Mass: 1.5})

	// No kinetic term, so all that remains is the softened self-pair:
	// -G*m^2 / (2*eps).
	expected := -(0.5 * G * 1.5 * 1.5 / sqrt32(Eps*Eps))
	assert.Equal(t, expected, st.TotalEnergy(), "self-pair offset")
}

func TestEnergyIsApproximatelyConserved(t *testing.T) {
	if testing.Short() {
		t.Skip("100000-step run")
	}

	st := NewStars(NumBodies)
	st.Generate(rand.New(rand.Xorshift, 42))

	e0 := st.TotalEnergy()
	for i := 0; i < 100000; i++ {
		st.Step()
	}
	e1 := st.TotalEnergy()

	drift := math.Abs(float64((e1 - e0) / e0))
	assert.True(t, drift < 0.05, "relative drift %g (E0 = %g, E1 = %g)",
		drift, e0, e1)
}

// ringStars places n equal-mass bodies at rest on a circle in the xy
// plane. The setup is smooth and symmetric, which makes the first-order
// error of the integrator visible without close encounters muddying it.
func ringStars(n int, radius, mass float32) *Stars {
	st := NewStars(n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		st.SetBody(i, Body{
			X:    radius * float32(math.Cos(theta)),
			Y:    radius * float32(math.Sin(theta)),
			Mass: mass,
		})
	}
	return st
}

func TestEnergyDriftShrinksWithDt(t *testing.T) {
	driftAt := func(dt float32, steps int) float64 {
		st := ringStars(8, 0.5, 1.5)
		e0 := st.TotalEnergy()
		for i := 0; i < steps; i++ {
			st.StepDt(dt)
		}
		return math.Abs(float64(st.TotalEnergy() - e0))
	}

	// Same span of simulated time, twice the resolution.
	drift1 := driftAt(DT, 200)
	drift2 := driftAt(DT/2, 400)

	assert.True(t, drift1 > 0, "measurable drift at dt")
	assert.True(t, drift2 < drift1,
		"halving dt should shrink drift: %g !< %g", drift2, drift1)
}
