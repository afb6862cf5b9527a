package nbody

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/nbody-bench/rand"
)

func TestFieldArraysAreCacheAligned(t *testing.T) {
	st := NewStars(NumBodies)
	fields := [][]float32{
		st.PX, st.PY, st.PZ, st.VX, st.VY, st.VZ, st.Mass,
	}
	for i, field := range fields {
		assert.Equal(t, NumBodies, len(field), "field length")
		addr := uintptr(unsafe.Pointer(&field[0]))
		assert.Equal(t, uintptr(0), addr%CacheLineBytes, "field %d alignment", i)
	}
}

func TestBodyAccessorsRoundTrip(t *testing.T) {
	st := NewStars(3)
	b := Body{
		X: 1, Y: 2, Z: 3,
		VX: 4, VY: 5, VZ: 6,
		Mass: 7,
	}
	st.SetBody(1, b)

	assert.Equal(t, b, st.Body(1), "set then get")
	assert.Equal(t, Body{}, st.Body(0), "neighbor untouched")
	assert.Equal(t, Body{}, st.Body(2), "neighbor untouched")
	assert.Equal(t, float32(2), st.PY[1], "columnar write-through")
}

func TestGenerateRanges(t *testing.T) {
	st := NewStars(NumBodies)
	st.Generate(rand.New(rand.Xorshift, 7))

	for i := 0; i < st.Count(); i++ {
		b := st.Body(i)
		coords := []float32{b.X, b.Y, b.Z, b.VX, b.VY, b.VZ}
		for _, x := range coords {
			assert.True(t, x >= -1 && x < 1, "coordinate range")
		}
		assert.True(t, b.Mass >= 1 && b.Mass < 2, "mass range")
	}
}

func TestGenerateReinitializesFromScratch(t *testing.T) {
	st1 := NewStars(NumBodies)
	st1.Generate(rand.New(rand.Tausworthe, 11))

	// A second Generate with the same stream must overwrite, not
	// accumulate.
	st2 := NewStars(NumBodies)
	st2.Generate(rand.New(rand.Tausworthe, 99))
	st2.Generate(rand.New(rand.Tausworthe, 11))

	for i := 0; i < NumBodies; i++ {
		assert.Equal(t, st1.Body(i), st2.Body(i), "regenerated body")
	}
}
