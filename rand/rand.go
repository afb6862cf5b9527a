/*package rand provides a seedable uniform random number generator with
swappable backends.

The zero-dependency backends (Xorshift, Tausworthe) exist because the
benchmark's initializer is timed code adjacent and because tests need a
stream whose algorithm is pinned, not just its seed. The Golang backend
wraps math/rand for cross-checking.
*/
package rand

import (
	gorand "math/rand"
	"time"
)

type GeneratorBackend int

const (
	Xorshift GeneratorBackend = iota
	Tausworthe
	Golang

	Default = Xorshift
)

// Generator generates uniform random floats with a fixed backend algorithm.
type Generator struct {
	backend source
}

type source interface {
	Init(seed uint64)
	// Next returns a uniform float64 in [0, 1).
	Next() float64
}

// New creates a Generator around the given backend, seeded with seed.
// The same backend and seed always give the same stream.
func New(backend GeneratorBackend, seed uint64) *Generator {
	gen := &Generator{}
	switch backend {
	case Xorshift:
		gen.backend = &xorshiftSource{}
	case Tausworthe:
		gen.backend = &tauswortheSource{}
	case Golang:
		gen.backend = &golangSource{}
	default:
		panic("Unrecognized GeneratorBackend.")
	}
	gen.backend.Init(seed)
	return gen
}

// NewTimeSeed creates a Generator around the given backend, seeded with
// the current time.
func NewTimeSeed(backend GeneratorBackend) *Generator {
	return New(backend, uint64(time.Now().UnixNano()))
}

// Uniform returns a uniform float64 in [low, high).
func (gen *Generator) Uniform(low, high float64) float64 {
	return low + (high-low)*gen.backend.Next()
}

// UniformAt fills target with uniform float64s in [low, high).
func (gen *Generator) UniformAt(low, high float64, target []float64) {
	for i := range target {
		target[i] = gen.Uniform(low, high)
	}
}

// UniformInt returns a uniform int in [low, high).
func (gen *Generator) UniformInt(low, high int) int {
	return low + int(gen.backend.Next()*float64(high-low))
}

// xorshiftSource implements the xorshift64* generator from Vigna (2014).
type xorshiftSource struct {
	state uint64
}

func (src *xorshiftSource) Init(seed uint64) {
	// xorshift64* cannot escape a zero state.
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	src.state = seed
}

func (src *xorshiftSource) Next() float64 {
	x := src.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	src.state = x
	return float64((x*0x2545F4914F6CDD1D)>>11) / (1 << 53)
}

// tauswortheSource implements the three-component combined Tausworthe
// generator taus88 from L'Ecuyer (1996).
type tauswortheSource struct {
	s1, s2, s3 uint32
}

func (src *tauswortheSource) Init(seed uint64) {
	// Each component needs a state above a small minimum or it collapses.
	src.s1 = uint32(seed) | 0x10
	src.s2 = uint32(seed>>22) | 0x10
	src.s3 = uint32(seed>>44) | 0x10
	for i := 0; i < 16; i++ {
		src.next32()
	}
}

func (src *tauswortheSource) next32() uint32 {
	src.s1 = ((src.s1 & 0xFFFFFFFE) << 12) ^ (((src.s1 << 13) ^ src.s1) >> 19)
	src.s2 = ((src.s2 & 0xFFFFFFF8) << 4) ^ (((src.s2 << 2) ^ src.s2) >> 25)
	src.s3 = ((src.s3 & 0xFFFFFFF0) << 17) ^ (((src.s3 << 3) ^ src.s3) >> 11)
	return src.s1 ^ src.s2 ^ src.s3
}

func (src *tauswortheSource) Next() float64 {
	return float64(src.next32()) / (1 << 32)
}

// golangSource wraps the standard library's generator.
type golangSource struct {
	rand *gorand.Rand
}

func (src *golangSource) Init(seed uint64) {
	src.rand = gorand.New(gorand.NewSource(int64(seed)))
}

func (src *golangSource) Next() float64 {
	return src.rand.Float64()
}
