/*package io reads the benchmark's configuration files.*/
package io

import (
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/nbody-bench/rand"
)

const ExampleBenchFile = `[Bench]

#######################
# Optional Parameters #
#######################

# Steps is the number of kernel steps run back to back between the two
# energy measurements. Default is 100000.
# Steps = 100000

# Seed for the random initializer. The default of 0 seeds from the clock,
# which is what a plain no-flag run does. Set it to anything else to make
# runs reproducible.
# Seed = 1337

# The algorithm behind the random initializer. Can be set to one of:
# [ Xorshift | Tausworthe | Golang ]
# Golang is the standard library generator and only exists for
# cross-checking the other two.
# Generator = Xorshift`

type BenchConfig struct {
	// Optional
	Steps     int
	Seed      uint64
	Generator string
}

type BenchWrapper struct {
	Bench BenchConfig
}

func DefaultBenchWrapper() *BenchWrapper {
	con := BenchConfig{}
	con.Steps = 100000
	con.Seed = 0
	con.Generator = "Xorshift"
	return &BenchWrapper{con}
}

// ReadBenchConfig reads fname into a default-initialized BenchConfig
// without validating it.
func ReadBenchConfig(fname string) (*BenchConfig, error) {
	wrap := DefaultBenchWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return &wrap.Bench, nil
}

func (con *BenchConfig) ValidSteps() bool {
	return con.Steps > 0
}

func (con *BenchConfig) ValidGenerator() bool {
	switch strings.ToLower(con.Generator) {
	case "xorshift", "tausworthe", "golang":
		return true
	}
	return false
}

// Backend maps the Generator name onto the rand package's backend
// constant. Callers must check ValidGenerator first.
func (con *BenchConfig) Backend() rand.GeneratorBackend {
	switch strings.ToLower(con.Generator) {
	case "xorshift":
		return rand.Xorshift
	case "tausworthe":
		return rand.Tausworthe
	case "golang":
		return rand.Golang
	}
	panic("Unrecognized Generator: " + con.Generator)
}

// NewGenerator creates the generator the config describes, seeding from
// the clock when Seed is 0.
func (con *BenchConfig) NewGenerator() *rand.Generator {
	if con.Seed == 0 {
		return rand.NewTimeSeed(con.Backend())
	}
	return rand.New(con.Backend(), con.Seed)
}
