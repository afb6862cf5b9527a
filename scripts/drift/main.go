/*drift measures how far the total-energy diagnostic wanders from its
initial value over a fixed span of simulated time, for a halving sequence
of step sizes. Explicit Euler is first order, so the drift column should
shrink roughly linearly with dt. Output is a text table on stdout.
*/
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	nbody "github.com/phil-mansfield/nbody-bench"
	"github.com/phil-mansfield/nbody-bench/rand"
)

const (
	totalTime   = 100.0
	halvings    = 5
	defaultSeed = 42
)

func main() {
	seed := uint64(defaultSeed)
	if len(os.Args) > 2 {
		log.Fatalf("Required file use: $ %s [seed]", os.Args[0])
	} else if len(os.Args) == 2 {
		s, err := strconv.ParseUint(os.Args[1], 10, 64)
		if err != nil { log.Fatal(err.Error()) }
		seed = s
	}

	fmt.Printf("# Seed: %d\n", seed)
	fmt.Printf("# Simulated time per run: %g\n", totalTime)
	fmt.Printf("# %12s %12s\n", "dt", "|dE/E|")

	for k := 0; k < halvings; k++ {
		dt := nbody.DT / float32(int(1)<<uint(k))
		steps := int(totalTime/float64(dt) + 0.5)

		stars := nbody.NewStars(nbody.NumBodies)
		stars.Generate(rand.New(rand.Xorshift, seed))

		e0 := stars.TotalEnergy()
		for i := 0; i < steps; i++ {
			stars.StepDt(dt)
		}
		e1 := stars.TotalEnergy()

		drift := math.Abs(float64((e1 - e0) / e0))
		fmt.Printf("  %12.6g %12.6g\n", dt, drift)
	}
}
