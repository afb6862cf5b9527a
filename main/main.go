package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	nbody "github.com/phil-mansfield/nbody-bench"
	"github.com/phil-mansfield/nbody-bench/io"
)

func main() {
	var (
		bench         string
		exampleConfig bool
	)

	flag.StringVar(
		&bench, "Bench", "",
		"Configuration file for [Bench] mode.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example [Bench] configuration file to stdout.",
	)

	flag.Parse()

	switch {
	case exampleConfig:
		fmt.Println(io.ExampleBenchFile)
	case bench != "":
		con, err := io.ReadBenchConfig(bench)
		if err != nil { log.Fatal(err.Error()) }

		if !con.ValidSteps() {
			log.Fatal("Invalid 'Steps' value.")
		} else if !con.ValidGenerator() {
			log.Fatal("Invalid 'Generator' value.")
		}

		benchMain(con)
	default:
		// A bare run is the standard benchmark: clock seed, 100000
		// steps.
		benchMain(&io.DefaultBenchWrapper().Bench)
	}
}

func benchMain(con *io.BenchConfig) {
	stars := nbody.NewStars(nbody.NumBodies)
	stars.Generate(con.NewGenerator())

	fmt.Printf("Initial energy: %f\n", stars.TotalEnergy())

	t0 := time.Now()
	for i := 0; i < con.Steps; i++ {
		stars.Step()
	}
	ms := time.Since(t0).Milliseconds()

	fmt.Printf("Final energy: %f\n", stars.TotalEnergy())
	fmt.Printf("Time elapsed: %d ms\n", ms)
}
