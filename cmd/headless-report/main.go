package main

import (
	"flag"
	"fmt"
	"os"

	"horde-shop/internal/commons/logger_config"
	"horde-shop/internal/config"
	"horde-shop/internal/headless"
)

func main() {
	opts, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger_config.SetLevel(opts.LogLevel)

	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var step float64

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 60*180, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", opts.Seed, "seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&step, "step", 1.0/60, "fixed tick length in seconds")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}

	seeds := make([]int64, runs)
	for i := range seeds {
		seeds[i] = seedBase + int64(i)*seedStep
	}

	fmt.Printf("=== Headless Survival Report ===\n")
	fmt.Printf("runs=%d ticks=%d step=%.4fs seed_base=%d seed_step=%d\n\n", runs, ticks, step, seedBase, seedStep)

	reports, err := headless.RunMany(seeds, headless.WithTicks(ticks), headless.WithStep(float32(step)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for i, r := range reports {
		fmt.Printf("run %d: %s\n", i+1, r)
	}
	fmt.Printf("\n%s\n", headless.Summarize(reports))
}
