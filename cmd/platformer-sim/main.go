package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"mini-platformer/internal/config"
	"mini-platformer/internal/sim"
	"mini-platformer/internal/world"

	"github.com/xlab/closer"
)

var (
	tuningPath = flag.String("tuning", config.DefaultTuningFile, "tuning file; missing file uses built-in defaults")
	scriptPath = flag.String("script", "", "input script (YAML); empty runs the built-in walk-off script")
	seed       = flag.Int64("seed", 1, "obstacle spawner seed")
	rate       = flag.Float64("hz", 60, "fixed simulation rate")
	frames     = flag.Uint64("frames", 0, "frames to run (0 = until the script ends)")
	loop       = flag.Bool("loop", false, "repeat the script; with -frames 0 runs until interrupted")
	verbose    = flag.Bool("v", false, "log every event")
)

func main() {
	flag.Parse()
	if *rate <= 0 {
		closer.Fatalln("hz must be positive")
	}

	tuning, err := config.LoadTuning(*tuningPath)
	if err != nil {
		closer.Fatalln(err)
	}

	script := sim.DefaultScript()
	if *scriptPath != "" {
		if script, err = sim.LoadScript(*scriptPath); err != nil {
			closer.Fatalln(err)
		}
	}
	script.Loop = script.Loop || *loop

	w := world.New(tuning, world.WithSeed(*seed), world.WithoutCamera())
	runner := sim.NewRunner(w, script, 1 / *rate)
	runner.Verbose = *verbose

	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(func() {
		cancel()
		log.Printf("Summary: %s", runner.Summary())
	})

	go func() {
		if _, err := runner.Run(ctx, *frames); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Run failed: %v", err)
		}
		closer.Close()
	}()
	closer.Hold()
}
