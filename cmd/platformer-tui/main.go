package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mini-platformer/internal/config"
	"mini-platformer/internal/tui"
	"mini-platformer/internal/world"

	"github.com/gdamore/tcell/v2"
)

var (
	tuningPath = flag.String("tuning", config.DefaultTuningFile, "tuning file; missing file uses built-in defaults")
	seed       = flag.Int64("seed", 1, "obstacle spawner seed")
	logPath    = flag.String("log", "", "write logs to this file (default: discard)")
)

func main() {
	flag.Parse()

	// the screen owns the terminal, so logs go elsewhere
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	tuning, err := config.LoadTuning(*tuningPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load tuning: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even if the loop panics
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "crashed: %v\n", r)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := tui.NewApp(screen, world.New(tuning, world.WithSeed(*seed)))
	runErr := app.Run(ctx)
	screen.Fini()

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "run: %v\n", runErr)
		os.Exit(1)
	}
}
