package main

import (
	"flag"
	"log"
	"runtime"

	"mini-platformer/internal/audio"
	"mini-platformer/internal/config"
	"mini-platformer/internal/game"
	"mini-platformer/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	tuningPath = flag.String("tuning", config.DefaultTuningFile, "tuning file; missing file uses built-in defaults")
	seed       = flag.Int64("seed", 1, "obstacle spawner seed")
	fpsLimit   = flag.Int("fps", 120, "frame rate cap (0 = unlimited)")
	mute       = flag.Bool("mute", false, "disable sound cues")
	volume     = flag.Float64("volume", 0, "cue gain in powers of two over the base level (-1 halves)")
	hotReload  = flag.Bool("watch", true, "rebuild the world when the tuning file changes")
	width      = flag.Int("width", game.DefaultWindowOptions().Width, "window width")
	height     = flag.Int("height", game.DefaultWindowOptions().Height, "window height")
	vsync      = flag.Bool("vsync", false, "sync to the display instead of -fps")
)

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	config.SetFPSLimit(*fpsLimit)

	if err := glfw.Init(); err != nil {
		log.Fatalf("init glfw: %v", err)
	}
	defer glfw.Terminate()

	opts := game.DefaultWindowOptions()
	opts.Width, opts.Height, opts.VSync = *width, *height, *vsync
	window, err := game.SetupWindow(opts)
	if err != nil {
		log.Fatalf("setup window: %v", err)
	}

	sound := audio.NewPlayer()
	if err := sound.Init(); err != nil {
		// play silently rather than refuse to start
		log.Printf("Audio disabled: %v", err)
	}
	sound.SetMuted(*mute)
	sound.SetVolume(*volume)
	defer sound.Close()

	session, err := game.NewSession(window, game.SessionOptions{
		TuningPath: *tuningPath,
		Seed:       *seed,
		Audio:      sound,
		HotReload:  *hotReload,
	})
	if err != nil {
		log.Fatalf("start session: %v", err)
	}

	im := input.NewInputManager()
	game.BindKeys(im)

	app := game.NewApp(window, im, session)
	game.SetupInputHandlers(app)
	defer app.EndSession()

	app.Run()
}
