package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"mini-platformer/internal/world"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues into the speaker. A Player that was never initialized,
// or failed to initialize, accepts Play calls and stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	volume      float64
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues c on the mixer.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s := c.Streamer(sampleRate, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Volume bounds for SetVolume, as log2 gain over the cue's base level. At
// MaxVolume a cue peaks at full scale.
const (
	MinVolume = -10.0
	MaxVolume = 2.0
)

// SetVolume sets the log2 gain applied to cues queued from now on: 0 is the
// base level, -1 halves it. Values are clamped to [MinVolume, MaxVolume].
func (p *Player) SetVolume(v float64) {
	v = math.Max(MinVolume, math.Min(MaxVolume, v))
	p.mu.Lock()
	p.volume = v
	p.mu.Unlock()
}

func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Attach plays a cue for each of w's jump, respawn and spawn events.
func (p *Player) Attach(w *world.World) {
	w.OnJumped(func(world.Jumped) { p.Play(CueJump) })
	w.OnRespawned(func(world.Respawned) { p.Play(CueRespawn) })
	w.OnObstacleSpawned(func(world.ObstacleSpawned) { p.Play(CueSpawn) })
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
