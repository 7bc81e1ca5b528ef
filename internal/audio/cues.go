package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue is a short sound tied to a simulation event.
type Cue int

const (
	CueJump Cue = iota
	CueRespawn
	CueSpawn
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueRespawn:
		return "respawn"
	case CueSpawn:
		return "spawn"
	}
	return "unknown"
}

// Length is how long c plays.
func (c Cue) Length() time.Duration {
	switch c {
	case CueJump:
		return 120 * time.Millisecond
	case CueRespawn:
		return 400 * time.Millisecond
	case CueSpawn:
		return 60 * time.Millisecond
	}
	return 0
}

// Streamer builds a fresh, finite stream for c at rate, attenuated by volume
// (in halvings; 0 is unchanged, -1 is half amplitude).
func (c Cue) Streamer(rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueJump:
		s = NewSweep(330, 660, c.Length(), WaveSquare, rate)
	case CueRespawn:
		s = beep.Seq(
			NewSweep(520, 260, c.Length()/2, WaveTriangle, rate),
			NewSweep(390, 520, c.Length()/2, WaveTriangle, rate),
		)
	case CueSpawn:
		s = NewSweep(880, 880, c.Length(), WaveSine, rate)
	default:
		return beep.Silence(0)
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume - 2}
}
