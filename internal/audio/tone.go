package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// sweep is an oscillator whose pitch glides linearly from one frequency to
// another over its duration, with a short attack and a linear release.
type sweep struct {
	rate     beep.SampleRate
	wave     Wave
	from, to float64
	total    int
	attack   int
	pos      int
	phase    float64
}

// NewSweep returns a finite tone gliding from `from` Hz to `to` Hz.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	return &sweep{
		rate:   rate,
		wave:   wave,
		from:   from,
		to:     to,
		total:  total,
		attack: min(rate.N(5*time.Millisecond), total/4),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		val := s.sample() * s.gain(progress)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) sample() float64 {
	switch s.wave {
	case WaveSquare:
		if s.phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(s.phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * s.phase)
	}
}

func (s *sweep) gain(progress float64) float64 {
	if s.attack > 0 && s.pos < s.attack {
		return float64(s.pos) / float64(s.attack)
	}
	return 1 - progress
}

func (s *sweep) Err() error { return nil }
