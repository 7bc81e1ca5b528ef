package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain reads s to the end and returns the sample count and peak amplitude.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestCueLengthAndLevel(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, c := range []Cue{CueJump, CueRespawn, CueSpawn} {
		t.Run(c.String(), func(t *testing.T) {
			n, peak := drain(c.Streamer(rate, 0))
			if want := rate.N(c.Length()); n != want {
				t.Fatalf("samples = %d, want %d", n, want)
			}
			if peak == 0 || peak > 0.25+1e-9 {
				t.Fatalf("peak = %v, want (0, 0.25]", peak)
			}
		})
	}
}

func TestCueVolume(t *testing.T) {
	rate := beep.SampleRate(22050)
	_, loud := drain(CueJump.Streamer(rate, 0))
	_, quiet := drain(CueJump.Streamer(rate, -1))
	if math.Abs(quiet-loud/2) > 1e-9 {
		t.Fatalf("quiet peak %v is not half of %v", quiet, loud)
	}
}

func TestSweepFinishes(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewSweep(100, 200, 10*time.Millisecond, WaveSine, rate)
	n, _ := drain(s)
	if n != 80 {
		t.Fatalf("samples = %d, want 80", n)
	}
	if n, ok := s.Stream(make([][2]float64, 16)); n != 0 || ok {
		t.Fatalf("drained sweep streamed %d %v", n, ok)
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer()
	p.Play(CueJump)
	p.Close()
}

func TestSetVolumeClamps(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{-1.5, -1.5},
		{5, MaxVolume},
		{-40, MinVolume},
	}
	p := NewPlayer()
	for _, c := range cases {
		p.SetVolume(c.in)
		if p.volume != c.want {
			t.Errorf("SetVolume(%v) stored %v, want %v", c.in, p.volume, c.want)
		}
	}
	_, base := drain(CueJump.Streamer(sampleRate, 0))
	_, top := drain(CueJump.Streamer(sampleRate, MaxVolume))
	if math.Abs(top-4*base) > 1e-9 || top > 1+1e-9 {
		t.Fatalf("peak at MaxVolume = %v, base %v", top, base)
	}
}
