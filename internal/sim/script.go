package sim

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"mini-platformer/internal/input"

	"gopkg.in/yaml.v3"
)

var actionNames = map[string]input.Action{
	"left":     input.ActionMoveLeft,
	"right":    input.ActionMoveRight,
	"forward":  input.ActionMoveForward,
	"backward": input.ActionMoveBackward,
	"jump":     input.ActionJump,
}

// Phase holds a set of actions for a span of simulated time. Press actions go
// down on the phase's first frame and stay held until it ends.
type Phase struct {
	For   time.Duration `yaml:"for"`
	Hold  []string      `yaml:"hold"`
	Press []string      `yaml:"press"`

	held  input.Snapshot
	fresh input.Snapshot
}

// Script is a sequence of input phases.
type Script struct {
	Loop   bool    `yaml:"loop"`
	Phases []Phase `yaml:"phases"`
}

// DefaultScript walks forward, jumps, then steps off the right edge and
// waits out the fall.
func DefaultScript() Script {
	s := Script{Phases: []Phase{
		{For: time.Second, Hold: []string{"forward"}},
		{For: 800 * time.Millisecond, Press: []string{"jump"}},
		{For: time.Second, Hold: []string{"right"}},
		{For: 6 * time.Second},
	}}
	if err := s.compile(); err != nil {
		panic(err)
	}
	return s
}

func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("sim: read %s: %w", path, err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("sim: unmarshal script: %w", err)
	}
	if err := s.compile(); err != nil {
		return Script{}, err
	}
	return s, nil
}

func (s *Script) compile() error {
	var errs []error
	for i := range s.Phases {
		p := &s.Phases[i]
		if p.For <= 0 {
			errs = append(errs, fmt.Errorf("sim: phase %d: duration must be positive", i))
		}
		held, err := actions(p.Hold)
		if err != nil {
			errs = append(errs, fmt.Errorf("sim: phase %d: %w", i, err))
		}
		pressed, err := actions(p.Press)
		if err != nil {
			errs = append(errs, fmt.Errorf("sim: phase %d: %w", i, err))
		}
		p.held = input.Held(append(held, pressed...)...)
		p.fresh = p.held.With(input.Pressed(pressed...))
	}
	return errors.Join(errs...)
}

func actions(names []string) ([]input.Action, error) {
	out := make([]input.Action, 0, len(names))
	for _, n := range names {
		a, ok := actionNames[strings.ToLower(n)]
		if !ok {
			return nil, fmt.Errorf("unknown action %q", n)
		}
		out = append(out, a)
	}
	return out, nil
}

// Duration is the length of one pass through the script.
func (s Script) Duration() time.Duration {
	var d time.Duration
	for _, p := range s.Phases {
		d += p.For
	}
	return d
}

// Cursor plays a script frame by frame.
type Cursor struct {
	script  Script
	index   int
	elapsed time.Duration
}

func NewCursor(s Script) *Cursor {
	return &Cursor{script: s}
}

// Done reports whether a non-looping script has run out. Finished scripts
// yield an empty snapshot.
func (c *Cursor) Done() bool {
	return c.index >= len(c.script.Phases)
}

// Next returns the keys for a frame of length d and advances past it.
func (c *Cursor) Next(d time.Duration) input.Snapshot {
	if c.Done() {
		return input.Snapshot{}
	}
	p := c.script.Phases[c.index]
	keys := p.held
	if c.elapsed == 0 {
		keys = p.fresh
	}

	c.elapsed += d
	if c.elapsed >= p.For {
		c.elapsed = 0
		c.index++
		if c.Done() && c.script.Loop {
			c.index = 0
		}
	}
	return keys
}
