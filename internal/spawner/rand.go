package spawner

import "math/rand"

// RandSource supplies uniformly distributed values on the closed interval
// [lo, hi].
type RandSource interface {
	Uniform(lo, hi float64) float64
}

type mathRand struct {
	r *rand.Rand
}

// NewRand returns a RandSource backed by math/rand with a fixed seed.
func NewRand(seed int64) RandSource {
	return &mathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRand) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + closedUnit(m.r.Int63n(unitSteps+1))*(hi-lo)
}

// unitSteps splits [0, 1] into 2^53 steps so both ends are reachable.
const unitSteps = 1 << 53

func closedUnit(n int64) float64 {
	return float64(n) / unitSteps
}

// Fixed always yields the same fraction of the interval: 0 gives lo, 1 gives hi.
type Fixed float64

func (f Fixed) Uniform(lo, hi float64) float64 {
	t := float64(f)
	if t <= 0 {
		return lo
	}
	if t >= 1 {
		return hi
	}
	return lo + t*(hi-lo)
}
