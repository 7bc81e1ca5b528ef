package sim

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"mini-platformer/internal/clock"
	"mini-platformer/internal/world"
)

// obstacles this far past the platform's near edge are dropped
const cleanupDistance = 5

// pruneEvery is how many frames pass between obstacle cleanups
const pruneEvery = 60

// Summary counts what happened during a run.
type Summary struct {
	Frames   uint64
	Elapsed  time.Duration
	Jumps    int
	Respawns int
	Spawns   int
	Pruned   int

	HasPlayer bool
	Final     world.Body
}

func (s Summary) String() string {
	out := fmt.Sprintf("frames=%d elapsed=%v jumps=%d respawns=%d spawns=%d pruned=%d",
		s.Frames, s.Elapsed, s.Jumps, s.Respawns, s.Spawns, s.Pruned)
	if s.HasPlayer {
		p := s.Final.Position
		out += fmt.Sprintf(" final=%s (%.2f, %.2f, %.2f)", s.Final.State, p.X(), p.Y(), p.Z())
	}
	return out
}

// Runner steps a world at a fixed rate with scripted input.
type Runner struct {
	world  *world.World
	cursor *Cursor
	dt     float64

	// Verbose logs every event as it is delivered
	Verbose bool

	mu  sync.Mutex
	sum Summary
}

func NewRunner(w *world.World, s Script, dt float64) *Runner {
	r := &Runner{world: w, cursor: NewCursor(s), dt: dt}
	w.OnJumped(func(ev world.Jumped) {
		r.record(func(s *Summary) { s.Jumps++ })
		if r.Verbose {
			log.Printf("frame %d: jump at %.2f, %.2f, %.2f", w.Frames(), ev.Position.X(), ev.Position.Y(), ev.Position.Z())
		}
	})
	w.OnRespawned(func(ev world.Respawned) {
		r.record(func(s *Summary) { s.Respawns++ })
		if r.Verbose {
			log.Printf("frame %d: respawn from %.2f, %.2f, %.2f", ev.Frame, ev.From.X(), ev.From.Y(), ev.From.Z())
		}
	})
	w.OnObstacleSpawned(func(ev world.ObstacleSpawned) {
		r.record(func(s *Summary) { s.Spawns++ })
		if r.Verbose {
			log.Printf("frame %d: obstacle at x %.2f", w.Frames(), ev.Position.X())
		}
	})
	return r
}

func (r *Runner) record(fn func(*Summary)) {
	r.mu.Lock()
	fn(&r.sum)
	r.mu.Unlock()
}

// Summary is safe to call while Run is in progress.
func (r *Runner) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sum
}

// Run advances up to frames steps, or until the script ends when frames is
// zero. A looping script with frames zero runs until ctx is cancelled.
func (r *Runner) Run(ctx context.Context, frames uint64) (Summary, error) {
	d := clock.Duration(r.dt)
	limit := r.world.Platform().HalfLength + cleanupDistance

	for i := uint64(0); frames == 0 || i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return r.Summary(), err
		}
		if frames == 0 && r.cursor.Done() {
			break
		}

		r.world.Step(r.dt, r.cursor.Next(d))

		pruned := 0
		if r.world.Frames()%pruneEvery == 0 {
			pruned = r.world.PruneObstacles(world.BeyondZ(limit))
		}
		b, ok := r.world.Player()
		r.record(func(s *Summary) {
			s.Frames = r.world.Frames()
			s.Elapsed = r.world.Elapsed()
			s.Pruned += pruned
			s.HasPlayer = ok
			s.Final = b
		})
	}
	return r.Summary(), nil
}
