package world

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/apd/v3"
)

const (
	// BaseStep is the simulated time one tick advances before the
	// time-warp factor is applied.
	BaseStep = 30 * time.Millisecond

	// frameBudget is the best-effort wall-clock cadence of the physics
	// loop. Overrunning it is silently absorbed: the next tick simply
	// starts late.
	frameBudget = 33333 * time.Microsecond
)

// Runner drives a World from a dedicated physics goroutine while letting a
// render thread read consistent snapshots.
//
// One exclusive mutex guards the entire world: reads and ticks exclude
// each other completely rather than racing per object, so a reader always
// sees a fully committed tick. The time-warp factor has its own guard;
// changes take effect starting with the next tick, never retroactively.
//
// Start and Stop must be called from a single goroutine; Read, SetTimeWarp,
// TimeWarp, Reset, and Err are safe from any goroutine.
type Runner struct {
	mu      sync.Mutex // guards world
	world   World
	factory Factory

	warpMu sync.Mutex
	warp   float64

	stop    atomic.Bool
	started bool
	done    chan struct{}

	errMu sync.Mutex
	err   error
}

// NewRunner constructs the initial world from the factory.
func NewRunner(factory Factory) (*Runner, error) {
	w, err := factory()
	if err != nil {
		return nil, err
	}
	return &Runner{
		world:   w,
		factory: factory,
		warp:    1.0,
	}, nil
}

// Start launches the physics goroutine. No-op when already running.
func (r *Runner) Start() {
	if r.started {
		return
	}
	r.started = true
	r.stop.Store(false)
	r.done = make(chan struct{})
	go r.loop()
}

// Stop requests a cooperative halt and waits for the in-flight tick to
// complete. A started tick always runs to completion.
func (r *Runner) Stop() {
	if !r.started {
		return
	}
	r.stop.Store(true)
	<-r.done
	r.started = false
}

// Running reports whether the physics goroutine has been started and has
// not been stopped or faulted.
func (r *Runner) Running() bool {
	return r.started && !r.stop.Load()
}

func (r *Runner) loop() {
	defer close(r.done)

	// The stop flag is checked once per tick, never mid-tick.
	for !r.stop.Load() {
		start := time.Now()

		if err := r.tick(); err != nil {
			r.setErr(err)
			r.stop.Store(true)
			return
		}

		if rem := frameBudget - time.Since(start); rem > 0 {
			time.Sleep(rem)
		}
	}
}

func (r *Runner) tick() error {
	// Time-warp is read exactly once per tick.
	warp := r.TimeWarp()
	elapsed := time.Duration(float64(BaseStep) * warp)

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.world.Execute(elapsed)
}

// Read runs fn inside the read critical section. The drawable handles are
// valid only until fn returns; fn must not block on I/O or call back into
// the runner.
func (r *Runner) Read(fn func(items []Drawable)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.world.DrawableItems())
}

// ScaleBase returns the current world's renderer zoom hint.
func (r *Runner) ScaleBase() *apd.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.world.DefaultScaleBase()
}

// SetTimeWarp changes the simulated-time multiplier applied to the next
// tick and all following ones.
func (r *Runner) SetTimeWarp(f float64) {
	r.warpMu.Lock()
	r.warp = f
	r.warpMu.Unlock()
}

func (r *Runner) TimeWarp() float64 {
	r.warpMu.Lock()
	defer r.warpMu.Unlock()
	return r.warp
}

// Reset discards the world and rebuilds it from the factory. Any recorded
// fault is cleared; a runner whose loop already exited on a fault must be
// Stopped and Started again to resume ticking.
func (r *Runner) Reset() error {
	w, err := r.factory()
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.world = w
	r.mu.Unlock()

	r.setErr(nil)
	return nil
}

// Err returns the fault that stopped the physics loop, if any.
func (r *Runner) Err() error {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	return r.err
}

func (r *Runner) setErr(err error) {
	r.errMu.Lock()
	r.err = err
	r.errMu.Unlock()
}
