package world

import (
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/engine"
	"github.com/san-kum/gravsim/internal/geom"
)

// Drawable is the read-only handle the renderer gets per body. Handles are
// valid only while the caller holds its read critical section (see
// Runner.Read); Radius and Color are cosmetic constants, not physics state.
type Drawable interface {
	UID() uuid.UUID
	Name() string
	Center() geom.Point
	Radius() float64
	Color() [3]float64
}

// World owns a set of bodies and one executor, advancing them one tick at
// a time. Implementations are not safe for concurrent use; the Runner
// provides the locking.
type World interface {
	// Execute advances the world by one force-then-displacement tick over
	// the elapsed simulated time. A returned error means the tick aborted
	// mid-flight and the world is no longer physically meaningful.
	Execute(elapsed time.Duration) error

	// DrawableItems returns read-only handles to the owned bodies.
	DrawableItems() []Drawable

	// DefaultScaleBase is a scenario-specific distance constant the
	// renderer uses for its initial zoom; it has no meaning inside the
	// engine.
	DefaultScaleBase() *apd.Decimal
}

// Factory rebuilds a world from its scenario recipe. Reset is always a
// wholesale reconstruction, never an in-place rewind.
type Factory func() (World, error)

// DefaultScaleBase is used by worlds that do not set their own.
var DefaultScaleBase = geom.MustParse("4.0e8")

// SpaceWorld is the standard World over a fixed, ordered body set.
type SpaceWorld struct {
	name      string
	executor  engine.Executor
	bodies    []*body.Body
	scaleBase *apd.Decimal
	ticks     uint64
}

// NewSpaceWorld builds a world owning the given bodies. scaleBase may be
// nil to use the package default.
func NewSpaceWorld(name string, scaleBase *apd.Decimal, bodies ...*body.Body) *SpaceWorld {
	if scaleBase == nil {
		scaleBase = DefaultScaleBase
	}
	return &SpaceWorld{
		name:      name,
		executor:  engine.NewSpaceExecutor(),
		bodies:    bodies,
		scaleBase: scaleBase,
	}
}

func (w *SpaceWorld) Name() string { return w.name }

// Ticks reports how many ticks have fully committed.
func (w *SpaceWorld) Ticks() uint64 { return w.ticks }

// Bodies exposes the owned bodies for diagnostics and persistence.
func (w *SpaceWorld) Bodies() []*body.Body { return w.bodies }

func (w *SpaceWorld) Execute(elapsed time.Duration) error {
	// The collection is step-scoped: built fresh here so both passes share
	// one list of borrows, discarded when the call returns.
	objs := body.NewCollection()
	for _, b := range w.bodies {
		objs.Append(b)
	}

	if err := w.executor.ExecuteForce(objs, elapsed); err != nil {
		return &engine.TickError{Tick: w.ticks, Wrapped: err}
	}
	if err := w.executor.ExecuteDisplacement(objs, elapsed); err != nil {
		return &engine.TickError{Tick: w.ticks, Wrapped: err}
	}

	w.ticks++
	return nil
}

func (w *SpaceWorld) DrawableItems() []Drawable {
	items := make([]Drawable, len(w.bodies))
	for i, b := range w.bodies {
		items[i] = b
	}
	return items
}

func (w *SpaceWorld) DefaultScaleBase() *apd.Decimal {
	return new(apd.Decimal).Set(w.scaleBase)
}
