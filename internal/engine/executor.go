package engine

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/geom"
)

// G is the Newtonian gravitational constant, m³/(kg·s²).
var G = geom.MustParse("6.67259e-11")

var half = geom.MustParse("0.5")

// Executor advances a collection of bodies by one tick. Implementations
// hold no per-run state: every call works solely from the collection passed
// in and the constants above.
type Executor interface {
	// ExecuteForce overwrites every object's net force with the sum of
	// gravitational pulls from every other object, all derived from one
	// position snapshot.
	ExecuteForce(objs *body.Collection, elapsed time.Duration) error

	// ExecuteDisplacement integrates the committed forces into new
	// positions and velocities over the elapsed interval.
	ExecuteDisplacement(objs *body.Collection, elapsed time.Duration) error
}

// SpaceExecutor is the standard Executor.
type SpaceExecutor struct{}

func NewSpaceExecutor() *SpaceExecutor { return &SpaceExecutor{} }

func (e *SpaceExecutor) ExecuteForce(objs *body.Collection, _ time.Duration) error {
	n := objs.Len()
	ctx := geom.Ctx()

	// Compute into a side buffer so pass-1 results for object k are
	// unaffected by pass-1 writes to other objects in the same tick.
	forces := make([]geom.Vector, n)

	for i := 0; i < n; i++ {
		oi := objs.At(i)
		ai := oi.Attributes()
		if err := ai.Validate(); err != nil {
			return fmt.Errorf("force pass: %w", err)
		}

		net := geom.ZeroVector()

		for j := 0; j < n; j++ {
			oj := objs.At(j)
			if oj.UID() == oi.UID() {
				continue
			}
			aj := oj.Attributes()

			r := ai.Center.Distance(aj.Center)
			if r.IsZero() {
				// Coincident bodies contribute nothing. Newtonian
				// gravity is singular at r=0; skipping the pair keeps
				// the tick finite.
				continue
			}

			// mag = G * m_i * m_j / r²
			mag := new(apd.Decimal)
			r2 := new(apd.Decimal)
			if _, err := ctx.Mul(mag, G, ai.Mass); err != nil {
				return forceFault(err)
			}
			if _, err := ctx.Mul(mag, mag, aj.Mass); err != nil {
				return forceFault(err)
			}
			if _, err := ctx.Mul(r2, r, r); err != nil {
				return forceFault(err)
			}
			if _, err := ctx.Quo(mag, mag, r2); err != nil {
				return forceFault(err)
			}

			dir, err := ai.Center.UnitVectorTo(aj.Center)
			if err != nil {
				// r > 0 was just established; a degenerate direction
				// here means the positions are no longer coherent.
				return forceFault(err)
			}

			net = net.Add(dir.Scale(mag))
		}

		forces[i] = net
	}

	for i := 0; i < n; i++ {
		objs.At(i).Attributes().Force = forces[i]
	}
	return nil
}

func (e *SpaceExecutor) ExecuteDisplacement(objs *body.Collection, elapsed time.Duration) error {
	t := geom.FromDuration(elapsed)
	t2 := new(apd.Decimal)
	if _, err := geom.Ctx().Mul(t2, t, t); err != nil {
		return fmt.Errorf("displacement pass: %w", err)
	}

	for i := 0; i < objs.Len(); i++ {
		a := objs.At(i).Attributes()
		if err := a.Validate(); err != nil {
			return fmt.Errorf("displacement pass: %w", err)
		}

		// acceleration = F / m; mass > 0 was validated above.
		acc, err := a.Force.Div(a.Mass)
		if err != nil {
			return fmt.Errorf("displacement pass: %w", err)
		}

		// displacement = v·t + a·t²·0.5
		disp := a.Velocity.Scale(t).Add(acc.Scale(t2).Scale(half))

		a.Center = a.Center.AddVector(disp)
		a.Velocity = a.Velocity.Add(acc.Scale(t))
	}
	return nil
}

func forceFault(err error) error {
	return fmt.Errorf("force pass: %w", err)
}
