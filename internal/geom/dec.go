package geom

import (
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Precision is the number of significant decimal digits carried by all
// engine arithmetic. Coordinates of order 1e11 with per-tick increments of
// order 1e-6 still leave dozens of guard digits at this setting.
const Precision = 50

// Domain errors for spatial arithmetic.
var (
	// ErrDegenerateDirection indicates a unit-direction request between
	// coincident points; the direction is undefined, not approximable.
	ErrDegenerateDirection = errors.New("geom: degenerate direction between coincident points")

	// ErrNumericInvalid indicates a non-finite or unparseable decimal value.
	ErrNumericInvalid = errors.New("geom: invalid numeric value")
)

var ctx = apd.BaseContext.WithPrecision(Precision)

// Ctx returns the shared arithmetic context. Callers must not mutate it.
func Ctx() *apd.Context { return ctx }

// Parse converts a decimal literal such as "6.67259e-11" into a decimal.
func Parse(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNumericInvalid, s)
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("%w: %q is not finite", ErrNumericInvalid, s)
	}
	return d, nil
}

// MustParse is Parse for compile-time literals; it panics on bad input.
func MustParse(s string) *apd.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromDuration converts an elapsed duration to seconds, exactly.
func FromDuration(d time.Duration) *apd.Decimal {
	return apd.New(d.Nanoseconds(), -9)
}

// IsFinite reports whether d is a usable finite decimal.
func IsFinite(d *apd.Decimal) bool {
	return d != nil && d.Form == apd.Finite
}

func clone(d *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Set(d)
}

// arith asserts that a context operation over finite operands succeeded.
// The shared context traps overflow and invalid operations; none are
// reachable from scenario-scale values, so a trap here means the simulation
// state itself is no longer physically meaningful.
func arith(_ apd.Condition, err error) {
	if err != nil {
		panic(fmt.Errorf("%w: %v", ErrNumericInvalid, err))
	}
}
