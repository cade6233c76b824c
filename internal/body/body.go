package body

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"github.com/san-kum/gravsim/internal/geom"
)

// ErrInvalidMass indicates a body constructed with mass <= 0 or a
// non-finite mass. Rejected synchronously; a massless body has no defined
// acceleration.
var ErrInvalidMass = errors.New("body: mass must be a positive finite decimal")

// Attributes is the full physical state of one body.
//
// Force is transient: the executor recomputes and overwrites it on every
// tick, it never accumulates. Center and Velocity are persistent
// integrator state.
type Attributes struct {
	Center   geom.Point
	Velocity geom.Vector
	Force    geom.Vector
	Mass     *apd.Decimal
}

// Clone returns a deep copy sharing no decimals with the original.
func (a Attributes) Clone() Attributes {
	return Attributes{
		Center:   a.Center.Clone(),
		Velocity: a.Velocity.Clone(),
		Force:    a.Force.Clone(),
		Mass:     new(apd.Decimal).Set(a.Mass),
	}
}

// Validate checks the invariants the executor relies on.
func (a Attributes) Validate() error {
	if !geom.IsFinite(a.Mass) || a.Mass.Sign() <= 0 {
		return ErrInvalidMass
	}
	if !a.Center.IsFinite() || !a.Velocity.IsFinite() || !a.Force.IsFinite() {
		return geom.ErrNumericInvalid
	}
	return nil
}

func (a Attributes) String() string {
	return fmt.Sprintf("center=%s velocity=%s |v|=%sm/s force=%s |F|=%sN mass=%skg",
		a.Center, a.Velocity, a.Velocity.Magnitude(), a.Force, a.Force.Magnitude(), a.Mass)
}

// Object is the capability every simulated body grants the executor:
// a stable, globally-unique identity plus access to its physical state.
type Object interface {
	// UID is constant for the life of the object and unique across all
	// objects; the force pass uses it for self-exclusion.
	UID() uuid.UUID

	// Attributes returns the live mutable state. Exclusive access is the
	// caller's responsibility (the world lock, in practice).
	Attributes() *Attributes

	// Snapshot returns an independent deep copy for read-only consumers.
	Snapshot() Attributes
}

// Body is the standard Object implementation: a named point mass with
// renderer-owned cosmetics. Radius and color are display constants with no
// physical meaning.
type Body struct {
	name  string
	uid   uuid.UUID
	attrs Attributes

	radius float64
	color  [3]float64
}

// New creates a body with a fresh uid. Mass must be positive and finite.
func New(name string, mass *apd.Decimal, center geom.Point, velocity geom.Vector) (*Body, error) {
	if !geom.IsFinite(mass) || mass.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %q has mass %v", ErrInvalidMass, name, mass)
	}
	return &Body{
		name: name,
		uid:  uuid.New(),
		attrs: Attributes{
			Center:   center.Clone(),
			Velocity: velocity.Clone(),
			Force:    geom.ZeroVector(),
			Mass:     new(apd.Decimal).Set(mass),
		},
	}, nil
}

// MustNew is New for scenario literals known to be valid.
func MustNew(name string, mass *apd.Decimal, center geom.Point, velocity geom.Vector) *Body {
	b, err := New(name, mass, center, velocity)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Body) Name() string            { return b.name }
func (b *Body) UID() uuid.UUID          { return b.uid }
func (b *Body) Attributes() *Attributes { return &b.attrs }
func (b *Body) Snapshot() Attributes    { return b.attrs.Clone() }

// SetCosmetics assigns the renderer-owned display constants.
func (b *Body) SetCosmetics(radius float64, color [3]float64) *Body {
	b.radius = radius
	b.color = color
	return b
}

// Center returns an independent copy of the current position.
func (b *Body) Center() geom.Point { return b.attrs.Center.Clone() }

func (b *Body) Radius() float64   { return b.radius }
func (b *Body) Color() [3]float64 { return b.color }
