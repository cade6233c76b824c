package geom

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Vector is a three-dimensional displacement, velocity or force in SI
// units. Methods never mutate their receiver; every result is freshly
// allocated.
type Vector struct {
	X, Y, Z *apd.Decimal
}

// NewVector builds a vector from its components, cloning them so later
// mutation of the arguments cannot alias into the result.
func NewVector(x, y, z *apd.Decimal) Vector {
	return Vector{clone(x), clone(y), clone(z)}
}

// ParseVector builds a vector from decimal literals.
func ParseVector(x, y, z string) (Vector, error) {
	dx, err := Parse(x)
	if err != nil {
		return Vector{}, err
	}
	dy, err := Parse(y)
	if err != nil {
		return Vector{}, err
	}
	dz, err := Parse(z)
	if err != nil {
		return Vector{}, err
	}
	return Vector{dx, dy, dz}, nil
}

// ZeroVector returns the zero vector.
func ZeroVector() Vector {
	return Vector{new(apd.Decimal), new(apd.Decimal), new(apd.Decimal)}
}

func (v Vector) Clone() Vector {
	return Vector{clone(v.X), clone(v.Y), clone(v.Z)}
}

func (v Vector) Add(o Vector) Vector {
	r := ZeroVector()
	arith(ctx.Add(r.X, v.X, o.X))
	arith(ctx.Add(r.Y, v.Y, o.Y))
	arith(ctx.Add(r.Z, v.Z, o.Z))
	return r
}

func (v Vector) Sub(o Vector) Vector {
	r := ZeroVector()
	arith(ctx.Sub(r.X, v.X, o.X))
	arith(ctx.Sub(r.Y, v.Y, o.Y))
	arith(ctx.Sub(r.Z, v.Z, o.Z))
	return r
}

// Scale multiplies every component by k.
func (v Vector) Scale(k *apd.Decimal) Vector {
	r := ZeroVector()
	arith(ctx.Mul(r.X, v.X, k))
	arith(ctx.Mul(r.Y, v.Y, k))
	arith(ctx.Mul(r.Z, v.Z, k))
	return r
}

// Div divides every component by k. k must be non-zero.
func (v Vector) Div(k *apd.Decimal) (Vector, error) {
	if k.IsZero() {
		return Vector{}, fmt.Errorf("%w: division by zero", ErrNumericInvalid)
	}
	r := ZeroVector()
	arith(ctx.Quo(r.X, v.X, k))
	arith(ctx.Quo(r.Y, v.Y, k))
	arith(ctx.Quo(r.Z, v.Z, k))
	return r, nil
}

func (v Vector) Neg() Vector {
	r := ZeroVector()
	r.X.Neg(v.X)
	r.Y.Neg(v.Y)
	r.Z.Neg(v.Z)
	return r
}

// Magnitude returns the Euclidean norm sqrt(x² + y² + z²).
func (v Vector) Magnitude() *apd.Decimal {
	sum := new(apd.Decimal)
	sq := new(apd.Decimal)
	arith(ctx.Mul(sq, v.X, v.X))
	arith(ctx.Add(sum, sum, sq))
	arith(ctx.Mul(sq, v.Y, v.Y))
	arith(ctx.Add(sum, sum, sq))
	arith(ctx.Mul(sq, v.Z, v.Z))
	arith(ctx.Add(sum, sum, sq))
	arith(ctx.Sqrt(sum, sum))
	return sum
}

func (v Vector) IsZero() bool {
	return v.X.IsZero() && v.Y.IsZero() && v.Z.IsZero()
}

// IsFinite reports whether all components are finite decimals.
func (v Vector) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

// Equal compares by numeric value, ignoring exponent representation.
func (v Vector) Equal(o Vector) bool {
	return v.X.Cmp(o.X) == 0 && v.Y.Cmp(o.Y) == 0 && v.Z.Cmp(o.Z) == 0
}

func (v Vector) String() string {
	return fmt.Sprintf("(%s, %s, %s)", v.X, v.Y, v.Z)
}
