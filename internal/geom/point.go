package geom

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Point is a position in three-dimensional space, coordinates in meters.
// Like Vector it is immutable by convention: operations return fresh values.
type Point struct {
	X, Y, Z *apd.Decimal
}

// NewPoint builds a point from its coordinates, cloning them.
func NewPoint(x, y, z *apd.Decimal) Point {
	return Point{clone(x), clone(y), clone(z)}
}

// ParsePoint builds a point from decimal literals.
func ParsePoint(x, y, z string) (Point, error) {
	v, err := ParseVector(x, y, z)
	if err != nil {
		return Point{}, err
	}
	return Point(v), nil
}

// Origin returns the point (0, 0, 0).
func Origin() Point {
	return Point(ZeroVector())
}

func (p Point) Clone() Point {
	return Point(Vector(p).Clone())
}

// AddVector translates the point by v.
func (p Point) AddVector(v Vector) Point {
	return Point(Vector(p).Add(v))
}

// VectorTo returns the vector from p to o.
func (p Point) VectorTo(o Point) Vector {
	return Vector(o).Sub(Vector(p))
}

// Distance returns the Euclidean distance between p and o.
func (p Point) Distance(o Point) *apd.Decimal {
	return p.VectorTo(o).Magnitude()
}

// UnitVectorTo returns the unit-length direction from p to o. It fails
// with ErrDegenerateDirection when the points coincide; there is no
// meaningful direction to return.
func (p Point) UnitVectorTo(o Point) (Vector, error) {
	v := p.VectorTo(o)
	m := v.Magnitude()
	if m.IsZero() {
		return Vector{}, ErrDegenerateDirection
	}
	return v.Div(m)
}

// IsFinite reports whether all coordinates are finite decimals.
func (p Point) IsFinite() bool {
	return Vector(p).IsFinite()
}

// Equal compares by numeric value.
func (p Point) Equal(o Point) bool {
	return Vector(p).Equal(Vector(o))
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s, %s)", p.X, p.Y, p.Z)
}
