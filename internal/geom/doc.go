// Package geom provides spatial primitives over arbitrary-precision decimals.
//
// Positions and displacements are expressed in SI meters as [Point] and
// [Vector] values whose coordinates are apd decimals rather than native
// floats: accelerations are accumulated onto coordinates of order 1e8-1e11
// over thousands of steps, and float64 loses physically meaningful digits
// long before the simulation does.
//
// All arithmetic runs through a shared context with [Precision] significant
// digits. Operations that can legitimately fail return errors:
//
//   - [Point.UnitVectorTo] returns [ErrDegenerateDirection] for coincident points
//   - [Parse] and friends return [ErrNumericInvalid] for malformed input
//
// Component-wise add/sub/scale over finite scenario-scale values cannot
// trap and therefore return plain values.
package geom
