// Package body defines the physical object model: point masses with a
// stable identity, mutable kinematic state, and the step-scoped collection
// the executor iterates over.
//
// Identity is a uuid compared by value, never by position: two bodies that
// happen to occupy the same point are still distinct sources of gravity.
package body
