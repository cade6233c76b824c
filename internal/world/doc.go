// Package world wires a fixed set of bodies to an executor and drives
// them tick by tick.
//
// A [World] is single-threaded on its own; the [Runner] adds the two-thread
// discipline the application needs: a physics goroutine advancing the world
// at best-effort cadence and a render side reading drawable snapshots, both
// serialized by one exclusive lock. The renderer therefore always observes
// a fully committed tick, never a half-updated one.
package world
