// Package engine computes pairwise Newtonian gravity and integrates it
// into body state.
//
// A tick is exactly one force pass followed by one displacement pass over a
// single [body.Collection]. The force pass derives every net force from one
// consistent position snapshot before committing any of them; the
// displacement pass then advances each body independently from its own
// committed force. Cost is O(n²) over the body count, which is intended to
// stay small.
package engine
