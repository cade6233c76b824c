package engine

import "fmt"

// TickError records which tick an executor fault occurred on. A failed
// tick leaves the world half-advanced and physically meaningless, so
// callers treat it as fatal to the run.
type TickError struct {
	Tick    uint64
	Wrapped error
}

func (e *TickError) Error() string {
	return fmt.Sprintf("tick %d: %v", e.Tick, e.Wrapped)
}

func (e *TickError) Unwrap() error {
	return e.Wrapped
}
