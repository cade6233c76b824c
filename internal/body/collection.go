package body

// Collection is a step-scoped, order-preserving view over a set of
// borrowed objects. The world builds one per execute call so both executor
// passes iterate the same list; it never owns the bodies and must not
// outlive the call that built it.
type Collection struct {
	items []Object
}

// NewCollection borrows the given objects in order.
func NewCollection(items ...Object) *Collection {
	return &Collection{items: items}
}

func (c *Collection) Len() int        { return len(c.items) }
func (c *Collection) At(i int) Object { return c.items[i] }
func (c *Collection) Append(o Object) { c.items = append(c.items, o) }
