// Package closed declares a concrete type with pointer-receiver methods.
package closed

// Counter counts events.
type Counter struct {
	count int
}

// Count reports the total so far.
//
//impfake:open
func (c *Counter) Count() int {
	return c.count
}

// Inc adds one.
func (c *Counter) Inc() {
	c.count++
}
