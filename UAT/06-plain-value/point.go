// Package plainvalue declares value aggregates without an equality obligation.
package plainvalue

// Point is a position on a grid.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Unit has no fields and no methods.
type Unit struct{}
