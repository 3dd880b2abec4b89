// Package openbase declares a struct that leaves part of its behavior to an embedded interface.
package openbase

import "fmt"

// Namer supplies the parts of a Shape that vary.
type Namer interface {
	Name() string
	Sides() int
}

// Shape is a polygon. Sides is concrete; Name comes from whatever Namer is embedded.
type Shape struct {
	Namer

	Corners int
}

// Describe renders the shape using both its concrete and its embedded members.
func (s Shape) Describe() string {
	return fmt.Sprintf("%s with %d sides", s.Name(), s.Sides())
}

// Sides reports the number of corners.
func (s Shape) Sides() int {
	return s.Corners
}
