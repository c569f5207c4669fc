package domain

import "math"

// Location is a named, immutable point. Fields are unexported so the value
// cannot change after construction.
type Location struct {
	coordinate Coordinate
	name       string
}

func NewLocation(c Coordinate, name string) Location {
	return Location{coordinate: c, name: name}
}

func (l Location) Coordinate() Coordinate { return l.coordinate }

func (l Location) Name() string { return l.name }

// Length returns the norm of the coordinate pair.
//
// For C the axis is either collapsed onto the scalar (true) or absent
// (false); no square root is taken.
func (l Location) Length() float64 {
	y := l.coordinate.Scalar
	switch p := l.coordinate.Position.(type) {
	case A:
		x := float64(p)
		return math.Sqrt(x*x + y*y)
	case B:
		x := float64(p)
		return math.Sqrt(x*x + y*y)
	case C:
		if p {
			return y
		}
		return 0
	}
	return 0
}
