package domain

import "fmt"

// Coordinate pairs a variant component with a secondary real-valued axis.
type Coordinate struct {
	Position Position
	Scalar   float64
}

// NewCoordinate builds a Coordinate. A nil position is rejected.
func NewCoordinate(p Position, scalar float64) (Coordinate, error) {
	if p == nil {
		return Coordinate{}, &OpError{
			Op:   "domain.new_coordinate",
			Kind: KindInvalidCoordinate,
			Err:  ErrNilPosition,
		}
	}
	return Coordinate{Position: p, Scalar: scalar}, nil
}

// String renders the textual notation, e.g. "A(5) 3".
func (c Coordinate) String() string {
	if c.Position == nil {
		return fmt.Sprintf("<nil> %g", c.Scalar)
	}
	return fmt.Sprintf("%s %g", c.Position, c.Scalar)
}
