package domain

import "math"

// Midpoint combines two coordinates of the same case.
//
// The scalar of the result is always sqrt(x.Scalar² + y.Scalar²), computed
// before the cases are compared. For A the payloads are subtracted, for B
// they are combined as a norm, and for C they must agree.
func Midpoint(x, y Coordinate) (Coordinate, error) {
	combined := math.Sqrt(x.Scalar*x.Scalar + y.Scalar*y.Scalar)

	switch a := x.Position.(type) {
	case A:
		if b, ok := y.Position.(A); ok {
			return Coordinate{Position: a - b, Scalar: combined}, nil
		}
	case B:
		if b, ok := y.Position.(B); ok {
			fa, fb := float64(a), float64(b)
			return Coordinate{Position: B(math.Sqrt(fa*fa + fb*fb)), Scalar: combined}, nil
		}
	case C:
		if b, ok := y.Position.(C); ok {
			if a != b {
				return Coordinate{}, CantExist
			}
			return Coordinate{Position: a, Scalar: combined}, nil
		}
	}

	return Coordinate{}, WrongDimensions
}
