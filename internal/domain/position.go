package domain

import "fmt"

// Position is a closed variant holding exactly one of A, B or C.
// Only the types declared in this file implement it.
type Position interface {
	isPosition()
	fmt.Stringer
}

// A is an integer-valued coordinate component.
type A int

// B is a floating-point coordinate component.
type B float64

// C is a boolean-flag coordinate component.
type C bool

func (A) isPosition() {}
func (B) isPosition() {}
func (C) isPosition() {}

func (p A) String() string { return fmt.Sprintf("A(%d)", int(p)) }
func (p B) String() string { return fmt.Sprintf("B(%g)", float64(p)) }
func (p C) String() string { return fmt.Sprintf("C(%t)", bool(p)) }

// SameCase reports whether p and q carry the same variant case.
func SameCase(p, q Position) bool {
	switch p.(type) {
	case A:
		_, ok := q.(A)
		return ok
	case B:
		_, ok := q.(B)
		return ok
	case C:
		_, ok := q.(C)
		return ok
	}
	return false
}
