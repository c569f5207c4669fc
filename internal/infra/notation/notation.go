// Package notation reads and writes the textual coordinate form used by
// documents and the CLI, e.g. "A(5) 3" or "C(true), 1.5".
package notation

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/libcoords/internal/domain"
)

// Parse turns the textual form into a coordinate. The payload must match
// the case: an integer for A, any number for B, true/false for C.
func Parse(s string) (domain.Coordinate, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return domain.Coordinate{}, invalid(s, fmt.Errorf("empty coordinate: %w", domain.ErrInvalidNotation))
	}

	ast, err := parser.ParseString("", in)
	if err != nil {
		return domain.Coordinate{}, invalid(s, syntaxError(err))
	}

	pos, err := position(ast)
	if err != nil {
		return domain.Coordinate{}, invalid(s, err)
	}

	scalar, err := ast.Scalar.floatValue()
	if err != nil {
		return domain.Coordinate{}, invalid(s, err)
	}

	return domain.Coordinate{Position: pos, Scalar: scalar}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) domain.Coordinate {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Format renders c so that Parse(Format(c)) == c for finite values.
func Format(c domain.Coordinate) string {
	return c.String()
}

func FormatPosition(p domain.Position) string {
	if p == nil {
		return "<nil>"
	}
	return p.String()
}

func position(ast *coordinateAST) (domain.Position, error) {
	p := ast.Payload
	switch strings.ToUpper(ast.Case) {
	case "A":
		if p.Number == nil || !p.Number.isInt() {
			return nil, fmt.Errorf("A expects an integer payload: %w", domain.ErrInvalidNotation)
		}
		v, err := p.Number.intValue()
		if err != nil {
			return nil, err
		}
		return domain.A(v), nil
	case "B":
		if p.Number == nil {
			return nil, fmt.Errorf("B expects a numeric payload: %w", domain.ErrInvalidNotation)
		}
		v, err := p.Number.floatValue()
		if err != nil {
			return nil, err
		}
		return domain.B(v), nil
	case "C":
		if p.Bool == "" {
			return nil, fmt.Errorf("C expects true or false: %w", domain.ErrInvalidNotation)
		}
		return domain.C(p.Bool == "true"), nil
	default:
		return nil, fmt.Errorf("unknown case %q (want A, B or C): %w", ast.Case, domain.ErrInvalidNotation)
	}
}

func invalid(in string, err error) error {
	return &domain.OpError{
		Op:   "notation.parse",
		Kind: domain.KindInvalidNotation,
		Err:  fmt.Errorf("%q: %w", in, err),
	}
}
