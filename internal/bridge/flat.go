package bridge

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/aalvaropc/libcoords/internal/domain"
)

// PositionTag discriminates the payload slot of a FlatPosition.
type PositionTag int64

const (
	TagA PositionTag = iota
	TagB
	TagC
)

func (t PositionTag) String() string {
	switch t {
	case TagA:
		return "A"
	case TagB:
		return "B"
	case TagC:
		return "C"
	default:
		return fmt.Sprintf("PositionTag(%d)", int64(t))
	}
}

// payload is a union slot sized for the largest member (int64/float64).
// Members are written and read only through the accessors below, which
// callers pair with the matching tag.
type payload [8]byte

func (p *payload) setInt(v int64) {
	binary.NativeEndian.PutUint64(p[:], uint64(v))
}

func (p *payload) setReal(v float64) {
	binary.NativeEndian.PutUint64(p[:], math.Float64bits(v))
}

func (p *payload) setBool(v bool) {
	*p = payload{}
	if v {
		p[0] = 1
	}
}

func (p payload) intVal() int64 {
	return int64(binary.NativeEndian.Uint64(p[:]))
}

func (p payload) realVal() float64 {
	return math.Float64frombits(binary.NativeEndian.Uint64(p[:]))
}

func (p payload) boolVal() bool {
	return p[0] != 0
}

// FlatPosition is the host-facing mirror of domain.Position.
type FlatPosition struct {
	Value payload
	Tag   PositionTag
}

// FlatCoordinate is the host-facing mirror of domain.Coordinate.
type FlatCoordinate struct {
	Position FlatPosition
	Value    float64
}

// EncodePosition writes the payload member matching p's case and sets the
// tag accordingly. A nil position encodes as A(0).
func EncodePosition(p domain.Position) FlatPosition {
	var fp FlatPosition
	switch v := p.(type) {
	case domain.A:
		fp.Value.setInt(int64(v))
		fp.Tag = TagA
	case domain.B:
		fp.Value.setReal(float64(v))
		fp.Tag = TagB
	case domain.C:
		fp.Value.setBool(bool(v))
		fp.Tag = TagC
	default:
		fp.Value.setInt(0)
		fp.Tag = TagA
	}
	return fp
}

// DecodePosition reads only the payload member selected by the tag.
func DecodePosition(fp FlatPosition) (domain.Position, error) {
	switch fp.Tag {
	case TagA:
		return domain.A(fp.Value.intVal()), nil
	case TagB:
		return domain.B(fp.Value.realVal()), nil
	case TagC:
		return domain.C(fp.Value.boolVal()), nil
	default:
		return nil, &domain.OpError{
			Op:   "bridge.decode_position",
			Kind: domain.KindInvalidCoordinate,
			Err:  fmt.Errorf("unknown tag %d", int64(fp.Tag)),
		}
	}
}

func EncodeCoordinate(c domain.Coordinate) FlatCoordinate {
	return FlatCoordinate{
		Position: EncodePosition(c.Position),
		Value:    c.Scalar,
	}
}

func DecodeCoordinate(fc FlatCoordinate) (domain.Coordinate, error) {
	p, err := DecodePosition(fc.Position)
	if err != nil {
		return domain.Coordinate{}, err
	}
	return domain.Coordinate{Position: p, Scalar: fc.Value}, nil
}

// Sentinel is the flat value returned on every failure path: A(0) with a
// zero scalar. It is only meaningful together with the error slot.
func Sentinel() FlatCoordinate {
	return EncodeCoordinate(domain.Coordinate{Position: domain.A(0), Scalar: 0})
}

// NewFlatPositionA, NewFlatPositionB and NewFlatPositionC build flat values
// for hosts that construct inputs directly.
func NewFlatPositionA(v int64) FlatPosition {
	fp := FlatPosition{Tag: TagA}
	fp.Value.setInt(v)
	return fp
}

func NewFlatPositionB(v float64) FlatPosition {
	fp := FlatPosition{Tag: TagB}
	fp.Value.setReal(v)
	return fp
}

func NewFlatPositionC(v bool) FlatPosition {
	fp := FlatPosition{Tag: TagC}
	fp.Value.setBool(v)
	return fp
}
