package bridge

import (
	"fmt"

	"github.com/aalvaropc/libcoords/internal/domain"
)

// ErrorDomain namespaces the codes written into an error slot.
const ErrorDomain = "LibCoordErrorDomain"

// ErrorCode is the numeric identifier carried in an error slot. The first
// two values equal the domain.CoordinateError values.
type ErrorCode int64

const (
	CodeWrongDimensions ErrorCode = 0
	CodeCantExist       ErrorCode = 1
	// CodeInvalidTag is reported when a flat input carries an unknown tag.
	CodeInvalidTag ErrorCode = 2
)

func (c ErrorCode) String() string {
	switch c {
	case CodeWrongDimensions:
		return "wrongDimensions"
	case CodeCantExist:
		return "cantExist"
	case CodeInvalidTag:
		return "invalidTag"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int64(c))
	}
}

// Error is the out-parameter slot filled by Midpoint on failure.
type Error struct {
	Domain string
	Code   ErrorCode
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s (%d)", e.Domain, e.Code, int64(e.Code))
}

// codeFor maps an internal error to its slot code. Anything that is not a
// coordinate error came from decoding.
func codeFor(err error) ErrorCode {
	if ce, ok := domain.CodeOf(err); ok {
		return ErrorCode(ce)
	}
	return CodeInvalidTag
}
