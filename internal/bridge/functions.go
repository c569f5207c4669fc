package bridge

import "github.com/aalvaropc/libcoords/internal/domain"

// Midpoint is the host entry point for domain.Midpoint.
//
// On failure it writes the error into errOut (when non-nil) and returns
// Sentinel(). Callers must check errOut before trusting the result.
//
// errOut is only written on failure. A successful call leaves it as it
// was, so a host reusing one slot across calls must reset it to Error{}
// before each call; an empty Domain means no error was reported.
func Midpoint(x, y FlatCoordinate, errOut *Error) FlatCoordinate {
	out, err := midpoint(x, y)
	if err != nil {
		if errOut != nil {
			*errOut = Error{Domain: ErrorDomain, Code: codeFor(err)}
		}
		return Sentinel()
	}
	return out
}

func midpoint(x, y FlatCoordinate) (FlatCoordinate, error) {
	cx, err := DecodeCoordinate(x)
	if err != nil {
		return FlatCoordinate{}, err
	}
	cy, err := DecodeCoordinate(y)
	if err != nil {
		return FlatCoordinate{}, err
	}

	res, err := domain.Midpoint(cx, cy)
	if err != nil {
		return FlatCoordinate{}, err
	}
	return EncodeCoordinate(res), nil
}
