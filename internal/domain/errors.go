package domain

import (
	"errors"
	"fmt"
)

// CoordinateError is the failure taxonomy of Midpoint. Values are stable
// and double as the numeric codes exposed across the bridge.
type CoordinateError int

const (
	// WrongDimensions: the operands carry different Position cases.
	WrongDimensions CoordinateError = iota
	// CantExist: both operands are C but disagree.
	CantExist
)

func (e CoordinateError) Error() string {
	switch e {
	case WrongDimensions:
		return "coordinate: wrong dimensions"
	case CantExist:
		return "coordinate: cannot exist"
	default:
		return fmt.Sprintf("coordinate: error %d", int(e))
	}
}

// Name returns the identifier used in reports and logs.
func (e CoordinateError) Name() string {
	switch e {
	case WrongDimensions:
		return "wrongDimensions"
	case CantExist:
		return "cantExist"
	default:
		return "unknown"
	}
}

// CodeOf extracts a CoordinateError from err's chain.
func CodeOf(err error) (CoordinateError, bool) {
	var ce CoordinateError
	if errors.As(err, &ce) {
		return ce, true
	}
	return 0, false
}

// Sentinel errors for broad classification.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrInvalidDocument = errors.New("invalid document")
	ErrInvalidNotation = errors.New("invalid notation")
	ErrNilPosition     = errors.New("position is not set")
	ErrExecution       = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound          ErrorKind = "not_found"
	KindInvalidConfig     ErrorKind = "invalid_config"
	KindInvalidDocument   ErrorKind = "invalid_document"
	KindInvalidNotation   ErrorKind = "invalid_notation"
	KindInvalidCoordinate ErrorKind = "invalid_coordinate"
	KindExecution         ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
