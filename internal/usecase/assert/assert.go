package assert

import (
	"fmt"
	"math"

	"github.com/aalvaropc/libcoords/internal/domain"
)

// Close reports whether got is within a relative tolerance of want.
// Values below 1 compare absolutely.
func Close(want, got, tol float64) bool {
	if want == got {
		return true
	}
	if math.IsNaN(want) || math.IsNaN(got) {
		return false
	}
	return math.Abs(want-got) <= tol*math.Max(1, math.Max(math.Abs(want), math.Abs(got)))
}

func Length(want, got, tol float64) domain.AssertionResult {
	if Close(want, got, tol) {
		return domain.AssertionResult{
			Name:    "length",
			Passed:  true,
			Message: fmt.Sprintf("length %g", got),
		}
	}

	return domain.AssertionResult{
		Name:    "length",
		Passed:  false,
		Message: fmt.Sprintf("expected length %g, got %g", want, got),
	}
}

// Position compares payloads exactly, except for B which uses tol.
func Position(want, got domain.Position, tol float64) domain.AssertionResult {
	passed := want == got
	if wb, ok := want.(domain.B); ok {
		if gb, ok := got.(domain.B); ok {
			passed = Close(float64(wb), float64(gb), tol)
		}
	}

	if passed {
		return domain.AssertionResult{
			Name:    "position",
			Passed:  true,
			Message: fmt.Sprintf("position %s", got),
		}
	}

	return domain.AssertionResult{
		Name:    "position",
		Passed:  false,
		Message: fmt.Sprintf("expected position %s, got %s", want, got),
	}
}

func Scalar(want, got, tol float64) domain.AssertionResult {
	if Close(want, got, tol) {
		return domain.AssertionResult{
			Name:    "scalar",
			Passed:  true,
			Message: fmt.Sprintf("scalar %g", got),
		}
	}

	return domain.AssertionResult{
		Name:    "scalar",
		Passed:  false,
		Message: fmt.Sprintf("expected scalar %g, got %g", want, got),
	}
}

// Error checks the outcome of a midpoint that was expected to fail.
// got is nil when the call succeeded.
func Error(want domain.CoordinateError, got *domain.CoordinateError) domain.AssertionResult {
	switch {
	case got == nil:
		return domain.AssertionResult{
			Name:    "error",
			Passed:  false,
			Message: fmt.Sprintf("expected %s, got success", want.Name()),
		}
	case *got != want:
		return domain.AssertionResult{
			Name:    "error",
			Passed:  false,
			Message: fmt.Sprintf("expected %s, got %s", want.Name(), got.Name()),
		}
	default:
		return domain.AssertionResult{
			Name:    "error",
			Passed:  true,
			Message: want.Name(),
		}
	}
}

// Midpoint applies the job's expectations to an observed outcome. code is
// nil on success, in which case got is the combined coordinate. The
// boolean reports whether an observed error was anticipated by the job.
func Midpoint(job domain.MidpointJob, got domain.Coordinate, code *domain.CoordinateError, tol float64) ([]domain.AssertionResult, bool) {
	out := []domain.AssertionResult{}

	if job.ExpectError != nil {
		a := Error(*job.ExpectError, code)
		out = append(out, a)
		return out, a.Passed
	}

	if job.Expect != nil {
		if code != nil {
			out = append(out, domain.AssertionResult{
				Name:    "result",
				Passed:  false,
				Message: fmt.Sprintf("expected %s, got %s", job.Expect, code.Name()),
			})
			return out, false
		}
		out = append(out,
			Position(job.Expect.Position, got.Position, tol),
			Scalar(job.Expect.Scalar, got.Scalar, tol),
		)
	}

	return out, false
}
