package domain

import "time"

// AssertionResult is the output of a single expectation check.
type AssertionResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// LengthResult is the evaluated length of one location.
type LengthResult struct {
	Name       string  `json:"name"`
	Coordinate string  `json:"coordinate"`
	Length     float64 `json:"length"`

	Assertions []AssertionResult `json:"assertions"`
}

// MidpointResult records either a combined coordinate or the error slot.
// Result holds the value returned across the bridge, which is the sentinel
// when Error is set.
type MidpointResult struct {
	Name   string `json:"name"`
	X      string `json:"x"`
	Y      string `json:"y"`
	Result string `json:"result"`

	Error      *MidpointFailure  `json:"error,omitempty"`
	Expected   bool              `json:"expected_error,omitempty"`
	Assertions []AssertionResult `json:"assertions"`
}

// MidpointFailure is the serializable form of a bridge error slot.
type MidpointFailure struct {
	Domain string `json:"domain"`
	Code   int    `json:"code"`
	Name   string `json:"name"`
}

// Report is the outcome of evaluating a Document.
type Report struct {
	DocumentName string `json:"document"`
	DocumentPath string `json:"document_path"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`

	Lengths   []LengthResult   `json:"lengths"`
	Midpoints []MidpointResult `json:"midpoints"`
}

// Failed reports whether a midpoint entry errored without expecting to,
// or any of its assertions failed.
func (r MidpointResult) Failed() bool {
	if r.Error != nil && !r.Expected {
		return true
	}
	return anyFailed(r.Assertions)
}

func (r LengthResult) Failed() bool {
	return anyFailed(r.Assertions)
}

// Failures counts failed entries across the report.
func (r Report) Failures() int {
	n := 0
	for _, l := range r.Lengths {
		if l.Failed() {
			n++
		}
	}
	for _, m := range r.Midpoints {
		if m.Failed() {
			n++
		}
	}
	return n
}

func anyFailed(in []AssertionResult) bool {
	for _, a := range in {
		if !a.Passed {
			return true
		}
	}
	return false
}
