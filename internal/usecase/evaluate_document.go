package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/libcoords/internal/bridge"
	"github.com/aalvaropc/libcoords/internal/domain"
	"github.com/aalvaropc/libcoords/internal/ports"
	ucassert "github.com/aalvaropc/libcoords/internal/usecase/assert"
)

// EvaluateDocument computes every length and midpoint of a document.
// Values go through the bridge so reports show exactly what a host would
// receive, sentinel included.
type EvaluateDocument struct {
	documents ports.DocumentLoader
	log       *slog.Logger
	now       func() time.Time
}

type EvaluateOption func(*EvaluateDocument)

func WithLogger(l *slog.Logger) EvaluateOption {
	return func(uc *EvaluateDocument) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) EvaluateOption {
	return func(uc *EvaluateDocument) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewEvaluateDocument(dl ports.DocumentLoader, opts ...EvaluateOption) *EvaluateDocument {
	uc := &EvaluateDocument{
		documents: dl,
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute never aborts on a failing entry; only load errors and context
// cancellation are returned.
func (uc *EvaluateDocument) Execute(ctx context.Context, path string) (domain.Report, error) {
	doc, err := uc.documents.LoadDocument(path)
	if err != nil {
		return domain.Report{}, err
	}

	tol := doc.Tolerance
	if tol <= 0 {
		tol = domain.DefaultTolerance
	}

	report := domain.Report{
		DocumentName: doc.Name,
		DocumentPath: path,
		StartedAt:    uc.now(),
		Lengths:      make([]domain.LengthResult, 0, len(doc.Locations)),
		Midpoints:    make([]domain.MidpointResult, 0, len(doc.Midpoints)),
	}

	for _, entry := range doc.Locations {
		if err := ctx.Err(); err != nil {
			return domain.Report{}, err
		}

		lr, err := uc.length(entry, tol)
		if err != nil {
			return domain.Report{}, err
		}
		report.Lengths = append(report.Lengths, lr)
	}

	for _, job := range doc.Midpoints {
		if err := ctx.Err(); err != nil {
			return domain.Report{}, err
		}
		report.Midpoints = append(report.Midpoints, uc.midpoint(job, tol))
	}

	report.EndedAt = uc.now()

	uc.log.Info("evaluate.done",
		"document", doc.Name,
		"lengths", len(report.Lengths),
		"midpoints", len(report.Midpoints),
		"failures", report.Failures(),
	)
	return report, nil
}

func (uc *EvaluateDocument) length(entry domain.LocationEntry, tol float64) (domain.LengthResult, error) {
	loc := entry.Location

	fl, err := bridge.NewFlatLocation(bridge.EncodeCoordinate(loc.Coordinate()), loc.Name())
	if err != nil {
		return domain.LengthResult{}, err
	}

	lr := domain.LengthResult{
		Name:       fl.Name(),
		Coordinate: loc.Coordinate().String(),
		Length:     fl.Length(),
		Assertions: []domain.AssertionResult{},
	}
	if entry.ExpectLength != nil {
		lr.Assertions = append(lr.Assertions, ucassert.Length(*entry.ExpectLength, lr.Length, tol))
	}

	uc.log.Debug("evaluate.length", "entry", lr.Name, "length", lr.Length)
	return lr, nil
}

func (uc *EvaluateDocument) midpoint(job domain.MidpointJob, tol float64) domain.MidpointResult {
	var slot bridge.Error
	flat := bridge.Midpoint(bridge.EncodeCoordinate(job.X), bridge.EncodeCoordinate(job.Y), &slot)

	res := domain.MidpointResult{
		Name: job.Name,
		X:    job.X.String(),
		Y:    job.Y.String(),
	}

	// The bridge only returns values it encoded itself, so decoding cannot
	// fail here.
	got, _ := bridge.DecodeCoordinate(flat)
	res.Result = got.String()

	var code *domain.CoordinateError
	if slot.Domain != "" {
		ce := domain.CoordinateError(slot.Code)
		code = &ce
		res.Error = &domain.MidpointFailure{
			Domain: slot.Domain,
			Code:   int(slot.Code),
			Name:   slot.Code.String(),
		}
	}

	res.Assertions, res.Expected = ucassert.Midpoint(job, got, code, tol)

	if res.Error != nil {
		uc.log.Info("evaluate.midpoint_failed",
			"entry", job.Name,
			"code", res.Error.Code,
			"err", res.Error.Name,
			"expected", res.Expected,
		)
	} else {
		uc.log.Debug("evaluate.midpoint", "entry", job.Name, "result", res.Result)
	}
	return res
}
