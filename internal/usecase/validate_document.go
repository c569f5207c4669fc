package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/libcoords/internal/domain"
	"github.com/aalvaropc/libcoords/internal/ports"
)

type ValidateDocument struct {
	documents ports.DocumentLoader
}

func NewValidateDocument(dl ports.DocumentLoader) *ValidateDocument {
	return &ValidateDocument{documents: dl}
}

// Execute loads a document without evaluating it and rejects expectations
// that can be decided from the operand cases alone: a job whose cases
// differ can only fail with wrongDimensions, and one whose cases match
// never does.
func (uc *ValidateDocument) Execute(ctx context.Context, path string) error {
	doc, err := uc.documents.LoadDocument(path)
	if err != nil {
		return err
	}

	for _, job := range doc.Midpoints {
		if err := ctx.Err(); err != nil {
			return err
		}

		same := domain.SameCase(job.X.Position, job.Y.Position)

		switch {
		case !same && job.Expect != nil:
			return contradiction(path, job, "operands differ in case, result can only be wrongDimensions")
		case !same && job.ExpectError != nil && *job.ExpectError != domain.WrongDimensions:
			return contradiction(path, job, "operands differ in case, error can only be wrongDimensions")
		case same && job.ExpectError != nil && *job.ExpectError == domain.WrongDimensions:
			return contradiction(path, job, "operands share a case, wrongDimensions is impossible")
		case same && job.Expect != nil && !domain.SameCase(job.X.Position, job.Expect.Position):
			return contradiction(path, job, fmt.Sprintf("expected %s but operands are %s", job.Expect.Position, job.X.Position))
		}
	}

	return nil
}

func contradiction(path string, job domain.MidpointJob, msg string) error {
	return &domain.OpError{
		Op:   "usecase.validate_document",
		Kind: domain.KindInvalidDocument,
		Path: path,
		Err:  fmt.Errorf("midpoint %q: %s: %w", job.Name, msg, domain.ErrInvalidDocument),
	}
}
