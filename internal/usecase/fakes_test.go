package usecase

import (
	"github.com/aalvaropc/libcoords/internal/domain"
)

type fakeDocumentLoader struct {
	doc domain.Document
}

func (f fakeDocumentLoader) LoadDocument(_ string) (domain.Document, error) {
	return f.doc, nil
}
func (f fakeDocumentLoader) ListDocuments(_ string) ([]domain.DocumentRef, error) {
	return nil, nil
}

type errDocumentLoader struct{ err error }

func (e errDocumentLoader) LoadDocument(_ string) (domain.Document, error) {
	return domain.Document{}, e.err
}
func (e errDocumentLoader) ListDocuments(_ string) ([]domain.DocumentRef, error) {
	return nil, nil
}

type fakeInitializer struct {
	called bool
	spec   domain.WorkspaceSpec
	force  bool
	err    error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.called = true
	f.spec = spec
	f.force = force
	return f.err
}

func coord(p domain.Position, scalar float64) domain.Coordinate {
	return domain.Coordinate{Position: p, Scalar: scalar}
}

func ptr[T any](v T) *T { return &v }
