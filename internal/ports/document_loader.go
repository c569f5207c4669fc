package ports

import "github.com/aalvaropc/libcoords/internal/domain"

// DocumentLoader loads documents from a source (e.g., filesystem).
type DocumentLoader interface {
	LoadDocument(path string) (domain.Document, error)
	ListDocuments(root string) ([]domain.DocumentRef, error)
}
