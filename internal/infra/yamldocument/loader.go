package yamldocument

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/libcoords/internal/domain"
	"github.com/aalvaropc/libcoords/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	documentsDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{documentsDir: "documents"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithDocumentsDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.documentsDir = dir
		}
	}
}

var _ ports.DocumentLoader = (*Loader)(nil)

func (l *Loader) LoadDocument(path string) (domain.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, &domain.OpError{
			Op:   "yamldocument.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var raw any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return domain.Document{}, &domain.OpError{
			Op:   "yamldocument.load",
			Kind: domain.KindInvalidDocument,
			Path: path,
			Err:  err,
		}
	}

	if err := validateSchema(raw); err != nil {
		return domain.Document{}, &domain.OpError{
			Op:   "yamldocument.schema",
			Kind: domain.KindInvalidDocument,
			Path: path,
			Err:  fmt.Errorf("%v: %w", err, domain.ErrInvalidDocument),
		}
	}

	var yd yamlDocument
	if err := yaml.Unmarshal(b, &yd); err != nil {
		return domain.Document{}, &domain.OpError{
			Op:   "yamldocument.load",
			Kind: domain.KindInvalidDocument,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, yd)
}

func (l *Loader) ListDocuments(root string) ([]domain.DocumentRef, error) {
	dir := filepath.Join(root, l.documentsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamldocument.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.DocumentRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readDocumentName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.DocumentRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readDocumentName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}
