package reportstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aalvaropc/libcoords/internal/domain"
	"github.com/aalvaropc/libcoords/internal/ports"
)

const defaultReportsDir = "reports"

type JSONStore struct {
	rootDir        string
	reportsDirName string
	writeIndex     bool
	now            func() time.Time

	// mu serializes id allocation and index appends within one process.
	mu sync.Mutex
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: reports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	reportsDir := cfg.Paths.ReportsDir
	if strings.TrimSpace(reportsDir) == "" {
		reportsDir = defaultReportsDir
	}

	s := &JSONStore{
		rootDir:        root,
		reportsDirName: reportsDir,
		writeIndex:     cfg.Reports.Index,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	return filepath.Join(s.rootDir, s.reportsDirName)
}

func (s *JSONStore) SaveReport(report domain.Report) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	toSave := report
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = s.now()
	}
	ts := toSave.StartedAt.UTC()

	namePart := report.DocumentName
	if strings.TrimSpace(namePart) == "" {
		namePart = strings.TrimSuffix(filepath.Base(report.DocumentPath), filepath.Ext(report.DocumentPath))
	}
	slug := slugify(namePart)
	if slug == "" {
		slug = "report"
	}

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.uniqueID(dir, fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug))
	path := filepath.Join(dir, id+".json")

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, toSave)
	}

	return id, nil
}

// uniqueID appends _2, _3, ... until no report file with that id exists.
func (s *JSONStore) uniqueID(dir, base string) string {
	id := base
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, id+".json")); os.IsNotExist(err) {
			return id
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

// LoadReport reads a saved report as a generic JSON tree. Numbers are kept
// as float64 so jsonpath comparisons behave like JSON.
func (s *JSONStore) LoadReport(id string) (any, error) {
	id = strings.TrimSuffix(strings.TrimSpace(id), ".json")
	if id == "" || strings.ContainsAny(id, `/\`) {
		return nil, &domain.OpError{
			Op:   "reportstore.load",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("invalid report id %q: %w", id, domain.ErrNotFound),
		}
	}

	path := filepath.Join(s.dir(), id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "reportstore.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var doc any
	if err := json.NewDecoder(bytes.NewReader(b)).Decode(&doc); err != nil {
		return nil, &domain.OpError{
			Op:   "reportstore.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return doc, nil
}

func (s *JSONStore) appendIndex(dir, id string, report domain.Report) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Document  string    `json:"document"`
		Failures  int       `json:"failures"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      id + ".json",
		Document:  report.DocumentName,
		Failures:  report.Failures(),
		StartedAt: report.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
