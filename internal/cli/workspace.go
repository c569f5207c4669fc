package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/libcoords/internal/domain"
	"github.com/aalvaropc/libcoords/internal/infra/reportstore"
	"github.com/aalvaropc/libcoords/internal/infra/workspacefinder"
	"github.com/aalvaropc/libcoords/internal/infra/yamldocument"
	"github.com/aalvaropc/libcoords/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	documents ports.DocumentLoader
	store     ports.ReportStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	loader := yamldocument.NewLoader(
		yamldocument.WithDocumentsDir(cfg.Paths.DocumentsDir),
	)

	store := reportstore.NewJSONStore(root, cfg)

	return &workspaceCtx{
		root:      root,
		cfg:       cfg,
		documents: loader,
		store:     store,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `libcoords init`): %w", wd, err)
	}
	return root, nil
}

// resolveDocumentPath accepts a path (relative to the workspace root), a
// file name under the documents dir, a bare stem, or a document name.
func resolveDocumentPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("document is required (use --document or -d)")
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	documentsDir := filepath.Join(ws.root, ws.cfg.Paths.DocumentsDir)

	if hasYAMLExt(in) {
		p := filepath.Join(documentsDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	p1 := filepath.Join(documentsDir, in+".yaml")
	if fileExists(p1) {
		return p1, nil
	}
	p2 := filepath.Join(documentsDir, in+".yml")
	if fileExists(p2) {
		return p2, nil
	}

	refs, err := ws.documents.ListDocuments(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", &domain.OpError{
		Op:   "yamldocument.resolve",
		Kind: domain.KindNotFound,
		Path: documentsDir,
		Err:  fmt.Errorf("document %q: %w", in, domain.ErrNotFound),
	}
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
