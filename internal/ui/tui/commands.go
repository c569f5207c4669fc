package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/libcoords/internal/domain"
	"github.com/aalvaropc/libcoords/internal/infra/reportstore"
	"github.com/aalvaropc/libcoords/internal/infra/workspacefinder"
	"github.com/aalvaropc/libcoords/internal/infra/yamldocument"
	"github.com/aalvaropc/libcoords/internal/usecase"
)

const evaluateTimeout = time.Minute

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		_, err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func openLoader(root string) (domain.Config, *yamldocument.Loader, error) {
	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, yamldocument.NewLoader(yamldocument.WithDocumentsDir(cfg.Paths.DocumentsDir)), nil
}

func cmdLoadDocuments(root string) tea.Cmd {
	return func() tea.Msg {
		_, loader, err := openLoader(root)
		if err != nil {
			return documentsLoadedMsg{root: root, err: err}
		}

		refs, err := loader.ListDocuments(root)
		return documentsLoadedMsg{root: root, refs: refs, err: err}
	}
}

func cmdPreviewDocument(path string) tea.Cmd {
	return func() tea.Msg {
		p := filepath.Clean(path)

		doc, err := yamldocument.NewLoader().LoadDocument(p)
		if err != nil {
			return documentPreviewMsg{path: p, err: err}
		}
		return documentPreviewMsg{path: p, preview: renderPreview(doc)}
	}
}

func cmdEvaluate(root, path string, log *slog.Logger) tea.Cmd {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return func() tea.Msg {
		cfg, loader, err := openLoader(root)
		if err != nil {
			return evaluateDoneMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), evaluateTimeout)
		defer cancel()

		uc := usecase.NewEvaluateDocument(loader, usecase.WithLogger(log))
		report, err := uc.Execute(ctx, path)
		if err != nil {
			log.Error("tui.evaluate.failed", "path", path, "err", err)
			return evaluateDoneMsg{err: err}
		}

		if !cfg.Reports.Save {
			return evaluateDoneMsg{report: report}
		}

		id, err := reportstore.NewJSONStore(root, cfg).SaveReport(report)
		if err != nil {
			log.Error("tui.report.save_failed", "path", path, "err", err)
			return evaluateDoneMsg{report: report, saveErr: err}
		}
		log.Info("tui.report.saved", "id", id, "failures", report.Failures())
		return evaluateDoneMsg{report: report, id: id}
	}
}
