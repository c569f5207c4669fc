package tui

import "github.com/aalvaropc/libcoords/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type documentsLoadedMsg struct {
	root string
	refs []domain.DocumentRef
	err  error
}

type documentPreviewMsg struct {
	path    string
	preview string
	err     error
}

// evaluateDoneMsg carries a finished evaluation. saveErr is set when the
// report was produced but could not be stored.
type evaluateDoneMsg struct {
	report  domain.Report
	id      string
	err     error
	saveErr error
}
